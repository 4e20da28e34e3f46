// Package seed creates demo data for development databases. Not used in
// production.
package seed

import (
	"fmt"
	"math/rand"

	"bloglist/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Users        int
	BlogsPerUser int
	Password     string
	Seed         int64
}

// DefaultOptions generates a small but non-trivial dataset.
func DefaultOptions() Options {
	return Options{
		Users:        5,
		BlogsPerUser: 4,
		Password:     "sekret",
		Seed:         1,
	}
}

// Run populates the database with fake users and blogs and returns the
// created blogs.
func Run(db *gorm.DB, opts Options) ([]models.Blog, error) {
	gofakeit.Seed(opts.Seed)
	rng := rand.New(rand.NewSource(opts.Seed))

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}

	var blogs []models.Blog
	for i := 0; i < opts.Users; i++ {
		user := models.User{
			Username:     fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Name:         gofakeit.Name(),
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("seeding user: %w", err)
		}

		for j := 0; j < opts.BlogsPerUser; j++ {
			blog := models.Blog{
				Title:  gofakeit.Sentence(4),
				Author: user.Name,
				URL:    gofakeit.URL(),
				Likes:  rng.Intn(50),
				UserID: &user.ID,
			}
			if err := db.Create(&blog).Error; err != nil {
				return nil, fmt.Errorf("seeding blog: %w", err)
			}
			blogs = append(blogs, blog)
		}
	}

	return blogs, nil
}
