// Command seed fills a development database with demo users and blogs,
// then prints aggregate statistics over the seeded data.
package main

import (
	"flag"
	"fmt"
	"log"

	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/seed"
	"bloglist/internal/stats"
)

func main() {
	users := flag.Int("users", 5, "number of users to create")
	blogsPerUser := flag.Int("blogs", 4, "number of blogs per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.BlogsPerUser = *blogsPerUser

	blogs, err := seed.Run(db, opts)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Seeded %d blogs across %d users\n", len(blogs), opts.Users)
	fmt.Printf("Total likes: %d\n", stats.TotalLikes(blogs))
	if fav, ok := stats.FavoriteBlog(blogs); ok {
		fmt.Printf("Favorite blog: %q by %s (%d likes)\n", fav.Title, fav.Author, fav.Likes)
	}
	if top, ok := stats.MostBlogs(blogs); ok {
		fmt.Printf("Most blogs: %s (%d)\n", top.Author, top.Blogs)
	}
	if top, ok := stats.MostLikes(blogs); ok {
		fmt.Printf("Most likes: %s (%d)\n", top.Author, top.Likes)
	}
}
