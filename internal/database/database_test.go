package database

import (
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Blog{}))
	assert.True(t, db.Migrator().HasColumn(&models.Blog{}, "likes"))
}

func TestMigrate_UsernameUnique(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	first := models.User{Username: "grace", Name: "Grace Hopper", PasswordHash: "x"}
	require.NoError(t, db.Create(&first).Error)

	dup := models.User{Username: "grace", Name: "Another Grace", PasswordHash: "y"}
	assert.Error(t, db.Create(&dup).Error)
}

func TestMigrate_LikesDefaultToZero(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	blog := models.Blog{Title: "Errors are values", URL: "https://go.dev/blog/errors-are-values"}
	require.NoError(t, db.Create(&blog).Error)

	var got models.Blog
	require.NoError(t, db.First(&got, blog.ID).Error)
	assert.Equal(t, 0, got.Likes)
}
