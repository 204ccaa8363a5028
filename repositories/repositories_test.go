package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bloom-api/models"
)

// setupTestDB opens a fresh in-memory database migrated to the current
// schema. TranslateError mirrors production so the duplicate-key recovery
// paths behave the same under test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: "$2a$10$dummy",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestPost(t *testing.T, db *gorm.DB, repo *PostRepository, userID, content string) *models.Post {
	t.Helper()

	post := models.Post{
		ID:      uuid.New().String(),
		UserID:  userID,
		Content: content,
	}
	require.NoError(t, repo.Create(&post))
	return &post
}
