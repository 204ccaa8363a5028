// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bloom-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Duplicate-key violations must come back as gorm.ErrDuplicatedKey
		// so the slug allocator, like toggle and club creation can recover.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

// addDatabaseConstraints backstops the uniqueness rules the application
// relies on under concurrent requests. AutoMigrate already creates the
// tagged unique indexes; these ALTERs cover databases migrated by older
// schema versions, so failures are reported but not fatal.
func addDatabaseConstraints(db *gorm.DB) error {
	// At most one like per (post, user)
	if err := db.Exec("ALTER TABLE likes ADD CONSTRAINT uk_likes_post_user UNIQUE (post_id, user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for likes: %v\n", err)
	}

	// Globally unique post slugs
	if err := db.Exec("ALTER TABLE posts ADD CONSTRAINT uk_posts_slug UNIQUE (slug)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for post slugs: %v\n", err)
	}

	// One club per name
	if err := db.Exec("ALTER TABLE clubs ADD CONSTRAINT uk_clubs_name UNIQUE (name)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for club names: %v\n", err)
	}

	// One profile per user
	if err := db.Exec("ALTER TABLE profiles ADD CONSTRAINT uk_profiles_user UNIQUE (user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for profiles: %v\n", err)
	}

	return nil
}

// SeedClubs inserts the initial campus clubs. Names that already exist are
// skipped, so running it on every startup is safe.
func SeedClubs(db *gorm.DB) error {
	clubNames := []string{
		"Music Club",
		"Cybersecurity Club",
		"Making Friends",
		"Book Club",
		"Lunch",
		"Movie Nights",
		"Art Club",
		"General",
		"Study Group",
		"Tennis Club",
		"Basketball Club",
		"Soccer Club",
		"Chess Club",
	}

	created := 0
	for _, name := range clubNames {
		var existing models.Club
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&models.Club{Name: name}).Error; err != nil {
			fmt.Printf("Warning: Could not create club %s: %v\n", name, err)
			continue
		}
		created++
	}

	if created > 0 {
		fmt.Printf("Seeded %d clubs\n", created)
	}
	return nil
}
