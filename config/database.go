package config

import (
	"os"

	"github.com/cardbin/cardbin-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var Database *gorm.DB

func Connect() error {
	var err error
	dbURL := os.Getenv("DB_URL")
	Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = Migrate(Database); err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}

// Migrate creates the schema. Tests reuse it against a sqlite database, so
// the postgres-only text search index is applied per dialect.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Flashcard{},
		&models.Tag{},
		&models.Fork{},
		&models.FlashcardHistory{},
		&models.Collection{},
		&models.Username{},
	)
	if err != nil {
		return err
	}

	// Language-aware search over titles, maintained by the storage layer.
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`CREATE INDEX IF NOT EXISTS txt_search ON flashcards USING GIN (to_tsvector('english', title))`).Error
	}
	return nil
}
