// database_utils holds the shared test database helpers. Tests get a
// randomly named database on the configured Postgres server so they can
// run in parallel without stepping on each other's rows.
package utils

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sonomandeep/Moon/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testDBPrefix = "testonlydb_"

func randomTestDBName() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")
	return testDBPrefix + suffix[:8]
}

func connect(dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		dbName, os.Getenv("DB_PORT"))
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// CreateTempDB creates a migrated throwaway database and registers a
// cleanup that drops it. Tests are skipped when no test server is
// configured via DB_HOST.
func CreateTempDB(t *testing.T) *gorm.DB {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping database-backed test")
	}

	adminDB, err := connect(os.Getenv("DB_NAME"))
	if err != nil {
		t.Fatal("failed to connect to admin database: ", err)
	}

	dbName := randomTestDBName()
	if err := adminDB.Exec("CREATE DATABASE " + dbName).Error; err != nil {
		t.Fatal("failed to create temp database: ", err)
	}

	db, err := connect(dbName)
	if err != nil {
		t.Fatal("failed to connect to temp database: ", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatal("failed to migrate temp database: ", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
		adminDB.Exec("DROP DATABASE IF EXISTS " + dbName + " WITH (FORCE)")
	})

	return db
}
