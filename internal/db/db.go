package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// StorageItem is one key-value row. Records and options are stored as JSON
// snapshots under versioned keys: full-snapshot writes, last-write-wins,
// a single writer.
type StorageItem struct {
	Key   string `gorm:"primarykey"`
	Value string
}

// Storage keys. Current keys are read first; legacy keys are only consulted
// when the current ones are absent.
const (
	RecordsKey       = "records.v2"
	LegacyRecordsKey = "records.v1"
	OptionsKey       = "options.v2"
	LegacyOptionsKey = "options"
)

// Initialize sets up the database connection and runs migrations
func Initialize() error {
	dbPath, err := getDatabasePath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create atilog directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// InitializeAt opens the store at an explicit path instead of the default
// location under the home directory. Used by tests.
func InitializeAt(dbPath string) error {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	DB = db
	return runMigrations()
}

// getDatabasePath returns the path to the SQLite database file
func getDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".atilog", "atilog.db"), nil
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(&StorageItem{})
}

// getItem reads the value stored under key. The second result reports
// whether the key exists.
func getItem(key string) (string, bool, error) {
	var item StorageItem
	err := DB.First(&item, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return item.Value, true, nil
}

// setItem writes value under key, replacing any prior content
func setItem(key, value string) error {
	item := StorageItem{Key: key, Value: value}
	return DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&item).Error
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
