package db

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"

	"forkful/config"
	"forkful/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Rating{},
		&models.Comment{},
	)
}

// InitDB opens the sqlite database at dbPath and migrates the schema.
// A "file::memory:" path is used as-is so tests can run on an in-memory DB.
func InitDB(dbPath string) error {
	dsn := dbPath
	if !strings.HasPrefix(dbPath, "file::memory:") && dbPath != ":memory:" {
		if err := os.MkdirAll(path.Dir(dbPath), fs.ModePerm); err != nil {
			return err
		}
		dsn = dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	var err error
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	if err = db.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
		return err
	}

	return initModels()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err comes from a UNIQUE constraint violation.
// The duplicate-username check in the handler is not atomic; the unique
// index backstops the race and surfaces here.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// DuplicateColumn extracts the qualified column from a sqlite UNIQUE
// violation, e.g. "users.email". Empty when the error carries no column.
func DuplicateColumn(err error) string {
	if err == nil {
		return ""
	}
	const prefix = "UNIQUE constraint failed: "
	msg := err.Error()
	i := strings.Index(msg, prefix)
	if i < 0 {
		return ""
	}
	column := msg[i+len(prefix):]
	if j := strings.IndexAny(column, ", "); j >= 0 {
		column = column[:j]
	}
	return column
}
