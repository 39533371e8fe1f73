package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqliteDSNOptions tune the connection for a single-process server: WAL keeps
// readers off the writers' lock, and the busy timeout rides out the short
// write bursts the status-change transactions produce.
const sqliteDSNOptions = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// OpenSQLite opens (creating if necessary) the habit database at dbPath and
// brings its schema up to date from the embedded migrations.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dataDir, err)
	}

	database, err := gorm.Open(sqlite.Open(dbPath+"?"+sqliteDSNOptions), &gorm.Config{
		Logger: storageLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", dbPath, err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return database, nil
}

func storageLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stderr, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
