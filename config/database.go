package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const defaultDatabasePath = "data/jewelbooks.db"

var (
	db *gorm.DB
)

func GetDB() *gorm.DB {
	return db
}

func init() {
	// Load env from .env
	godotenv.Load()
}

// DatabasePath returns the SQLite file path, DB_PATH overrides the default.
func DatabasePath() string {
	if p := strings.TrimSpace(os.Getenv("DB_PATH")); p != "" {
		return p
	}
	return defaultDatabasePath
}

// ConnectDatabase opens the local SQLite store and sets the global DB.
// Call this from main() before wiring routes.
func ConnectDatabase() {
	path := DatabasePath()

	var err error
	db, err = OpenDatabase(path)
	if err != nil {
		log.Fatalf("failed to open database at %s: %v", path, err)
	}
	log.Printf("connected to database at %s", path)
}

// OpenDatabase opens a SQLite database without touching the global handle.
// Tests and the cmd/ tools use this to hold their own connection.
func OpenDatabase(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file::memory:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), initConfig())
	if err != nil {
		return nil, err
	}

	if sqlDB, derr := gdb.DB(); derr == nil && sqlDB != nil {
		// Single-writer local app: keep the pool small.
		maxOpen := intFromEnv("DB_MAX_OPEN_CONNS", 1)
		maxIdle := intFromEnv("DB_MAX_IDLE_CONNS", 1)
		if maxOpen > 0 {
			sqlDB.SetMaxOpenConns(maxOpen)
		}
		if maxIdle >= 0 {
			sqlDB.SetMaxIdleConns(maxIdle)
		}
		sqlDB.SetConnMaxLifetime(time.Hour)

		// SQLite reliability tuning.
		sqlDB.Exec("PRAGMA journal_mode = WAL;")
		sqlDB.Exec("PRAGMA synchronous = NORMAL;")
		sqlDB.Exec("PRAGMA foreign_keys = ON;")
	}

	return gdb, nil
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// InitConfig Initialize Config
func initConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         initLog(),
		NamingStrategy: initNamingStrategy(),
	}
}

// InitLog Connection Log Configuration
func initLog() logger.Interface {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			Colorful:      false,
			LogLevel:      logger.Error,
			SlowThreshold: time.Second,
		},
	)
	return newLogger
}

// InitNamingStrategy Init NamingStrategy
func initNamingStrategy() *schema.NamingStrategy {
	return &schema.NamingStrategy{
		SingularTable: false,
		TablePrefix:   "",
	}
}
