package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}

func OpenSQLite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	// SQLite allows a single writer; serialize access through one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

// OpenFor opens the database for a driver name ("sqlite" or "pgx").
func OpenFor(driver, sqlitePath, databaseURL string) (*sql.DB, error) {
	switch driver {
	case "sqlite":
		return OpenSQLite(sqlitePath)
	case "pgx", "postgres":
		if databaseURL == "" {
			return nil, fmt.Errorf("openDB: DATABASE_URL is required for driver %q", driver)
		}
		return Open(databaseURL)
	}
	return nil, fmt.Errorf("openDB: unsupported driver %q", driver)
}
