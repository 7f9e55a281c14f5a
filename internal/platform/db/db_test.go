package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLite(t *testing.T) {
	db, err := OpenFor("sqlite", filepath.Join(t.TempDir(), "app.db"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)"); err != nil {
		t.Fatalf("exec: %v", err)
	}
}

func TestOpenForRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenFor("mysql", "", ""); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if _, err := OpenFor("pgx", "", ""); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}
