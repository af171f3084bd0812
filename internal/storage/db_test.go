// ABOUTME: Tests for database lifecycle and schema migrations.
// ABOUTME: Reopen idempotence, rollback, and the device-owner column.
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"weartrack/internal/models"
)

func TestOpenIsIdempotent(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "weartrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "weartrack.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("First open failed: %v", err)
	}

	u := models.NewUser("Alice", "Smith", "alice@example.com")
	if err := db.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Second open failed: %v", err)
	}
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.GetUser(u.ID)
	if err != nil {
		t.Fatalf("GetUser after reopen failed: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("Data lost across reopen: got %q", got.Email)
	}
}

func TestSchemaVersion(t *testing.T) {
	db := setupTestDB(t)

	version, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("Expected schema version 2, got %d", version)
	}
}

func TestMigrateDownAndUp(t *testing.T) {
	db := setupTestDB(t)

	if err := db.MigrateDown(); err != nil {
		t.Fatalf("MigrateDown failed: %v", err)
	}
	version, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("Expected version 1 after rollback, got %d", version)
	}

	// Version 1 has no Device.UserID column.
	if _, err := db.Conn().Exec(`SELECT UserID FROM Device LIMIT 1`); err == nil {
		t.Error("Expected Device.UserID to be gone after rollback")
	}

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	version, err = db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("Expected version 2 after re-migrate, got %d", version)
	}
	if _, err := db.Conn().Exec(`SELECT UserID FROM Device LIMIT 1`); err != nil {
		t.Errorf("Expected Device.UserID back after re-migrate: %v", err)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	var enabled int64
	if err := db.Conn().QueryRow(`PRAGMA foreign_keys`).Scan(&enabled); err != nil {
		t.Fatalf("PRAGMA query failed: %v", err)
	}
	if enabled != 1 {
		t.Error("Expected foreign_keys pragma to be on")
	}
}
