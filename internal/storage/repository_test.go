// ABOUTME: Tests for entity CRUD against SQLite.
// ABOUTME: Covers users, devices, and the metric catalog, plus constraint errors.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"weartrack/internal/models"
)

func TestCreateAndGetUser(t *testing.T) {
	db := setupTestDB(t)

	u := models.NewUser("Alice", "Smith", "alice.smith@example.com").
		WithAge(34).
		WithGender("female")

	if err := db.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("Expected assigned user ID")
	}

	got, err := db.GetUser(u.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Email != "alice.smith@example.com" {
		t.Errorf("Email mismatch: got %q", got.Email)
	}
	if got.Age == nil || *got.Age != 34 {
		t.Errorf("Age mismatch: got %v", got.Age)
	}
	if got.FullName() != "Alice Smith" {
		t.Errorf("FullName mismatch: got %q", got.FullName())
	}
}

func TestGetUserByEmail(t *testing.T) {
	db := setupTestDB(t)

	u := models.NewUser("Bob", "Johnson", "bob.johnson@example.com")
	if err := db.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := db.GetUserByEmail("bob.johnson@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("ID mismatch: got %d, want %d", got.ID, u.ID)
	}

	if _, err := db.GetUserByEmail("nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	db := setupTestDB(t)

	if err := db.CreateUser(models.NewUser("Alice", "Smith", "alice@example.com")); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	err := db.CreateUser(models.NewUser("Other", "Person", "alice@example.com"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate for reused email, got %v", err)
	}
}

func TestNullRequiredColumnRejected(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Conn().Exec(`
		INSERT INTO Users (FirstName, LastName, Email, RegistrationDate)
		VALUES (NULL, 'Smith', 'x@example.com', '2024-01-01')
	`)
	if err == nil {
		t.Fatal("Expected NOT NULL violation")
	}
	if !errors.Is(mapConstraintError("insert", err), ErrNotNull) {
		t.Errorf("Expected ErrNotNull mapping, got %v", err)
	}
}

func TestListUsersOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)

	old := models.NewUser("Old", "Timer", "old@example.com").
		WithRegistrationDate(time.Now().Add(-48 * time.Hour))
	recent := models.NewUser("New", "Comer", "new@example.com").
		WithRegistrationDate(time.Now())

	for _, u := range []*models.User{old, recent} {
		if err := db.CreateUser(u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	users, err := db.ListUsers(0)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if users[0].ID != recent.ID {
		t.Errorf("Expected most recent registration first, got %q", users[0].Email)
	}

	limited, err := db.ListUsers(1)
	if err != nil {
		t.Fatalf("ListUsers with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 user with limit, got %d", len(limited))
	}
}

func TestCreateAndAssignDevice(t *testing.T) {
	db := setupTestDB(t)

	u := models.NewUser("Alice", "Smith", "alice@example.com")
	if err := db.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	dev := models.NewDevice("FitBit Charge 5", "Alice's Charge 5")
	if err := db.CreateDevice(dev); err != nil {
		t.Fatalf("CreateDevice failed: %v", err)
	}

	got, err := db.GetDevice(dev.ID)
	if err != nil {
		t.Fatalf("GetDevice failed: %v", err)
	}
	if got.OwnerID != nil {
		t.Errorf("Expected unassigned device, got owner %d", *got.OwnerID)
	}

	if err := db.AssignDevice(dev.ID, u.ID); err != nil {
		t.Fatalf("AssignDevice failed: %v", err)
	}

	got, err = db.GetDevice(dev.ID)
	if err != nil {
		t.Fatalf("GetDevice after assign failed: %v", err)
	}
	if got.OwnerID == nil || *got.OwnerID != u.ID {
		t.Errorf("Expected owner %d, got %v", u.ID, got.OwnerID)
	}

	owned, err := db.ListDevices(&u.ID, 0)
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(owned) != 1 || owned[0].ID != dev.ID {
		t.Errorf("Expected exactly the assigned device, got %v", owned)
	}
}

func TestAssignDeviceToMissingUser(t *testing.T) {
	db := setupTestDB(t)

	dev := models.NewDevice("WHOOP 4.0", "Strap")
	if err := db.CreateDevice(dev); err != nil {
		t.Fatalf("CreateDevice failed: %v", err)
	}

	err := db.AssignDevice(dev.ID, 9999)
	if !errors.Is(err, ErrForeignKey) {
		t.Errorf("Expected ErrForeignKey, got %v", err)
	}
}

func TestCreateAndGetMetric(t *testing.T) {
	db := setupTestDB(t)

	m := models.NewHealthMetric("Heart Rate", "bpm")
	if err := db.CreateMetric(m); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}

	got, err := db.GetMetricByName("Heart Rate")
	if err != nil {
		t.Fatalf("GetMetricByName failed: %v", err)
	}
	if got.ID != m.ID || got.Unit != "bpm" {
		t.Errorf("Metric mismatch: got %+v", got)
	}
}

func TestDuplicateMetricNameRejected(t *testing.T) {
	db := setupTestDB(t)

	if err := db.CreateMetric(models.NewHealthMetric("Heart Rate", "bpm")); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}

	err := db.CreateMetric(models.NewHealthMetric("Heart Rate", "beats"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate for reused metric name, got %v", err)
	}
}

func TestListMetricsSorted(t *testing.T) {
	db := setupTestDB(t)

	for _, m := range []*models.HealthMetric{
		models.NewHealthMetric("Steps", "steps"),
		models.NewHealthMetric("Heart Rate", "bpm"),
	} {
		if err := db.CreateMetric(m); err != nil {
			t.Fatalf("CreateMetric failed: %v", err)
		}
	}

	metrics, err := db.ListMetrics()
	if err != nil {
		t.Fatalf("ListMetrics failed: %v", err)
	}
	if len(metrics) != 2 {
		t.Fatalf("Expected 2 metrics, got %d", len(metrics))
	}
	if metrics[0].Name != "Heart Rate" {
		t.Errorf("Expected name-sorted catalog, got %q first", metrics[0].Name)
	}
}

func TestDeleteMissingRows(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.DeleteUser(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteUser: expected ErrNotFound, got %v", err)
	}
	if err := db.DeleteDevice(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteDevice: expected ErrNotFound, got %v", err)
	}
	if err := db.DeleteMetric(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteMetric: expected ErrNotFound, got %v", err)
	}
	if err := db.DeleteObservation(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteObservation: expected ErrNotFound, got %v", err)
	}
	if err := db.DeleteRecommendation(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRecommendation: expected ErrNotFound, got %v", err)
	}
}

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "weartrack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "weartrack.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
