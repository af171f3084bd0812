// ABOUTME: Tests for the bundled sample dataset.
// ABOUTME: Verifies counts, referential integrity, and idempotence.
package storage

import (
	"testing"
)

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	summary, err := db.Seed()
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if summary == nil {
		t.Fatal("Expected a seed summary for an empty database")
	}

	if summary.Users != 20 {
		t.Errorf("Users: got %d, want 20", summary.Users)
	}
	if summary.Devices != 20 {
		t.Errorf("Devices: got %d, want 20", summary.Devices)
	}
	if summary.Metrics != 20 {
		t.Errorf("Metrics: got %d, want 20", summary.Metrics)
	}
	if summary.Observations != 40 {
		t.Errorf("Observations: got %d, want 40", summary.Observations)
	}
	if summary.Recommendations != 20 {
		t.Errorf("Recommendations: got %d, want 20", summary.Recommendations)
	}

	seeded, err := db.Seeded()
	if err != nil {
		t.Fatalf("Seeded failed: %v", err)
	}
	if !seeded {
		t.Error("Expected Seeded to report true after seeding")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.Seed(); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}

	summary, err := db.Seed()
	if err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	if summary != nil {
		t.Errorf("Expected no-op on a seeded database, got %+v", summary)
	}

	users, err := db.ListUsers(0)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 20 {
		t.Errorf("Expected 20 users after repeat seed, got %d", len(users))
	}
}

func TestSeedReferentialIntegrity(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	// Every observation must resolve through the joined timeline, so no
	// fact row may point at a missing user, metric, or device.
	users, err := db.ListUsers(0)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	total := 0
	for _, u := range users {
		entries, err := db.UserTimeline(u.ID, 0)
		if err != nil {
			t.Fatalf("UserTimeline for %s failed: %v", u.Email, err)
		}
		total += len(entries)
	}
	if total != 40 {
		t.Errorf("Expected 40 joined timeline entries, got %d", total)
	}

	// Alice's seeded heart-rate reading.
	alice, err := db.GetUserByEmail("alice.smith@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	entries, err := db.UserTimeline(alice.ID, 0)
	if err != nil {
		t.Fatalf("UserTimeline failed: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.MetricName == "Heart Rate" && e.Value == 75.5 {
			found = true
		}
	}
	if !found {
		t.Error("Expected Alice's 75.5 bpm heart-rate reading in the timeline")
	}
}

func TestSeedCatalogComplete(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	hr, err := db.GetMetricByName("Heart Rate")
	if err != nil {
		t.Fatalf("GetMetricByName failed: %v", err)
	}
	if hr.Unit != "bpm" {
		t.Errorf("Heart Rate unit: got %q, want bpm", hr.Unit)
	}

	metrics, err := db.ListMetrics()
	if err != nil {
		t.Fatalf("ListMetrics failed: %v", err)
	}
	if len(metrics) != 20 {
		t.Errorf("Expected the 20-entry catalog, got %d", len(metrics))
	}
}
