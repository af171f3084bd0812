// ABOUTME: Tests for snapshot export and import.
// ABOUTME: JSON round trip into a fresh database plus YAML and Markdown rendering.
package storage

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	if _, err := src.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	data, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	alice, err := src.GetUserByEmail("alice.smith@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail on source failed: %v", err)
	}
	copied, err := dst.GetUser(alice.ID)
	if err != nil {
		t.Fatalf("GetUser on destination failed: %v", err)
	}
	if copied.Email != alice.Email {
		t.Errorf("Row ID not preserved: got %q at ID %d", copied.Email, alice.ID)
	}

	srcObs, err := src.ListObservations(ObservationFilter{})
	if err != nil {
		t.Fatalf("ListObservations on source failed: %v", err)
	}
	dstObs, err := dst.ListObservations(ObservationFilter{})
	if err != nil {
		t.Fatalf("ListObservations on destination failed: %v", err)
	}
	if len(srcObs) != len(dstObs) {
		t.Errorf("Observation count mismatch: %d vs %d", len(srcObs), len(dstObs))
	}
}

func TestImportIntoPopulatedDatabaseFails(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	if err := db.ImportJSON(data); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate importing over existing rows, got %v", err)
	}
}

func TestSnapshotMetadata(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.Version != "1.0" {
		t.Errorf("Version: got %q", s.Version)
	}
	if s.Tool != "weartrack" {
		t.Errorf("Tool: got %q", s.Tool)
	}
	if s.SnapshotID == "" {
		t.Error("Expected a snapshot ID")
	}
	if len(s.Users) != 20 || len(s.Metrics) != 20 {
		t.Errorf("Unexpected snapshot sizes: %d users, %d metrics", len(s.Users), len(s.Metrics))
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	out, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "alice.smith@example.com") {
		t.Error("Expected seeded user in YAML output")
	}
	if !strings.Contains(text, "Heart Rate") {
		t.Error("Expected catalog metric in YAML output")
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	out, err := db.ExportMarkdown(nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	if !strings.Contains(out, "## Alice Smith (alice.smith@example.com)") {
		t.Error("Expected per-user section heading")
	}
	if !strings.Contains(out, "| Date | Metric | Value | Device |") {
		t.Error("Expected timeline table header")
	}
	if !strings.Contains(out, "75.50 bpm") {
		t.Error("Expected Alice's heart-rate row")
	}
}
