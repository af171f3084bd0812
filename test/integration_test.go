// ABOUTME: Integration tests for the weartrack CLI.
// ABOUTME: Builds the binary and exercises the full workflow end to end.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "weartrack-test-bin")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/weartrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Redirect the database to a temp directory
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(), "WEARTRACK_DATA_DIR="+tmpDir)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Seed the sample dataset
	output, err := run("seed")
	if err != nil {
		t.Fatalf("Failed to seed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Seeded sample data") {
		t.Errorf("Expected 'Seeded sample data' in output, got: %s", output)
	}

	// Seeding again is a no-op
	output, err = run("seed")
	if err != nil {
		t.Fatalf("Failed on repeat seed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "nothing to do") {
		t.Errorf("Expected no-op message on repeat seed, got: %s", output)
	}

	// List users
	output, err = run("user", "list")
	if err != nil {
		t.Fatalf("Failed to list users: %v\n%s", err, output)
	}
	if !strings.Contains(output, "alice.smith@example.com") {
		t.Errorf("Expected seeded user in list output, got: %s", output)
	}

	// Record a data point
	output, err = run("data", "add", "81.9",
		"--user", "alice.smith@example.com",
		"--metric", "Heart Rate",
		"--device", "1")
	if err != nil {
		t.Fatalf("Failed to add data point: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Recorded Heart Rate") {
		t.Errorf("Expected 'Recorded Heart Rate' in output, got: %s", output)
	}

	// Average report
	output, err = run("report", "avg", "Heart Rate")
	if err != nil {
		t.Fatalf("Failed to run avg report: %v\n%s", err, output)
	}
	if !strings.Contains(output, "bpm") {
		t.Errorf("Expected unit in avg output, got: %s", output)
	}

	// Timeline for one user
	output, err = run("report", "timeline", "alice.smith@example.com")
	if err != nil {
		t.Fatalf("Failed to run timeline: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Heart Rate") {
		t.Errorf("Expected metric name in timeline, got: %s", output)
	}

	// Export and re-import into a fresh data dir
	exportFile := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "json", "--output", exportFile)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}

	freshDir := t.TempDir()
	cmd := exec.Command(binary, "import", exportFile)
	cmd.Env = append(os.Environ(), "WEARTRACK_DATA_DIR="+freshDir)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to import: %v\n%s", err, out)
	}

	cmd = exec.Command(binary, "user", "list")
	cmd.Env = append(os.Environ(), "WEARTRACK_DATA_DIR="+freshDir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to list after import: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "alice.smith@example.com") {
		t.Errorf("Expected imported user in fresh database, got: %s", out)
	}

	// Delete a user and confirm the purge
	output, err = run("user", "delete", "bob.johnson@example.com")
	if err != nil {
		t.Fatalf("Failed to delete user: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Deleted Bob Johnson") {
		t.Errorf("Expected deletion confirmation, got: %s", output)
	}

	// Schema version
	output, err = run("migrate", "status")
	if err != nil {
		t.Fatalf("Failed to read schema version: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Schema version: 2") {
		t.Errorf("Expected schema version 2, got: %s", output)
	}
}
