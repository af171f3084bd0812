// ABOUTME: Export and import functionality for wearable health data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"weartrack/internal/models"
)

// Snapshot represents the full export format for wearable health data.
// Row IDs are preserved so foreign-key references survive the round trip.
type Snapshot struct {
	Version         string                   `json:"version" yaml:"version"`
	SnapshotID      string                   `json:"snapshot_id" yaml:"snapshot_id"`
	ExportedAt      time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool            string                   `json:"tool" yaml:"tool"`
	Users           []*models.User           `json:"users" yaml:"users"`
	Devices         []*models.Device         `json:"devices" yaml:"devices"`
	Metrics         []*models.HealthMetric   `json:"metrics" yaml:"metrics"`
	Observations    []*models.Observation    `json:"observations" yaml:"observations"`
	Recommendations []*models.Recommendation `json:"recommendations" yaml:"recommendations"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*Snapshot, error) {
	users, err := d.ListUsers(0)
	if err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	devices, err := d.ListDevices(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("export devices: %w", err)
	}
	metrics, err := d.ListMetrics()
	if err != nil {
		return nil, fmt.Errorf("export metrics: %w", err)
	}
	observations, err := d.ListObservations(ObservationFilter{})
	if err != nil {
		return nil, fmt.Errorf("export observations: %w", err)
	}
	recommendations, err := d.ListRecommendations(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("export recommendations: %w", err)
	}

	return &Snapshot{
		Version:         "1.0",
		SnapshotID:      uuid.NewString(),
		ExportedAt:      time.Now(),
		Tool:            "weartrack",
		Users:           users,
		Devices:         devices,
		Metrics:         metrics,
		Observations:    observations,
		Recommendations: recommendations,
	}, nil
}

// ImportData loads a snapshot into the database, preserving row IDs.
// Parents are inserted before facts so foreign keys resolve. Importing into
// a database that already holds conflicting rows fails with ErrDuplicate.
func (d *DB) ImportData(s *Snapshot) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range s.Users {
		_, err := tx.Exec(`
			INSERT INTO Users (UserID, FirstName, LastName, Age, Email, Gender, RegistrationDate)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Gender, u.RegistrationDate.Format(time.RFC3339))
		if err != nil {
			return mapConstraintError("import user", err)
		}
	}
	for _, dev := range s.Devices {
		_, err := tx.Exec(`
			INSERT INTO Device (DeviceID, Model, DeviceName, UserID)
			VALUES (?, ?, ?, ?)
		`, dev.ID, dev.Model, dev.Name, dev.OwnerID)
		if err != nil {
			return mapConstraintError("import device", err)
		}
	}
	for _, m := range s.Metrics {
		_, err := tx.Exec(`
			INSERT INTO HealthMetric (MetricID, Unit, MetricName)
			VALUES (?, ?, ?)
		`, m.ID, m.Unit, m.Name)
		if err != nil {
			return mapConstraintError("import metric", err)
		}
	}
	for _, o := range s.Observations {
		_, err := tx.Exec(`
			INSERT INTO HealthData (DataID, Value, Timestamp, UserID, MetricID, DeviceID)
			VALUES (?, ?, ?, ?, ?, ?)
		`, o.ID, models.RoundValue(o.Value), o.Timestamp.Format(time.RFC3339), o.UserID, o.MetricID, o.DeviceID)
		if err != nil {
			return mapConstraintError("import observation", err)
		}
	}
	for _, r := range s.Recommendations {
		_, err := tx.Exec(`
			INSERT INTO Recommendation (RecommendationID, Title, Description, UserID)
			VALUES (?, ?, ?, ?)
		`, r.ID, r.Title, r.Description, r.UserID)
		if err != nil {
			return mapConstraintError("import recommendation", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown renders the data as a Markdown report, one section per
// user, observations resolved against the catalog and device tables.
func (d *DB) ExportMarkdown(since *time.Time) (string, error) {
	users, err := d.ListUsers(0)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Wearable Health Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, u := range users {
		entries, err := d.UserTimeline(u.ID, 0)
		if err != nil {
			return "", err
		}
		if since != nil {
			var filtered []*TimelineEntry
			for _, e := range entries {
				if !e.Timestamp.Before(*since) {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}
		if len(entries) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", u.FullName(), u.Email))
		sb.WriteString("| Date | Metric | Value | Device |\n")
		sb.WriteString("|------|--------|-------|--------|\n")
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f %s | %s |\n",
				e.Timestamp.Format("2006-01-02 15:04"),
				e.MetricName, e.Value, e.Unit, e.DeviceName))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ImportJSON imports a snapshot from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&s)
}
