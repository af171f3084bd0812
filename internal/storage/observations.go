// ABOUTME: Observation CRUD operations for the HealthData fact table.
// ABOUTME: Inserts enforce the two-decimal scale; reads support filtered listing.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"weartrack/internal/models"
)

// ObservationFilter narrows ListObservations. Nil fields match everything.
type ObservationFilter struct {
	UserID   *int64
	MetricID *int64
	DeviceID *int64
	Since    *time.Time
	Limit    int
}

// CreateObservation stores a new data point and fills in the assigned ID.
// The referenced user, metric, and device must exist.
func (d *DB) CreateObservation(o *models.Observation) error {
	query := `
		INSERT INTO HealthData (Value, Timestamp, UserID, MetricID, DeviceID)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		models.RoundValue(o.Value),
		o.Timestamp.Format(time.RFC3339),
		o.UserID,
		o.MetricID,
		o.DeviceID,
	)
	if err != nil {
		return mapConstraintError("create observation", err)
	}

	o.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create observation: %w", err)
	}
	o.Value = models.RoundValue(o.Value)
	return nil
}

// GetObservation retrieves a data point by ID.
func (d *DB) GetObservation(id int64) (*models.Observation, error) {
	query := `
		SELECT DataID, Value, Timestamp, UserID, MetricID, DeviceID
		FROM HealthData
		WHERE DataID = ?
	`
	o, err := scanObservation(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// ListObservations retrieves data points matching the filter, most recent first.
func (d *DB) ListObservations(f ObservationFilter) ([]*models.Observation, error) {
	query := `
		SELECT DataID, Value, Timestamp, UserID, MetricID, DeviceID
		FROM HealthData
	`
	var conds []string
	var args []interface{}

	if f.UserID != nil {
		conds = append(conds, "UserID = ?")
		args = append(args, *f.UserID)
	}
	if f.MetricID != nil {
		conds = append(conds, "MetricID = ?")
		args = append(args, *f.MetricID)
	}
	if f.DeviceID != nil {
		conds = append(conds, "DeviceID = ?")
		args = append(args, *f.DeviceID)
	}
	if f.Since != nil {
		conds = append(conds, "Timestamp >= ?")
		args = append(args, f.Since.Format(time.RFC3339))
	}

	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY Timestamp DESC, DataID DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	defer rows.Close()

	var observations []*models.Observation
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}
	return observations, rows.Err()
}

// DeleteObservation removes a single data point.
func (d *DB) DeleteObservation(id int64) error {
	res, err := d.db.Exec(`DELETE FROM HealthData WHERE DataID = ?`, id)
	if err != nil {
		return fmt.Errorf("delete observation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete observation: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete observation %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanObservation(row rowScanner) (*models.Observation, error) {
	var o models.Observation
	var ts string

	err := row.Scan(&o.ID, &o.Value, &ts, &o.UserID, &o.MetricID, &o.DeviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan observation: %w", err)
	}

	o.Timestamp, _ = time.Parse(time.RFC3339, ts)
	return &o, nil
}
