// ABOUTME: HealthMetric catalog CRUD operations for SQLite storage.
// ABOUTME: Metric names are unique; the catalog is reference data.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"weartrack/internal/models"
)

// CreateMetric stores a new catalog entry and fills in the assigned ID.
func (d *DB) CreateMetric(m *models.HealthMetric) error {
	query := `
		INSERT INTO HealthMetric (Unit, MetricName)
		VALUES (?, ?)
	`
	res, err := d.db.Exec(query, m.Unit, m.Name)
	if err != nil {
		return mapConstraintError("create metric", err)
	}

	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create metric: %w", err)
	}
	return nil
}

// GetMetric retrieves a catalog entry by ID.
func (d *DB) GetMetric(id int64) (*models.HealthMetric, error) {
	query := `
		SELECT MetricID, Unit, MetricName
		FROM HealthMetric
		WHERE MetricID = ?
	`
	return scanMetric(d.db.QueryRow(query, id))
}

// GetMetricByName retrieves a catalog entry by its unique name.
func (d *DB) GetMetricByName(name string) (*models.HealthMetric, error) {
	query := `
		SELECT MetricID, Unit, MetricName
		FROM HealthMetric
		WHERE MetricName = ?
	`
	return scanMetric(d.db.QueryRow(query, name))
}

// ListMetrics retrieves the full catalog ordered by name.
func (d *DB) ListMetrics() ([]*models.HealthMetric, error) {
	query := `
		SELECT MetricID, Unit, MetricName
		FROM HealthMetric
		ORDER BY MetricName
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	var metrics []*models.HealthMetric
	for rows.Next() {
		var m models.HealthMetric
		if err := rows.Scan(&m.ID, &m.Unit, &m.Name); err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}
		metrics = append(metrics, &m)
	}
	return metrics, rows.Err()
}

// DeleteMetric removes a catalog entry. Observations of it cascade away.
func (d *DB) DeleteMetric(id int64) error {
	res, err := d.db.Exec(`DELETE FROM HealthMetric WHERE MetricID = ?`, id)
	if err != nil {
		return fmt.Errorf("delete metric: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete metric: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete metric %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanMetric(row *sql.Row) (*models.HealthMetric, error) {
	var m models.HealthMetric
	err := row.Scan(&m.ID, &m.Unit, &m.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan metric: %w", err)
	}
	return &m, nil
}
