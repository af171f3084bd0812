// ABOUTME: Read-only report queries over the wearable data.
// ABOUTME: Joins and aggregations across users, devices, metrics, and observations.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// MetricAverage is the aggregate for one metric across all observations.
type MetricAverage struct {
	MetricName string
	Unit       string
	Average    float64
	Count      int64
}

// TimelineEntry is one observation resolved against the metric catalog and
// the recording device.
type TimelineEntry struct {
	DataID     int64
	Value      float64
	Timestamp  time.Time
	MetricName string
	Unit       string
	DeviceName string
}

// UserActivity summarizes observation volume per user.
type UserActivity struct {
	UserID   int64
	FullName string
	Email    string
	Count    int64
	LastSeen time.Time
}

// DeviceUsage summarizes observation volume per device.
type DeviceUsage struct {
	DeviceID int64
	Model    string
	Name     string
	Count    int64
}

// AverageForMetric computes the mean observed value for a metric by name.
func (d *DB) AverageForMetric(metricName string) (*MetricAverage, error) {
	query := `
		SELECT hm.MetricName, hm.Unit, AVG(hd.Value), COUNT(hd.DataID)
		FROM HealthMetric hm
		LEFT JOIN HealthData hd ON hd.MetricID = hm.MetricID
		WHERE hm.MetricName = ?
		GROUP BY hm.MetricID
	`
	var avg MetricAverage
	var mean sql.NullFloat64

	err := d.db.QueryRow(query, metricName).Scan(&avg.MetricName, &avg.Unit, &mean, &avg.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("metric %q: %w", metricName, ErrNotFound)
		}
		return nil, fmt.Errorf("average for metric: %w", err)
	}

	if mean.Valid {
		avg.Average = mean.Float64
	}
	return &avg, nil
}

// UserTimeline returns a user's observations joined to the metric catalog
// and recording device, most recent first.
func (d *DB) UserTimeline(userID int64, limit int) ([]*TimelineEntry, error) {
	query := `
		SELECT hd.DataID, hd.Value, hd.Timestamp, hm.MetricName, hm.Unit, dev.DeviceName
		FROM HealthData hd
		JOIN HealthMetric hm ON hm.MetricID = hd.MetricID
		JOIN Device dev ON dev.DeviceID = hd.DeviceID
		WHERE hd.UserID = ?
		ORDER BY hd.Timestamp DESC, hd.DataID DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("user timeline: %w", err)
	}
	defer rows.Close()

	var entries []*TimelineEntry
	for rows.Next() {
		var e TimelineEntry
		var ts string
		if err := rows.Scan(&e.DataID, &e.Value, &ts, &e.MetricName, &e.Unit, &e.DeviceName); err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, ts)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// ActivityByUser returns per-user observation counts, busiest first.
func (d *DB) ActivityByUser() ([]*UserActivity, error) {
	query := `
		SELECT u.UserID, u.FirstName || ' ' || u.LastName, u.Email,
		       COUNT(hd.DataID), COALESCE(MAX(hd.Timestamp), '')
		FROM Users u
		LEFT JOIN HealthData hd ON hd.UserID = u.UserID
		GROUP BY u.UserID
		ORDER BY COUNT(hd.DataID) DESC, u.UserID
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("activity by user: %w", err)
	}
	defer rows.Close()

	var activity []*UserActivity
	for rows.Next() {
		var a UserActivity
		var lastSeen string
		if err := rows.Scan(&a.UserID, &a.FullName, &a.Email, &a.Count, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan user activity: %w", err)
		}
		if lastSeen != "" {
			a.LastSeen, _ = time.Parse(time.RFC3339, lastSeen)
		}
		activity = append(activity, &a)
	}
	return activity, rows.Err()
}

// UsageByDevice returns per-device observation counts, busiest first.
func (d *DB) UsageByDevice() ([]*DeviceUsage, error) {
	query := `
		SELECT dev.DeviceID, dev.Model, dev.DeviceName, COUNT(hd.DataID)
		FROM Device dev
		LEFT JOIN HealthData hd ON hd.DeviceID = dev.DeviceID
		GROUP BY dev.DeviceID
		ORDER BY COUNT(hd.DataID) DESC, dev.DeviceID
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("usage by device: %w", err)
	}
	defer rows.Close()

	var usage []*DeviceUsage
	for rows.Next() {
		var u DeviceUsage
		if err := rows.Scan(&u.DeviceID, &u.Model, &u.Name, &u.Count); err != nil {
			return nil, fmt.Errorf("scan device usage: %w", err)
		}
		usage = append(usage, &u)
	}
	return usage, rows.Err()
}
