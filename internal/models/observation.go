// ABOUTME: Observation model for the HealthData fact table.
// ABOUTME: Each row ties a numeric value to one user, one metric, and one device.
package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Observation is a single recorded data point from a wearable device.
type Observation struct {
	ID        int64     `json:"id" yaml:"id"`
	Value     float64   `json:"value" yaml:"value"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	UserID    int64     `json:"user_id" yaml:"user_id"`
	MetricID  int64     `json:"metric_id" yaml:"metric_id"`
	DeviceID  int64     `json:"device_id" yaml:"device_id"`
}

// NewObservation creates an observation recorded now.
// The value is rounded to two decimal places, matching the column's scale.
func NewObservation(userID, metricID, deviceID int64, value float64) *Observation {
	return &Observation{
		Value:     RoundValue(value),
		Timestamp: time.Now(),
		UserID:    userID,
		MetricID:  metricID,
		DeviceID:  deviceID,
	}
}

// WithTimestamp sets a custom recording time.
func (o *Observation) WithTimestamp(t time.Time) *Observation {
	o.Timestamp = t
	return o
}

// RoundValue rounds to the two-decimal scale of the Value column.
func RoundValue(v float64) float64 {
	return math.Round(v*100) / 100
}

// Validate checks the required columns before hitting the database.
func (o *Observation) Validate() error {
	var missing []string
	if o.Timestamp.IsZero() {
		missing = append(missing, "timestamp")
	}
	if o.UserID == 0 {
		missing = append(missing, "user id")
	}
	if o.MetricID == 0 {
		missing = append(missing, "metric id")
	}
	if o.DeviceID == 0 {
		missing = append(missing, "device id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("observation missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
