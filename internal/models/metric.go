// ABOUTME: HealthMetric catalog model and the default wearable metric catalog.
// ABOUTME: Metric names are unique across the catalog; units are display strings.
package models

import "fmt"

// HealthMetric is a catalog entry describing a measurable quantity and its unit.
type HealthMetric struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Unit string `json:"unit" yaml:"unit"`
}

// NewHealthMetric creates a catalog entry.
func NewHealthMetric(name, unit string) *HealthMetric {
	return &HealthMetric{
		Name: name,
		Unit: unit,
	}
}

// Validate checks the required columns before hitting the database.
func (m *HealthMetric) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("metric missing required field: name")
	}
	if m.Unit == "" {
		return fmt.Errorf("metric missing required field: unit")
	}
	return nil
}

// DefaultCatalog lists the metrics a typical wearable reports.
var DefaultCatalog = []HealthMetric{
	{Name: "Heart Rate", Unit: "bpm"},
	{Name: "Resting Heart Rate", Unit: "bpm"},
	{Name: "Heart Rate Variability", Unit: "ms"},
	{Name: "Steps", Unit: "steps"},
	{Name: "Distance", Unit: "km"},
	{Name: "Calories Burned", Unit: "kcal"},
	{Name: "Active Minutes", Unit: "min"},
	{Name: "Floors Climbed", Unit: "floors"},
	{Name: "Sleep Duration", Unit: "hours"},
	{Name: "Deep Sleep", Unit: "hours"},
	{Name: "REM Sleep", Unit: "hours"},
	{Name: "Blood Oxygen", Unit: "%"},
	{Name: "Systolic Blood Pressure", Unit: "mmHg"},
	{Name: "Diastolic Blood Pressure", Unit: "mmHg"},
	{Name: "Body Temperature", Unit: "°C"},
	{Name: "Skin Temperature", Unit: "°C"},
	{Name: "Respiratory Rate", Unit: "breaths/min"},
	{Name: "Stress Score", Unit: "scale"},
	{Name: "VO2 Max", Unit: "ml/kg/min"},
	{Name: "Hydration", Unit: "ml"},
}

// UnitFor returns the catalog unit for a metric name, or "" if unknown.
func UnitFor(name string) string {
	for _, m := range DefaultCatalog {
		if m.Name == name {
			return m.Unit
		}
	}
	return ""
}
