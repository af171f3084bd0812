// ABOUTME: Repository interface for wearable health data storage.
// ABOUTME: Defines the contract for entity CRUD, reports, seeding, and export.
package storage

import (
	"weartrack/internal/models"
)

// Repository defines the storage interface for wearable health data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// User operations
	CreateUser(u *models.User) error
	GetUser(id int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers(limit int) ([]*models.User, error)
	DeleteUser(id int64) (*PurgeSummary, error)

	// Device operations
	CreateDevice(dev *models.Device) error
	GetDevice(id int64) (*models.Device, error)
	ListDevices(ownerID *int64, limit int) ([]*models.Device, error)
	AssignDevice(deviceID, userID int64) error
	DeleteDevice(id int64) error

	// Metric catalog operations
	CreateMetric(m *models.HealthMetric) error
	GetMetric(id int64) (*models.HealthMetric, error)
	GetMetricByName(name string) (*models.HealthMetric, error)
	ListMetrics() ([]*models.HealthMetric, error)
	DeleteMetric(id int64) error

	// Observation operations
	CreateObservation(o *models.Observation) error
	GetObservation(id int64) (*models.Observation, error)
	ListObservations(f ObservationFilter) ([]*models.Observation, error)
	DeleteObservation(id int64) error

	// Recommendation operations
	CreateRecommendation(r *models.Recommendation) error
	GetRecommendation(id int64) (*models.Recommendation, error)
	ListRecommendations(userID *int64, limit int) ([]*models.Recommendation, error)
	DeleteRecommendation(id int64) error

	// Reports
	AverageForMetric(metricName string) (*MetricAverage, error)
	UserTimeline(userID int64, limit int) ([]*TimelineEntry, error)
	ActivityByUser() ([]*UserActivity, error)
	UsageByDevice() ([]*DeviceUsage, error)

	// Seeding
	Seeded() (bool, error)
	Seed() (*SeedSummary, error)

	// Export/Import
	GetAllData() (*Snapshot, error)
	ImportData(s *Snapshot) error

	// Migrations
	Migrate() error
	MigrateDown() error
	SchemaVersion() (int64, error)

	// Lifecycle
	Close() error
}
