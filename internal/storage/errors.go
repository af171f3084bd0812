// ABOUTME: Sentinel errors for the storage layer.
// ABOUTME: Maps SQLite constraint failures onto the error taxonomy callers test for.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a row lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned on unique-constraint violations
	// (Users.Email, HealthMetric.MetricName).
	ErrDuplicate = errors.New("already exists")

	// ErrForeignKey is returned when an insert references a missing
	// User, HealthMetric, or Device.
	ErrForeignKey = errors.New("referenced row does not exist")

	// ErrNotNull is returned when a required column is missing.
	ErrNotNull = errors.New("required column is null")
)

// mapConstraintError translates SQLite constraint failures into sentinel
// errors. Anything else is wrapped with the operation name as-is.
func mapConstraintError(op string, err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, ErrForeignKey, err)
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%s: %w: %v", op, ErrNotNull, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
