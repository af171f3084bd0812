// ABOUTME: User CRUD operations for SQLite storage.
// ABOUTME: DeleteUser is an explicit, auditable purge of everything the user owns.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"weartrack/internal/models"
)

// CreateUser stores a new user and fills in the assigned ID.
func (d *DB) CreateUser(u *models.User) error {
	query := `
		INSERT INTO Users (FirstName, LastName, Age, Email, Gender, RegistrationDate)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		u.FirstName,
		u.LastName,
		u.Age,
		u.Email,
		u.Gender,
		u.RegistrationDate.Format(time.RFC3339),
	)
	if err != nil {
		return mapConstraintError("create user", err)
	}

	u.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (d *DB) GetUser(id int64) (*models.User, error) {
	query := `
		SELECT UserID, FirstName, LastName, Age, Email, Gender, RegistrationDate
		FROM Users
		WHERE UserID = ?
	`
	return scanUser(d.db.QueryRow(query, id))
}

// GetUserByEmail retrieves a user by their unique email address.
func (d *DB) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT UserID, FirstName, LastName, Age, Email, Gender, RegistrationDate
		FROM Users
		WHERE Email = ?
	`
	return scanUser(d.db.QueryRow(query, email))
}

// ListUsers retrieves users ordered by registration date, newest first.
func (d *DB) ListUsers(limit int) ([]*models.User, error) {
	query := `
		SELECT UserID, FirstName, LastName, Age, Email, Gender, RegistrationDate
		FROM Users
		ORDER BY RegistrationDate DESC, UserID DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// PurgeSummary reports what an explicit user deletion removed.
type PurgeSummary struct {
	Observations    int64
	Recommendations int64
	Devices         int64
}

// DeleteUser removes a user and everything belonging to them in one
// transaction: observations (their own and those recorded by their devices),
// recommendations, and owned devices, dependents before parent. The
// schema-level ON DELETE CASCADE remains as a backstop, but the explicit
// routine keeps deletion auditable via the returned summary.
func (d *DB) DeleteUser(id int64) (*PurgeSummary, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	summary := &PurgeSummary{}

	res, err := tx.Exec(`
		DELETE FROM HealthData
		WHERE UserID = ?
		   OR DeviceID IN (SELECT DeviceID FROM Device WHERE UserID = ?)
	`, id, id)
	if err != nil {
		return nil, fmt.Errorf("delete user observations: %w", err)
	}
	summary.Observations, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM Recommendation WHERE UserID = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("delete user recommendations: %w", err)
	}
	summary.Recommendations, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM Device WHERE UserID = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("delete user devices: %w", err)
	}
	summary.Devices, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM Users WHERE UserID = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("delete user %d: %w", id, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return summary, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row *sql.Row) (*models.User, error) {
	u, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func scanUserRow(row rowScanner) (*models.User, error) {
	var u models.User
	var age sql.NullInt64
	var gender sql.NullString
	var registered string

	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &age, &u.Email, &gender, &registered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if age.Valid {
		a := int(age.Int64)
		u.Age = &a
	}
	if gender.Valid {
		u.Gender = &gender.String
	}
	u.RegistrationDate, _ = time.Parse(time.RFC3339, registered)

	return &u, nil
}
