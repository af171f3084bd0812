// ABOUTME: Recommendation CRUD operations for SQLite storage.
// ABOUTME: Recommendations are cascade-deleted with their owning user.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"weartrack/internal/models"
)

// CreateRecommendation stores a new recommendation and fills in the assigned ID.
func (d *DB) CreateRecommendation(r *models.Recommendation) error {
	query := `
		INSERT INTO Recommendation (Title, Description, UserID)
		VALUES (?, ?, ?)
	`
	res, err := d.db.Exec(query, r.Title, r.Description, r.UserID)
	if err != nil {
		return mapConstraintError("create recommendation", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create recommendation: %w", err)
	}
	return nil
}

// GetRecommendation retrieves a recommendation by ID.
func (d *DB) GetRecommendation(id int64) (*models.Recommendation, error) {
	query := `
		SELECT RecommendationID, Title, Description, UserID
		FROM Recommendation
		WHERE RecommendationID = ?
	`
	r, err := scanRecommendation(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListRecommendations retrieves recommendations, optionally for one user.
func (d *DB) ListRecommendations(userID *int64, limit int) ([]*models.Recommendation, error) {
	query := `
		SELECT RecommendationID, Title, Description, UserID
		FROM Recommendation
	`
	var args []interface{}
	if userID != nil {
		query += " WHERE UserID = ?"
		args = append(args, *userID)
	}
	query += " ORDER BY RecommendationID DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*models.Recommendation
	for rows.Next() {
		r, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// DeleteRecommendation removes a single recommendation.
func (d *DB) DeleteRecommendation(id int64) error {
	res, err := d.db.Exec(`DELETE FROM Recommendation WHERE RecommendationID = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete recommendation %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanRecommendation(row rowScanner) (*models.Recommendation, error) {
	var r models.Recommendation
	var desc sql.NullString

	err := row.Scan(&r.ID, &r.Title, &desc, &r.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan recommendation: %w", err)
	}

	if desc.Valid {
		r.Description = &desc.String
	}
	return &r, nil
}
