// ABOUTME: Recommendation model for personalized advice tied to a user.
// ABOUTME: Description is free text and optional.
package models

import "fmt"

// Recommendation is a piece of personalized textual advice for one user.
type Recommendation struct {
	ID          int64   `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	UserID      int64   `json:"user_id" yaml:"user_id"`
}

// NewRecommendation creates a recommendation for a user.
func NewRecommendation(userID int64, title string) *Recommendation {
	return &Recommendation{
		Title:  title,
		UserID: userID,
	}
}

// WithDescription sets the free-text body.
func (r *Recommendation) WithDescription(desc string) *Recommendation {
	r.Description = &desc
	return r
}

// Validate checks the required columns before hitting the database.
func (r *Recommendation) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("recommendation missing required field: title")
	}
	if r.UserID == 0 {
		return fmt.Errorf("recommendation missing required field: user id")
	}
	return nil
}
