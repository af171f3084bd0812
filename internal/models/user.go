// ABOUTME: User model for wearable device owners.
// ABOUTME: Required fields mirror the Users table NOT NULL columns.
package models

import (
	"fmt"
	"strings"
	"time"
)

// User is a person who owns wearable devices and produces observations.
type User struct {
	ID               int64     `json:"id" yaml:"id"`
	FirstName        string    `json:"first_name" yaml:"first_name"`
	LastName         string    `json:"last_name" yaml:"last_name"`
	Age              *int      `json:"age,omitempty" yaml:"age,omitempty"`
	Email            string    `json:"email" yaml:"email"`
	Gender           *string   `json:"gender,omitempty" yaml:"gender,omitempty"`
	RegistrationDate time.Time `json:"registration_date" yaml:"registration_date"`
}

// NewUser creates a User registered now.
func NewUser(firstName, lastName, email string) *User {
	return &User{
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		RegistrationDate: time.Now(),
	}
}

// WithAge sets the user's age.
func (u *User) WithAge(age int) *User {
	u.Age = &age
	return u
}

// WithGender sets the user's gender.
func (u *User) WithGender(gender string) *User {
	u.Gender = &gender
	return u
}

// WithRegistrationDate sets a custom registration date.
func (u *User) WithRegistrationDate(t time.Time) *User {
	u.RegistrationDate = t
	return u
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Validate checks the required columns before hitting the database.
func (u *User) Validate() error {
	var missing []string
	if u.FirstName == "" {
		missing = append(missing, "first name")
	}
	if u.LastName == "" {
		missing = append(missing, "last name")
	}
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if u.RegistrationDate.IsZero() {
		missing = append(missing, "registration date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("user missing required fields: %s", strings.Join(missing, ", "))
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("invalid email: %s", u.Email)
	}
	return nil
}
