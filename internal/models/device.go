// ABOUTME: Device model for wearable hardware units.
// ABOUTME: Ownership is a nullable link to a User.
package models

import (
	"fmt"
	"strings"
)

// Device is a wearable hardware unit. OwnerID is nil for unassigned devices.
type Device struct {
	ID      int64  `json:"id" yaml:"id"`
	Model   string `json:"model" yaml:"model"`
	Name    string `json:"name" yaml:"name"`
	OwnerID *int64 `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
}

// NewDevice creates an unassigned device.
func NewDevice(model, name string) *Device {
	return &Device{
		Model: model,
		Name:  name,
	}
}

// WithOwner assigns the device to a user.
func (d *Device) WithOwner(userID int64) *Device {
	d.OwnerID = &userID
	return d
}

// Validate checks the required columns before hitting the database.
func (d *Device) Validate() error {
	var missing []string
	if d.Model == "" {
		missing = append(missing, "model")
	}
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("device missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
