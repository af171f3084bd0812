// ABOUTME: Device CRUD operations for SQLite storage.
// ABOUTME: Covers the explicit user-device ownership link.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"weartrack/internal/models"
)

// CreateDevice stores a new device and fills in the assigned ID.
func (d *DB) CreateDevice(dev *models.Device) error {
	query := `
		INSERT INTO Device (Model, DeviceName, UserID)
		VALUES (?, ?, ?)
	`
	res, err := d.db.Exec(query, dev.Model, dev.Name, dev.OwnerID)
	if err != nil {
		return mapConstraintError("create device", err)
	}

	dev.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	return nil
}

// GetDevice retrieves a device by ID.
func (d *DB) GetDevice(id int64) (*models.Device, error) {
	query := `
		SELECT DeviceID, Model, DeviceName, UserID
		FROM Device
		WHERE DeviceID = ?
	`
	dev, err := scanDevice(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dev, nil
}

// ListDevices retrieves devices, optionally filtered by owner.
func (d *DB) ListDevices(ownerID *int64, limit int) ([]*models.Device, error) {
	query := `
		SELECT DeviceID, Model, DeviceName, UserID
		FROM Device
	`
	var args []interface{}
	if ownerID != nil {
		query += " WHERE UserID = ?"
		args = append(args, *ownerID)
	}
	query += " ORDER BY DeviceID"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	var devices []*models.Device
	for rows.Next() {
		dev, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, dev)
	}
	return devices, rows.Err()
}

// AssignDevice sets the owning user of a device.
func (d *DB) AssignDevice(deviceID, userID int64) error {
	res, err := d.db.Exec(`UPDATE Device SET UserID = ? WHERE DeviceID = ?`, userID, deviceID)
	if err != nil {
		return mapConstraintError("assign device", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("assign device: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assign device %d: %w", deviceID, ErrNotFound)
	}
	return nil
}

// DeleteDevice removes a device. Observations recorded by it cascade away.
func (d *DB) DeleteDevice(id int64) error {
	res, err := d.db.Exec(`DELETE FROM Device WHERE DeviceID = ?`, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete device %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanDevice(row rowScanner) (*models.Device, error) {
	var dev models.Device
	var owner sql.NullInt64

	err := row.Scan(&dev.ID, &dev.Model, &dev.Name, &owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan device: %w", err)
	}

	if owner.Valid {
		dev.OwnerID = &owner.Int64
	}
	return &dev, nil
}
