package models

import "time"

// UserVehicle represents a vehicle owned by a customer
type UserVehicle struct {
	ID          int       `json:"id" db:"id"`
	CustomerID  int       `json:"customer_id" db:"customer_id"`
	Plate       string    `json:"plate" db:"plate"`
	Brand       string    `json:"brand" db:"brand"`
	Model       string    `json:"model" db:"model"`
	VehicleType string    `json:"vehicle_type" db:"vehicle_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Version     int64     `json:"-" db:"version"`
}
