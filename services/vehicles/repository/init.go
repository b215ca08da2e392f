package repository

import (
	"github.com/jmoiron/sqlx"
)

// VehicleRepo is the postgres-backed vehicle store
type VehicleRepo struct {
	db *sqlx.DB
}

// NewVehicleRepo creates a new vehicle repository instance
func NewVehicleRepo(db *sqlx.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}
