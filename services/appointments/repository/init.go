package repository

import (
	"github.com/jmoiron/sqlx"
)

// AppointmentRepo is the postgres-backed appointment store
type AppointmentRepo struct {
	db *sqlx.DB
}

// NewAppointmentRepo creates a new appointment repository instance
func NewAppointmentRepo(db *sqlx.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}
