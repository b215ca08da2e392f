package repository

import (
	"github.com/jmoiron/sqlx"
)

// RequestRepo is the postgres-backed help request store
type RequestRepo struct {
	db *sqlx.DB
}

// NewRequestRepo creates a new help request repository instance
func NewRequestRepo(db *sqlx.DB) *RequestRepo {
	return &RequestRepo{db: db}
}
