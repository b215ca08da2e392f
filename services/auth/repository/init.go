package repository

import (
	"github.com/jmoiron/sqlx"
)

// AuthRepo is the postgres-backed identity store
type AuthRepo struct {
	db *sqlx.DB
}

// NewAuthRepo creates a new identity repository instance
func NewAuthRepo(db *sqlx.DB) *AuthRepo {
	return &AuthRepo{db: db}
}
