package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/tyrehub/tyrehub/internal/pkg/database"
)

// ShopRepo is the postgres-backed shop store
type ShopRepo struct {
	db *sqlx.DB
}

// NewShopRepo creates a new shop repository instance
func NewShopRepo(db *sqlx.DB) *ShopRepo {
	return &ShopRepo{db: db}
}

// ShopCache is the redis geo index over shop locations
type ShopCache struct {
	redisClient *database.RedisClient
}

// NewShopCache creates a new shop geo cache instance
func NewShopCache(redisClient *database.RedisClient) *ShopCache {
	return &ShopCache{redisClient: redisClient}
}
