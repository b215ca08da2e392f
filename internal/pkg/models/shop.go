package models

import "time"

// TireShop represents a tire-service shop account.
// Latitude/Longitude are pointers: a shop without a stored coordinate is
// treated as "unknown location" and excluded from proximity search.
type TireShop struct {
	ID          int       `json:"id" db:"id"`
	ShopName    string    `json:"shop_name" db:"shop_name"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	Phone       string    `json:"phone" db:"phone"`
	Address     string    `json:"address" db:"address"`
	Latitude    *float64  `json:"latitude" db:"latitude"`
	Longitude   *float64  `json:"longitude" db:"longitude"`
	OpeningHour string    `json:"opening_hour" db:"opening_hour"`
	ClosingHour string    `json:"closing_hour" db:"closing_hour"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Version     int64     `json:"-" db:"version"`
}

// Coordinate returns the shop location, or ok=false when either component
// is missing.
func (s *TireShop) Coordinate() (Location, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return Location{}, false
	}
	return Location{Latitude: *s.Latitude, Longitude: *s.Longitude}, true
}

// ShopServiceItem is one entry of a shop's offered service catalog
type ShopServiceItem struct {
	ID          int     `json:"id" db:"id"`
	ShopID      int     `json:"shop_id" db:"shop_id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Version     int64   `json:"-" db:"version"`
}

// Favorite links a customer to a bookmarked shop
type Favorite struct {
	ID         int       `json:"id" db:"id"`
	CustomerID int       `json:"customer_id" db:"customer_id"`
	ShopID     int       `json:"shop_id" db:"shop_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
