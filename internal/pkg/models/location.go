package models

// Location represents a geographical point in WGS84 degrees
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// ShopMarker is a map marker for shop browsing
type ShopMarker struct {
	ShopID   int      `json:"shop_id"`
	ShopName string   `json:"shop_name"`
	Location Location `json:"location"`
	Geohash  string   `json:"geohash"`
}

// NearbyShop is a shop matched by proximity search, with its distance
// from the search origin.
type NearbyShop struct {
	Shop       TireShop `json:"shop"`
	DistanceKm float64  `json:"distance_km"`
}
