package constants

// Redis keys
const (
	// KeyShopGeo is the geospatial index of shop locations
	KeyShopGeo = "shops:geo"
)
