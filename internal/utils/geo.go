package utils

import (
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"

	"github.com/tyrehub/tyrehub/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Candidate is one entry of a proximity search. A nil Location marks an
// unknown position; such candidates are skipped, never an error.
type Candidate struct {
	ID       int
	Location *GeoPoint
}

// ProximityMatch is a candidate that fell inside the search radius
type ProximityMatch struct {
	ID         int
	DistanceKm float64
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadius * c

	return distance
}

// WithinRadius returns the candidates whose great-circle distance from the
// origin is at most radiusKm (boundary inclusive), sorted by ascending
// distance. Candidates without a location are excluded.
func WithinRadius(origin GeoPoint, radiusKm float64, candidates []Candidate) []ProximityMatch {
	matches := make([]ProximityMatch, 0, len(candidates))
	for _, c := range candidates {
		if c.Location == nil {
			continue
		}
		distance := CalculateDistance(origin, *c.Location)
		if distance <= radiusKm {
			matches = append(matches, ProximityMatch{ID: c.ID, DistanceKm: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return matches
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
