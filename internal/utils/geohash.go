package utils

import (
	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeCell converts a coordinate pair to a geohash cell at the given
// precision. Density aggregation groups pedestrian samples by this key.
func EncodeCell(lat, lon float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lon, precision)
}

// CellCenter returns the center coordinate of a geohash cell
func CellCenter(cell string) GeoPoint {
	box := geohash.BoundingBox(cell)
	lat, lon := box.Center()
	return GeoPoint{Latitude: lat, Longitude: lon}
}
