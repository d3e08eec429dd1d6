package models

import "fmt"

// Coordinates is a WGS 84 point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Location returns the point itself; a bare coordinate pair always has a location.
func (c Coordinates) Location() (Coordinates, bool) {
	return c, true
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}
