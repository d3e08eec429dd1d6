package listing

import (
	"github.com/umahmood/haversine"

	"github.com/pauljones0/daftlistings/internal/models"
)

// Locator is anything with an optional geographic position. *Listing and
// models.Coordinates both satisfy it.
type Locator interface {
	Location() (models.Coordinates, bool)
}

// CoordinatesFromPair turns a [latitude, longitude] slice into a distance
// target.
func CoordinatesFromPair(pair []float64) (models.Coordinates, error) {
	if len(pair) != 2 {
		return models.Coordinates{}, ErrUnsupportedLocation
	}
	return models.Coordinates{Latitude: pair[0], Longitude: pair[1]}, nil
}

// DistanceTo returns the great-circle distance in kilometres between the
// listing and target, as the crow flies.
func (l *Listing) DistanceTo(target Locator) (float64, error) {
	from, ok := l.Location()
	if !ok {
		return 0, &InvalidLocationError{Operand: "self"}
	}
	if target == nil {
		return 0, ErrUnsupportedLocation
	}
	to, ok := target.Location()
	if !ok {
		return 0, &InvalidLocationError{Operand: "argument"}
	}
	return Haversine(from, to), nil
}

// Haversine computes the distance in kilometres between a and b on a sphere
// of radius 6371 km.
func Haversine(a, b models.Coordinates) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Latitude, Lon: a.Longitude},
		haversine.Coord{Lat: b.Latitude, Lon: b.Longitude},
	)
	return km
}
