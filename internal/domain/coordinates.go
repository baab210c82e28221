package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Immutable geographic coordinates (longitude, latitude) in WGS84 degrees.
// On the wire a coordinate is the pair [lon, lat].
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Validate reports whether the coordinate lies inside the valid lon/lat range.
// NaN and infinite values are rejected.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lon) || math.IsNaN(c.Lat) || math.IsInf(c.Lon, 0) || math.IsInf(c.Lat, 0) {
		return fmt.Errorf("%w: coordinate [%v, %v] is not finite", ErrInvalidInput, c.Lon, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidInput, c.Lon)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidInput, c.Lat)
	}
	return nil
}

// Key returns the congestion-map key for the coordinate: "lon,lat" with four decimals.
func (c Coordinates) Key() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lon, c.Lat)
}

// Midpoint returns the arithmetic midpoint of c and o in degree space.
func (c Coordinates) Midpoint(o Coordinates) Coordinates {
	return Coordinates{Lon: (c.Lon + o.Lon) / 2, Lat: (c.Lat + o.Lat) / 2}
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lon, c.Lat})
}

func (c *Coordinates) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("coordinates: expected [lon, lat]: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinates: expected 2 values, got %d", len(pair))
	}
	c.Lon, c.Lat = pair[0], pair[1]
	return nil
}

// ValidateWaypoints checks that a waypoint sequence has at least two valid points.
func ValidateWaypoints(waypoints []Coordinates) error {
	if len(waypoints) < 2 {
		return fmt.Errorf("%w: at least 2 waypoints required, got %d", ErrInvalidInput, len(waypoints))
	}
	for i, w := range waypoints {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("waypoint %d: %w", i, err)
		}
	}
	return nil
}
