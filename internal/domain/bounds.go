package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds is a lon/lat bounding box describing the operating region.
type Bounds struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

func (b Bounds) Contains(c Coordinates) bool {
	return c.Lon >= b.MinLon && c.Lon <= b.MaxLon && c.Lat >= b.MinLat && c.Lat <= b.MaxLat
}

// Check returns ErrOutOfBounds for the first waypoint outside the box.
func (b Bounds) Check(waypoints []Coordinates) error {
	for i, w := range waypoints {
		if !b.Contains(w) {
			return fmt.Errorf("%w: waypoint %d [%v, %v]", ErrOutOfBounds, i, w.Lon, w.Lat)
		}
	}
	return nil
}

// ParseBounds parses "minLon,minLat,maxLon,maxLat".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("parse bounds: expected 4 values, got %d", len(parts))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("parse bounds: value #%d: %w", i+1, err)
		}
		v[i] = f
	}

	b := Bounds{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return Bounds{}, fmt.Errorf("parse bounds: min exceeds max in %q", s)
	}
	return b, nil
}
