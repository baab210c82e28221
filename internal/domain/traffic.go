package domain

import "math"

// TrafficContext is caller-supplied traffic state for a single computation.
// A nil *TrafficContext is treated as "no traffic information".
type TrafficContext struct {
	// Keyed by Coordinates.Key(); values in [0,1].
	CongestionLevels  map[string]float64
	IncidentLocations []Coordinates
	RoadWorks         []Coordinates
}

// Congestion returns the congestion level recorded for c and whether one was present.
// Levels are clamped to [0,1]; NaN reads as 0.
func (t *TrafficContext) Congestion(c Coordinates) (float64, bool) {
	if t == nil || t.CongestionLevels == nil {
		return 0, false
	}
	v, ok := t.CongestionLevels[c.Key()]
	if !ok || math.IsNaN(v) {
		return 0, ok
	}
	return math.Min(1, math.Max(0, v)), true
}

func (t *TrafficContext) Incidents() []Coordinates {
	if t == nil {
		return nil
	}
	return t.IncidentLocations
}

func (t *TrafficContext) Works() []Coordinates {
	if t == nil {
		return nil
	}
	return t.RoadWorks
}
