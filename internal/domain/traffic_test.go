package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrafficContextCongestion(t *testing.T) {
	at := Coordinates{Lon: 75.9064, Lat: 10.9847}

	tests := []struct {
		name   string
		levels map[string]float64
		want   float64
		found  bool
	}{
		{"missing", map[string]float64{}, 0, false},
		{"in range", map[string]float64{at.Key(): 0.6}, 0.6, true},
		{"negative", map[string]float64{at.Key(): -0.5}, 0, true},
		{"above one", map[string]float64{at.Key(): 3}, 1, true},
		{"nan", map[string]float64{at.Key(): math.NaN()}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := &TrafficContext{CongestionLevels: tt.levels}
			got, ok := tc.Congestion(at)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	var none *TrafficContext
	got, ok := none.Congestion(at)
	assert.False(t, ok)
	assert.Zero(t, got)
}
