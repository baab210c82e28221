package repositories

import (
	"context"
	"route-metrics-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLandmarkSeeds(t *testing.T) {
	got, err := ParseLandmarkSeeds([]LandmarkSeed{
		{LandmarkID: 1, Name: " District Hospital ", Kind: "Hospital", Location: []float64{75.912, 10.989}},
		{LandmarkID: 2, Name: "Clinic", Location: []float64{75.925, 10.978}},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "District Hospital", got[0].Name)
	assert.Equal(t, domain.LandmarkHospital, got[0].Kind)
	assert.Equal(t, domain.LandmarkHospital, got[1].Kind)
	assert.Equal(t, domain.Coordinates{Lon: 75.925, Lat: 10.978}, got[1].Location)

	bad := []LandmarkSeed{
		{LandmarkID: 0, Name: "x", Location: []float64{0, 0}},
		{LandmarkID: 1, Name: "  ", Location: []float64{0, 0}},
		{LandmarkID: 1, Name: "x", Location: []float64{0}},
		{LandmarkID: 1, Name: "x", Location: []float64{0, 91}},
	}
	for _, s := range bad {
		_, err := ParseLandmarkSeeds([]LandmarkSeed{s})
		assert.Error(t, err, s)
	}
}

func TestStaticLandmarkRepository(t *testing.T) {
	repo := NewStaticLandmarkRepository([]domain.Landmark{
		{ID: 1, Name: "H", Kind: domain.LandmarkHospital},
		{ID: 2, Name: "Depot", Kind: domain.LandmarkKind("depot")},
	})

	got, err := repo.ListLandmarks(context.Background(), domain.LandmarkHospital)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	defaults, err := NewStaticLandmarkRepository(DefaultHospitals).ListLandmarks(context.Background(), domain.LandmarkHospital)
	require.NoError(t, err)
	assert.NotEmpty(t, defaults)
}

func TestSQLLandmarkRepositoryNilDB(t *testing.T) {
	_, err := NewSQLLandmarkRepository(nil).ListLandmarks(context.Background(), domain.LandmarkHospital)
	require.Error(t, err)
	require.Error(t, InitSchema(context.Background(), nil))
}
