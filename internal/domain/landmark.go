package domain

// LandmarkKind classifies reference points used by road-type inference.
type LandmarkKind string

const LandmarkHospital LandmarkKind = "hospital"

// Landmark is a named reference coordinate, e.g. a hospital.
type Landmark struct {
	ID       int
	Name     string
	Kind     LandmarkKind
	Location Coordinates
}
