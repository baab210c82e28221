package domain

import "errors"

var (
	// ErrInvalidInput marks a rejected computation: too few waypoints or a
	// coordinate outside the valid range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfBounds marks a waypoint outside the configured operating region.
	ErrOutOfBounds = errors.New("waypoint outside operating region")
)
