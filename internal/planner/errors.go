package planner

import (
	"errors"
	"strings"
)

var (
	ErrUnknownStation = errors.New("invalid station name")
	ErrMidwayOffRoute = errors.New("midway station is not on the path from start to destination")
)

// StationError lists the names that failed to resolve.
type StationError struct {
	Names []string
}

func (e *StationError) Error() string {
	return "invalid station name(s): " + strings.Join(e.Names, ", ")
}

func (e *StationError) Unwrap() error { return ErrUnknownStation }
