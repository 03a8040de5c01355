package location

import (
	"context"
	"errors"
	"fmt"

	"nearby/internal/model"
)

// ErrPermissionDenied is returned when the user has not allowed location access.
var ErrPermissionDenied = errors.New("permission to access location was denied")

// Provider supplies the device position after a one-time permission grant.
type Provider interface {
	// RequestPermission reports whether location access is granted.
	RequestPermission(ctx context.Context) (bool, error)
	// CurrentPosition reads the current coordinates.
	CurrentPosition(ctx context.Context) (model.Coordinates, error)
}

// Locate performs the one-shot permission request followed by a single read.
func Locate(ctx context.Context, p Provider) (model.Coordinates, error) {
	granted, err := p.RequestPermission(ctx)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("permission request failed: %w", err)
	}
	if !granted {
		return model.Coordinates{}, ErrPermissionDenied
	}

	coords, err := p.CurrentPosition(ctx)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("failed to read position: %w", err)
	}
	return coords, nil
}

// Static returns fixed coordinates, e.g. from -lat/-lng flags.
type Static struct {
	Coordinates model.Coordinates
	Granted     bool
}

// NewStatic creates a provider that always reports coords.
func NewStatic(coords model.Coordinates, granted bool) *Static {
	return &Static{Coordinates: coords, Granted: granted}
}

func (s *Static) RequestPermission(ctx context.Context) (bool, error) {
	return s.Granted, nil
}

func (s *Static) CurrentPosition(ctx context.Context) (model.Coordinates, error) {
	return s.Coordinates, nil
}
