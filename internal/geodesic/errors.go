package geodesic

import "errors"

// Configuration errors, rejected before any integration step runs.
// Capture and escape are normal terminations, never errors.
var (
	// ErrInsideHorizon indicates an initial radius at or below the
	// Schwarzschild radius.
	ErrInsideHorizon = errors.New("geodesic: initial radius must exceed the Schwarzschild radius")

	// ErrBadStepSize indicates a zero or negative affine-parameter step.
	ErrBadStepSize = errors.New("geodesic: step size must be positive")

	// ErrNegativeBudget indicates a negative step budget.
	ErrNegativeBudget = errors.New("geodesic: step budget must be non-negative")
)
