package integrators

import "github.com/san-kum/geodesim/internal/geodesic"

// Euler is a single-stage explicit step, kept as a baseline for the
// compare command. Trajectory generation uses RK4.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f geodesic.Field, x geodesic.State, lambda, h float64) geodesic.State {
	dx := f.Derive(x, lambda)
	result := make(geodesic.State, len(x))
	for i := range x {
		result[i] = x[i] + h*dx[i]
	}
	return result
}
