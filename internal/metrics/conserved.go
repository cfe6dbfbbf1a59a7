// Package metrics provides observers tracking conserved quantities along
// a trajectory. Both integrals are exact constants of the continuous
// geodesic flow, so their drift measures the fixed-step integrator's
// error directly.
package metrics

import (
	"math"

	"github.com/san-kum/geodesim/internal/geodesic"
	"github.com/san-kum/geodesim/internal/schwarzschild"
)

// EnergyDrift tracks the relative drift of E = (1 − rs/r)·u_t from its
// value at the first observed state.
type EnergyDrift struct {
	metric   *schwarzschild.Metric
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(m *schwarzschild.Metric) *EnergyDrift {
	return &EnergyDrift{metric: m}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) OnStep(x geodesic.State, lambda float64) {
	energy := e.metric.SpecificEnergy(x[geodesic.IdxR], x[geodesic.IdxUT])
	if e.samples == 0 {
		e.initial = energy
	} else if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		if drift > e.maxDrift {
			e.maxDrift = drift
		}
	}
	e.samples++
}

// Value returns the maximum relative drift seen so far.
func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// AngularMomentumDrift tracks the relative drift of L = r²·u_φ from its
// value at the first observed state. Zero-L trajectories report zero
// drift.
type AngularMomentumDrift struct {
	metric   *schwarzschild.Metric
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift(m *schwarzschild.Metric) *AngularMomentumDrift {
	return &AngularMomentumDrift{metric: m}
}

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) OnStep(x geodesic.State, lambda float64) {
	l := a.metric.SpecificAngularMomentum(x[geodesic.IdxR], x[geodesic.IdxUPhi])
	if a.samples == 0 {
		a.initial = l
	} else if a.initial != 0 {
		drift := math.Abs(l-a.initial) / math.Abs(a.initial)
		if drift > a.maxDrift {
			a.maxDrift = drift
		}
	}
	a.samples++
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}
