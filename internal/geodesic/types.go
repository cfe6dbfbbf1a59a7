package geodesic

import "math"

// State component order. Equatorial plane is assumed (θ fixed at π/2), so
// six components fully describe a particle: coordinate time, radius,
// azimuth, and the corresponding rates with respect to the affine
// parameter.
const (
	IdxT = iota
	IdxR
	IdxPhi
	IdxUT
	IdxUR
	IdxUPhi
	StateDim
)

type State []float64

func NewState(t, r, phi, ut, ur, uphi float64) State {
	return State{t, r, phi, ut, ur, uphi}
}

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Field is a derivative field over six-component states: the right-hand
// side of the geodesic ODE system dX/dλ = f(X).
type Field interface {
	Derive(x State, lambda float64) State
	Dim() int
}

// Integrator advances a state by one fixed step of size h.
type Integrator interface {
	Step(f Field, x State, lambda, h float64) State
}

// Observer is notified of every state appended to a trajectory,
// including the initial condition at λ = 0.
type Observer interface {
	OnStep(x State, lambda float64)
}

// Outcome is the terminal disposition of a trajectory.
type Outcome int

const (
	// BudgetExhausted means the step budget ran out with the particle
	// still orbiting.
	BudgetExhausted Outcome = iota
	// Captured means the radius fell to the near-horizon threshold.
	Captured
	// Escaped means the radius exceeded the escape threshold.
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Captured:
		return "captured"
	case Escaped:
		return "escaped"
	default:
		return "budget_exhausted"
	}
}

// Trajectory is the ordered sequence of states produced by one
// integration run for one particle. The first state is always the
// constructed initial condition; the last state is the terminal one,
// inclusive of the state that triggered capture or escape.
type Trajectory struct {
	States  []State
	Outcome Outcome
}

func (t *Trajectory) Len() int { return len(t.States) }

func (t *Trajectory) Final() State {
	return t.States[len(t.States)-1]
}

// RadiusSeries extracts the radial coordinate of every state, in order.
func (t *Trajectory) RadiusSeries() []float64 {
	rs := make([]float64, len(t.States))
	for i, s := range t.States {
		rs[i] = s[IdxR]
	}
	return rs
}
