package geodesic

import (
	"context"
	"fmt"

	"github.com/san-kum/geodesim/internal/schwarzschild"
)

// EscapeRadiusFactor sets the escape threshold at 10·r0. A particle that
// climbs an order of magnitude above its starting radius is treated as
// unbound; empirical guard, kept from the reference model.
const EscapeRadiusFactor = 10.0

// Params are the per-particle inputs to one integration run. R0 and L
// come from whatever sampling policy the caller uses; the generator only
// requires R0 to exceed the Schwarzschild radius.
type Params struct {
	R0       float64 // initial radius, meters
	Phi0     float64 // initial azimuth, radians
	VR0      float64 // initial radial rate dr/dλ
	L        float64 // specific angular momentum
	MaxSteps int
	StepSize float64
}

// Generator constructs initial conditions, drives the fixed-step
// integrator for a bounded number of steps, and applies the termination
// policy. One Generator drives one particle at a time; for parallel
// particles use Ensemble, which builds a Generator per goroutine.
type Generator struct {
	metric    *schwarzschild.Metric
	field     *EquatorialField
	integ     Integrator
	observers []Observer
}

func NewGenerator(m *schwarzschild.Metric, integ Integrator) *Generator {
	return &Generator{
		metric: m,
		field:  NewEquatorialField(m),
		integ:  integ,
	}
}

func (g *Generator) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// InitialState builds the six-component initial condition for p.
//
// u_t(0) = 1/(1 − rs/r0) fixes the conserved energy per unit mass to 1.
// This is a normalization convention carried over from the reference
// model: it does not satisfy the timelike constraint g_μν u^μ u^ν = −1
// once VR0 or L is nonzero. Reproduced as documented, not corrected.
func (g *Generator) InitialState(p Params) State {
	f := 1.0 - g.metric.Rs()/p.R0
	return NewState(0, p.R0, p.Phi0, 1.0/f, p.VR0, p.L/(p.R0*p.R0))
}

func (g *Generator) validate(p Params) error {
	if p.R0 <= g.metric.Rs() {
		return fmt.Errorf("%w: r0=%g, rs=%g", ErrInsideHorizon, p.R0, g.metric.Rs())
	}
	if p.StepSize <= 0 {
		return fmt.Errorf("%w: got %g", ErrBadStepSize, p.StepSize)
	}
	if p.MaxSteps < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeBudget, p.MaxSteps)
	}
	return nil
}

// Integrate runs one particle to termination. Every state produced by the
// integrator is appended, terminal state included, so a capture or escape
// trajectory ends at the state that crossed the threshold. Termination
// checks run after each step in priority order: capture first, escape
// second. A cancelled context returns the partial trajectory along with
// ctx.Err().
func (g *Generator) Integrate(ctx context.Context, p Params) (*Trajectory, error) {
	if err := g.validate(p); err != nil {
		return nil, err
	}

	captureRadius := g.field.CaptureRadius()
	escapeRadius := EscapeRadiusFactor * p.R0

	x := g.InitialState(p)
	traj := &Trajectory{
		States:  make([]State, 0, p.MaxSteps+1),
		Outcome: BudgetExhausted,
	}
	traj.States = append(traj.States, x.Clone())

	lambda := 0.0
	g.observe(x, lambda)

	for i := 0; i < p.MaxSteps; i++ {
		select {
		case <-ctx.Done():
			return traj, ctx.Err()
		default:
		}

		x = g.integ.Step(g.field, x, lambda, p.StepSize)
		lambda += p.StepSize
		traj.States = append(traj.States, x)
		g.observe(x, lambda)

		if x[IdxR] <= captureRadius {
			traj.Outcome = Captured
			break
		}
		if x[IdxR] > escapeRadius {
			traj.Outcome = Escaped
			break
		}
	}

	return traj, nil
}

func (g *Generator) observe(x State, lambda float64) {
	for _, o := range g.observers {
		o.OnStep(x, lambda)
	}
}
