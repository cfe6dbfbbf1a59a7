package geodesic

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/geodesim/internal/schwarzschild"
)

// rk4 mirrors the production integrator so the generator tests exercise
// the same stepping scheme without importing the integrators package
// (which would create an import cycle with these packages' tests).
type rk4 struct{}

func (rk4) Step(f Field, x State, lambda, h float64) State {
	n := len(x)
	k1 := f.Derive(x, lambda)
	y := make(State, n)
	for i := 0; i < n; i++ {
		y[i] = x[i] + 0.5*h*k1[i]
	}
	k2 := f.Derive(y, lambda+0.5*h)
	for i := 0; i < n; i++ {
		y[i] = x[i] + 0.5*h*k2[i]
	}
	k3 := f.Derive(y, lambda+0.5*h)
	for i := 0; i < n; i++ {
		y[i] = x[i] + h*k3[i]
	}
	k4 := f.Derive(y, lambda+h)
	out := make(State, n)
	for i := 0; i < n; i++ {
		out[i] = x[i] + h/6.0*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}

func newTestGenerator(t testing.TB) (*Generator, *schwarzschild.Metric) {
	t.Helper()
	m := newTestMetric(t)
	return NewGenerator(m, rk4{}), m
}

func TestInitialConditionExact(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	p := Params{
		R0:       5 * rs,
		Phi0:     0.3,
		VR0:      -0.1,
		L:        math.Sqrt(rs * 5 * rs),
		MaxSteps: 10,
		StepSize: 1,
	}

	traj, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	first := traj.States[0]
	if first[IdxT] != 0 {
		t.Errorf("t(0) should be 0, got %g", first[IdxT])
	}
	if first[IdxR] != p.R0 {
		t.Errorf("r(0) should be %g, got %g", p.R0, first[IdxR])
	}
	if first[IdxPhi] != p.Phi0 {
		t.Errorf("phi(0) should be %g, got %g", p.Phi0, first[IdxPhi])
	}
	if first[IdxUR] != p.VR0 {
		t.Errorf("u_r(0) should be %g, got %g", p.VR0, first[IdxUR])
	}
	if first[IdxUPhi] != p.L/(p.R0*p.R0) {
		t.Errorf("u_phi(0) should be L/r0², got %g", first[IdxUPhi])
	}

	wantUT := 1.0 / (1.0 - rs/p.R0)
	if math.Abs(first[IdxUT]-wantUT) > 1e-12*wantUT {
		t.Errorf("u_t(0) should be 1/f, got %g want %g", first[IdxUT], wantUT)
	}
}

func TestRejectsInvalidConfiguration(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"r0 at horizon", Params{R0: rs, MaxSteps: 10, StepSize: 1}, ErrInsideHorizon},
		{"r0 inside horizon", Params{R0: 0.5 * rs, MaxSteps: 10, StepSize: 1}, ErrInsideHorizon},
		{"zero step size", Params{R0: 5 * rs, MaxSteps: 10, StepSize: 0}, ErrBadStepSize},
		{"negative step size", Params{R0: 5 * rs, MaxSteps: 10, StepSize: -1}, ErrBadStepSize},
		{"negative budget", Params{R0: 5 * rs, MaxSteps: -1, StepSize: 1}, ErrNegativeBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traj, err := gen.Integrate(context.Background(), tt.p)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if traj != nil {
				t.Error("expected nil trajectory on configuration error")
			}
		})
	}
}

func TestZeroBudgetReturnsInitialStateOnly(t *testing.T) {
	gen, m := newTestGenerator(t)

	p := Params{R0: 5 * m.Rs(), VR0: -0.1, MaxSteps: 0, StepSize: 1}
	traj, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	if traj.Len() != 1 {
		t.Fatalf("expected exactly the initial state, got %d states", traj.Len())
	}
	if traj.Outcome != BudgetExhausted {
		t.Errorf("expected budget_exhausted, got %v", traj.Outcome)
	}
}

func TestPureRadialInfallCaptures(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	// L = 0 removes the centrifugal barrier, so an inward launch falls
	// monotonically. The step size is scaled to the SI length scale of
	// the geometry (rs ≈ 3e4 m).
	p := Params{
		R0:       5 * rs,
		VR0:      -0.1,
		L:        0,
		MaxSteps: 3000,
		StepSize: 200,
	}

	traj, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	if traj.Outcome != Captured {
		t.Fatalf("expected capture, got %v after %d steps (final r=%g, rs=%g)",
			traj.Outcome, traj.Len()-1, traj.Final()[IdxR], rs)
	}
	if traj.Len()-1 >= p.MaxSteps {
		t.Errorf("capture should fire before the step budget, took %d steps", traj.Len()-1)
	}

	captureRadius := CaptureGuardFactor * rs
	if traj.Final()[IdxR] > captureRadius {
		t.Errorf("terminal radius %g should be at or below %g", traj.Final()[IdxR], captureRadius)
	}

	for i := 1; i < traj.Len(); i++ {
		if traj.States[i][IdxR] >= traj.States[i-1][IdxR] {
			t.Fatalf("radius must decrease strictly at every step: step %d went %g -> %g",
				i, traj.States[i-1][IdxR], traj.States[i][IdxR])
		}
	}
}

func TestOutwardLaunchEscapes(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	r0 := 20 * rs
	p := Params{
		R0:       r0,
		VR0:      1.0,
		L:        math.Sqrt(rs * r0),
		MaxSteps: 4000,
		StepSize: 4000,
	}

	traj, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	if traj.Outcome != Escaped {
		t.Fatalf("expected escape, got %v (final r=%g)", traj.Outcome, traj.Final()[IdxR])
	}
	if traj.Len()-1 >= p.MaxSteps {
		t.Errorf("escape should fire before the step budget, took %d steps", traj.Len()-1)
	}
	if traj.Final()[IdxR] <= EscapeRadiusFactor*r0 {
		t.Errorf("final radius %g should exceed %g", traj.Final()[IdxR], EscapeRadiusFactor*r0)
	}
}

func TestConservedQuantitiesDrift(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	// Bound orbit: with L = √(rs·r0) the effective potential turns the
	// particle around before the horizon, so it oscillates without
	// terminating and the conserved integrals can be tracked throughout.
	r0 := 5 * rs
	l := math.Sqrt(rs * r0)
	p := Params{R0: r0, VR0: -0.1, L: l, MaxSteps: 3000, StepSize: 200}

	traj, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if traj.Outcome != BudgetExhausted {
		t.Fatalf("expected a non-terminating bound orbit, got %v", traj.Outcome)
	}

	first := traj.States[0]
	e0 := m.SpecificEnergy(first[IdxR], first[IdxUT])
	l0 := m.SpecificAngularMomentum(first[IdxR], first[IdxUPhi])

	for i, s := range traj.States {
		e := m.SpecificEnergy(s[IdxR], s[IdxUT])
		lm := m.SpecificAngularMomentum(s[IdxR], s[IdxUPhi])

		if math.Abs(e-e0) > 1e-6*math.Abs(e0) {
			t.Fatalf("energy drift at step %d: %g vs initial %g", i, e, e0)
		}
		if math.Abs(lm-l0) > 1e-6*math.Abs(l0) {
			t.Fatalf("angular momentum drift at step %d: %g vs initial %g", i, lm, l0)
		}
	}
}

// TestReferenceStepSizeExhaustsBudget pins down the behavior of the
// reference scenario (10 solar masses, r0 = 5·rs, v_r0 = −0.1,
// L = √(rs·r0), h = 0.001, 3000 steps). With SI radii near 1.5e5 m and
// rates of order 0.1 m per unit affine parameter, 3000 steps of h=0.001
// move the particle a fraction of a meter: the run exhausts its budget
// with the radius essentially unchanged.
func TestReferenceStepSizeExhaustsBudget(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	r0 := 5 * rs
	p := Params{R0: r0, VR0: -0.1, L: math.Sqrt(rs * r0), MaxSteps: 3000, StepSize: 0.001}

	traj, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	if traj.Outcome != BudgetExhausted {
		t.Fatalf("expected budget exhaustion, got %v", traj.Outcome)
	}
	if traj.Len() != p.MaxSteps+1 {
		t.Errorf("expected %d states, got %d", p.MaxSteps+1, traj.Len())
	}
	if math.Abs(traj.Final()[IdxR]-r0) > 1.0 {
		t.Errorf("radius should move less than a meter, moved %g", math.Abs(traj.Final()[IdxR]-r0))
	}
}

func TestIntegrateDeterministic(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	p := Params{R0: 5 * rs, VR0: -0.07, L: math.Sqrt(rs * 5 * rs) * 0.9, MaxSteps: 500, StepSize: 150}

	a, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.Integrate(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	if a.Len() != b.Len() || a.Outcome != b.Outcome {
		t.Fatalf("runs disagree: %d/%v vs %d/%v", a.Len(), a.Outcome, b.Len(), b.Outcome)
	}
	for i := range a.States {
		for j := range a.States[i] {
			if a.States[i][j] != b.States[i][j] {
				t.Fatalf("state %d component %d differs bit-for-bit", i, j)
			}
		}
	}
}

func TestIntegrateHonorsContext(t *testing.T) {
	gen, m := newTestGenerator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Params{R0: 5 * m.Rs(), VR0: -0.1, MaxSteps: 100, StepSize: 1}
	traj, err := gen.Integrate(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if traj == nil || traj.Len() != 1 {
		t.Error("expected the partial trajectory with the initial state")
	}
}

// TestInitialNormalizationConvention records a known inconsistency in
// the reference model: u_t(0) = 1/f fixes the conserved energy to 1 but
// the resulting four-velocity does not satisfy the timelike constraint
// g_μν u^μ u^ν = −1 once u_r or u_φ is nonzero. The behavior is
// reproduced as documented rather than corrected.
func TestInitialNormalizationConvention(t *testing.T) {
	gen, m := newTestGenerator(t)
	rs := m.Rs()

	r0 := 5 * rs
	p := Params{R0: r0, VR0: -0.1, L: math.Sqrt(rs * r0)}
	x := gen.InitialState(p)

	e := m.SpecificEnergy(x[IdxR], x[IdxUT])
	if math.Abs(e-1.0) > 1e-12 {
		t.Errorf("convention should fix specific energy to 1, got %g", e)
	}

	norm := m.GTT(r0)*x[IdxUT]*x[IdxUT] +
		m.GRR(r0)*x[IdxUR]*x[IdxUR] +
		m.GPhiPhi(r0)*x[IdxUPhi]*x[IdxUPhi]
	if math.Abs(norm+1.0) < 0.01 {
		t.Errorf("documented convention is not unit-normalized; norm came out %g", norm)
	}
}
