package geodesic

import (
	"math"
	"testing"
)

func TestSamplerReferenceRule(t *testing.T) {
	m := newTestMetric(t)
	rs := m.Rs()

	s := NewSampler(m, 42)
	n := 8
	for i := 0; i < n; i++ {
		p := s.Sample(i, n)

		wantR0 := rs * (5.0 + 2.0*float64(i))
		if p.R0 != wantR0 {
			t.Errorf("particle %d: r0 = %g, want %g", i, p.R0, wantR0)
		}
		wantPhi := 2.0 * math.Pi * float64(i) / float64(n)
		if p.Phi0 != wantPhi {
			t.Errorf("particle %d: phi0 = %g, want %g", i, p.Phi0, wantPhi)
		}
		if p.VR0 > -0.05 || p.VR0 < -0.1 {
			t.Errorf("particle %d: v_r0 = %g outside [-0.1, -0.05]", i, p.VR0)
		}
		base := math.Sqrt(rs * p.R0)
		if p.L < 0.8*base || p.L > 1.2*base {
			t.Errorf("particle %d: L = %g outside [0.8, 1.2]·√(rs·r0)", i, p.L)
		}
		if p.R0 <= rs {
			t.Errorf("particle %d: sampled r0 %g not above rs %g", i, p.R0, rs)
		}
	}
}

func TestSamplerSeededReproducibility(t *testing.T) {
	m := newTestMetric(t)

	a := NewSampler(m, 7).SampleAll(6, 3000, 0.001)
	b := NewSampler(m, 7).SampleAll(6, 3000, 0.001)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs across identically seeded samplers", i)
		}
	}

	c := NewSampler(m, 8).SampleAll(6, 3000, 0.001)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should draw different velocities")
	}
}

func TestSampleAllFillsBudget(t *testing.T) {
	m := newTestMetric(t)

	params := NewSampler(m, 1).SampleAll(4, 5000, 0.5)
	if len(params) != 4 {
		t.Fatalf("expected 4 particles, got %d", len(params))
	}
	for i, p := range params {
		if p.MaxSteps != 5000 || p.StepSize != 0.5 {
			t.Errorf("particle %d: budget not filled: %+v", i, p)
		}
	}
}
