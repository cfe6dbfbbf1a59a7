package geodesic

import (
	"math"
	"math/rand"

	"github.com/san-kum/geodesim/internal/schwarzschild"
)

// Sampler produces per-particle initial conditions following the
// reference rule: particle i of n starts at r0 = rs·(5+2i) with azimuth
// spread evenly around the circle, a small random inward radial rate,
// and angular momentum near the quasi-circular value √(rs·r0).
//
// The source is explicitly seeded so ensembles are reproducible; sample
// before spawning parallel work.
type Sampler struct {
	rs  float64
	rng *rand.Rand
}

func NewSampler(m *schwarzschild.Metric, seed int64) *Sampler {
	return &Sampler{
		rs:  m.Rs(),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Sample draws initial conditions for particle i of n. MaxSteps and
// StepSize are left zero for the caller to fill in.
func (s *Sampler) Sample(i, n int) Params {
	r0 := s.rs * (5.0 + 2.0*float64(i))
	return Params{
		R0:   r0,
		Phi0: 2.0 * math.Pi * float64(i) / float64(n),
		VR0:  -0.1 * (0.5 + 0.5*s.rng.Float64()),
		L:    math.Sqrt(s.rs*r0) * (0.8 + 0.4*s.rng.Float64()),
	}
}

// SampleAll draws a full particle set with a shared step budget.
func (s *Sampler) SampleAll(n, maxSteps int, stepSize float64) []Params {
	params := make([]Params, n)
	for i := range params {
		params[i] = s.Sample(i, n)
		params[i].MaxSteps = maxSteps
		params[i].StepSize = stepSize
	}
	return params
}
