package geodesic

import (
	"context"
	"sync"

	"github.com/san-kum/geodesim/internal/schwarzschild"
)

// Ensemble integrates many particles in parallel. Particles share only
// the read-only metric; each goroutine gets its own Generator and its
// own integrator instance (integrators keep scratch buffers and are not
// safe to share).
type Ensemble struct {
	metric        *schwarzschild.Metric
	newIntegrator func() Integrator
}

func NewEnsemble(m *schwarzschild.Metric, newIntegrator func() Integrator) *Ensemble {
	return &Ensemble{metric: m, newIntegrator: newIntegrator}
}

// Run integrates one trajectory per entry in params, concurrently.
// Results are positionally aligned with params. The first error wins;
// validation errors from any particle fail the whole run.
func (e *Ensemble) Run(ctx context.Context, params []Params) ([]*Trajectory, error) {
	trajs := make([]*Trajectory, len(params))
	errs := make([]error, len(params))

	var wg sync.WaitGroup
	for i := range params {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			gen := NewGenerator(e.metric, e.newIntegrator())
			trajs[idx], errs[idx] = gen.Integrate(ctx, params[idx])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return trajs, nil
}
