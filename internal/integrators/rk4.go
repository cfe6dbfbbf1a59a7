package integrators

import "github.com/san-kum/geodesim/internal/geodesic"

// RK4 is the classical four-stage explicit Runge-Kutta step. Scratch
// buffers are reused across steps, so an RK4 instance must not be shared
// between goroutines.
type RK4 struct {
	k1, k2, k3, k4 geodesic.State
	scratch        geodesic.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(geodesic.State, n)
		r.k2 = make(geodesic.State, n)
		r.k3 = make(geodesic.State, n)
		r.k4 = make(geodesic.State, n)
		r.scratch = make(geodesic.State, n)
	}
}

func (r *RK4) Step(f geodesic.Field, x geodesic.State, lambda, h float64) geodesic.State {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, f.Derive(x, lambda))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k1[i]
	}
	copy(r.k2, f.Derive(r.scratch, lambda+h*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k2[i]
	}
	copy(r.k3, f.Derive(r.scratch, lambda+h*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*r.k3[i]
	}
	copy(r.k4, f.Derive(r.scratch, lambda+h))

	result := make(geodesic.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + h6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
