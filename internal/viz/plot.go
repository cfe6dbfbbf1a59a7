package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/geodesim/internal/geodesic"
	"github.com/san-kum/geodesim/internal/schwarzschild"
)

// RadiusProfile plots the radial coordinate of a trajectory against the
// step index, in units of the Schwarzschild radius.
func RadiusProfile(m *schwarzschild.Metric, traj *geodesic.Trajectory, width, height int) string {
	series := traj.RadiusSeries()
	for i := range series {
		series[i] /= m.Rs()
	}
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("r / rs over %d steps (%s)", traj.Len()-1, traj.Outcome)),
	)
}

// PotentialCurve plots V²_eff(r, L) for a massive particle between 1.1·rs
// and rMax.
func PotentialCurve(m *schwarzschild.Metric, l, rMax float64, width, height int) string {
	const samples = 400
	rMin := 1.1 * m.Rs()
	if rMax <= rMin {
		rMax = 30 * m.Rs()
	}

	series := make([]float64, samples)
	for i := range series {
		r := rMin + (rMax-rMin)*float64(i)/float64(samples-1)
		series[i] = m.EffectivePotential(r, l)
	}
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("V²eff(r), L = %.3g, r in [1.1rs, %.3g m]", l, rMax)),
	)
}
