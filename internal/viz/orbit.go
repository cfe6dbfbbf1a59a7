package viz

import (
	"math"

	"github.com/san-kum/geodesim/internal/geodesic"
	"github.com/san-kum/geodesim/internal/schwarzschild"
)

// OrbitPlot projects trajectories from (r, φ) onto a Cartesian braille
// canvas centered on the body, with the horizon, photon sphere and ISCO
// drawn as reference circles. The view window is square and sized to
// the outermost trajectory point, clamped to at least 5·rs so a tight
// capture still shows the reference circles.
func OrbitPlot(m *schwarzschild.Metric, trajs []*geodesic.Trajectory, width, height int) *Canvas {
	c := NewCanvas(width, height)

	halfSpan := 5 * m.Rs()
	for _, traj := range trajs {
		for _, s := range traj.States {
			if r := math.Abs(s[geodesic.IdxR]); r > halfSpan {
				halfSpan = r
			}
		}
	}

	// Sub-pixel resolution.
	pw := width * 2
	ph := height * 4
	cx := pw / 2
	cy := ph / 2
	// Scale to the smaller dimension so circles stay circles on a
	// square sub-pixel grid.
	span := minInt(pw, ph)
	scale := float64(span/2-1) / halfSpan

	for _, radius := range []float64{m.Rs(), m.PhotonSphereRadius(), m.ISCORadius()} {
		c.DrawCircle(cx, cy, int(math.Round(radius*scale)))
	}

	for _, traj := range trajs {
		prevX, prevY := 0, 0
		for i, s := range traj.States {
			r, phi := s[geodesic.IdxR], s[geodesic.IdxPhi]
			x := cx + int(math.Round(r*math.Cos(phi)*scale))
			y := cy - int(math.Round(r*math.Sin(phi)*scale))
			if i > 0 {
				c.DrawLine(prevX, prevY, x, y)
			} else {
				c.Set(x, y)
			}
			prevX, prevY = x, y
		}
	}

	return c
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
