package geodesic

import "github.com/san-kum/geodesim/internal/schwarzschild"

// CaptureGuardFactor widens the singular boundary to 1.001·rs. The extra
// 0.1% band absorbs the one integration step that may land past the true
// horizon before the generator's capture check runs; inside the band the
// field is identically zero so the particle is frozen rather than fed
// divergent coefficients. Empirical guard, kept from the reference model.
const CaptureGuardFactor = 1.001

// EquatorialField is the geodesic derivative field in the Schwarzschild
// equatorial plane. It is stateless apart from the shared read-only
// metric and safe for concurrent use.
type EquatorialField struct {
	metric        *schwarzschild.Metric
	captureRadius float64
}

func NewEquatorialField(m *schwarzschild.Metric) *EquatorialField {
	return &EquatorialField{
		metric:        m,
		captureRadius: CaptureGuardFactor * m.Rs(),
	}
}

// CaptureRadius returns the near-horizon threshold 1.001·rs.
func (f *EquatorialField) CaptureRadius() float64 { return f.captureRadius }

func (f *EquatorialField) Dim() int { return StateDim }

// Derive evaluates the geodesic equation at x. Inside the near-horizon
// band it returns the zero vector: the particle is considered captured
// and must not be accelerated further.
func (f *EquatorialField) Derive(x State, lambda float64) State {
	r := x[IdxR]
	if r <= f.captureRadius {
		return make(State, StateDim)
	}

	ut, ur, uphi := x[IdxUT], x[IdxUR], x[IdxUPhi]
	m := f.metric

	dx := make(State, StateDim)
	dx[IdxT] = ut
	dx[IdxR] = ur
	dx[IdxPhi] = uphi
	dx[IdxUT] = -2.0 * m.ChristoffelTTR(r) * ut * ur
	dx[IdxUR] = -m.ChristoffelRTT(r)*ut*ut -
		m.ChristoffelRRR(r)*ur*ur -
		m.ChristoffelRPhiPhi(r)*uphi*uphi
	dx[IdxUPhi] = -2.0 * m.ChristoffelPhiRPhi(r) * ur * uphi

	return dx
}
