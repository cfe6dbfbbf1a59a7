package schwarzschild

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveMass indicates a body configured with zero or negative mass.
var ErrNonPositiveMass = errors.New("schwarzschild: mass must be positive")

// Metric describes the spacetime geometry around a non-rotating body of a
// given mass. All fields are computed once at construction and immutable
// afterwards, so a single Metric can be shared across concurrently
// integrated particles.
type Metric struct {
	massSolar float64
	massKg    float64
	geoMass   float64 // GM/c², geometric units
	rs        float64
}

// New builds a Metric for a body mass given in solar units.
func New(massSolar float64) (*Metric, error) {
	if massSolar <= 0 {
		return nil, fmt.Errorf("%w: got %g solar masses", ErrNonPositiveMass, massSolar)
	}
	massKg := massSolar * SolarMass
	return &Metric{
		massSolar: massSolar,
		massKg:    massKg,
		geoMass:   GravitationalConstant * massKg / c2,
		rs:        Radius(massKg),
	}, nil
}

func (m *Metric) MassSolar() float64 { return m.massSolar }
func (m *Metric) MassKg() float64    { return m.massKg }

// Rs returns the Schwarzschild radius 2GM/c² in meters.
func (m *Metric) Rs() float64 { return m.rs }

// Metric components in the equatorial plane (θ = π/2).

func (m *Metric) GTT(r float64) float64 {
	if r <= m.rs {
		return 0
	}
	return -(1.0 - m.rs/r)
}

func (m *Metric) GRR(r float64) float64 {
	if r <= m.rs {
		return math.Inf(1)
	}
	return 1.0 / (1.0 - m.rs/r)
}

func (m *Metric) GPhiPhi(r float64) float64 { return r * r }

// Christoffel symbols needed by the equatorial geodesic equation.
//
// ChristoffelRTT and ChristoffelRRR return 0 for r ≤ rs. That is a
// numerical guard, not an error: it freezes curvature-driven acceleration
// once a particle reaches the horizon, and the derivative field relies on
// it to absorb a step that lands inside. The remaining two symbols are
// only ever evaluated at r > rs, which the caller enforces.

// ChristoffelRTT returns Γ^r_tt = rs(r−rs)/(2r³).
func (m *Metric) ChristoffelRTT(r float64) float64 {
	if r <= m.rs {
		return 0
	}
	return m.rs * (r - m.rs) / (2.0 * r * r * r)
}

// ChristoffelRRR returns Γ^r_rr = −rs/(2r(r−rs)).
func (m *Metric) ChristoffelRRR(r float64) float64 {
	if r <= m.rs {
		return 0
	}
	return -m.rs / (2.0 * r * (r - m.rs))
}

// ChristoffelTTR returns Γ^t_tr = rs/(2r(r−rs)).
func (m *Metric) ChristoffelTTR(r float64) float64 {
	if r <= m.rs {
		return 0
	}
	return m.rs / (2.0 * r * (r - m.rs))
}

// ChristoffelRPhiPhi returns Γ^r_φφ = −(r−rs) in the equatorial plane.
func (m *Metric) ChristoffelRPhiPhi(r float64) float64 {
	return -(r - m.rs)
}

// ChristoffelPhiRPhi returns Γ^φ_rφ = 1/r.
func (m *Metric) ChristoffelPhiRPhi(r float64) float64 {
	return 1.0 / r
}

// Integrals of motion for equatorial geodesics.

// SpecificEnergy returns E = (1 − rs/r)·u_t, conserved along a geodesic.
func (m *Metric) SpecificEnergy(r, ut float64) float64 {
	return (1.0 - m.rs/r) * ut
}

// SpecificAngularMomentum returns L = r²·u_φ, conserved along a geodesic.
func (m *Metric) SpecificAngularMomentum(r, uphi float64) float64 {
	return r * r * uphi
}

// EffectivePotential returns V²_eff(r, L) = (1 − rs/r)(1 + L²/r²) for a
// massive particle on an equatorial orbit.
func (m *Metric) EffectivePotential(r, l float64) float64 {
	return (1.0 - m.rs/r) * (1.0 + l*l/(r*r))
}

// PhotonPotential returns V²_eff(r, L) = (1 − rs/r)·L²/r² for a photon.
func (m *Metric) PhotonPotential(r, l float64) float64 {
	return (1.0 - m.rs/r) * l * l / (r * r)
}

// Reference radii used by consumers for overlays; the integrator itself
// never depends on them.

func (m *Metric) ISCORadius() float64         { return 3.0 * m.rs }
func (m *Metric) PhotonSphereRadius() float64 { return 1.5 * m.rs }

// TimeDilation returns √(1 − rs/r), the clock rate at radius r relative
// to a distant observer. Zero at and inside the horizon.
func (m *Metric) TimeDilation(r float64) float64 {
	if r <= m.rs {
		return 0
	}
	return math.Sqrt(1.0 - m.rs/r)
}

// Redshift returns the gravitational redshift z between an emitter and an
// observer at the given radii.
func (m *Metric) Redshift(rEmitter, rObserver float64) float64 {
	return m.TimeDilation(rObserver)/m.TimeDilation(rEmitter) - 1.0
}

// EscapeVelocity returns c·√(rs/r); c at and inside the horizon.
func (m *Metric) EscapeVelocity(r float64) float64 {
	if r <= m.rs {
		return SpeedOfLight
	}
	return SpeedOfLight * math.Sqrt(m.rs/r)
}

// Kretschmann returns the curvature invariant K = 48M²/r⁶ in geometric
// units, finite at the horizon and divergent only at r = 0.
func (m *Metric) Kretschmann(r float64) float64 {
	return 48.0 * m.geoMass * m.geoMass / math.Pow(r, 6)
}

func (m *Metric) HawkingTemperature() float64 { return HawkingTemperature(m.massKg) }
func (m *Metric) Entropy() float64            { return BekensteinEntropy(m.massKg) }
