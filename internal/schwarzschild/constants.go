package schwarzschild

import "math"

// Physical constants, SI units throughout: G in m³/(kg·s²), c in m/s,
// masses in kg.
const (
	GravitationalConstant = 6.67430e-11
	SpeedOfLight          = 299792458.0
	SolarMass             = 1.98892e30
	PlanckConstant        = 6.62607015e-34
	BoltzmannConstant     = 1.380649e-23
)

const (
	c2   = SpeedOfLight * SpeedOfLight
	hbar = PlanckConstant / (2 * math.Pi)
)

// Radius computes the Schwarzschild radius 2GM/c² for a mass in kg.
func Radius(massKg float64) float64 {
	return 2.0 * GravitationalConstant * massKg / c2
}

// RadiusSolar computes the Schwarzschild radius for a mass in solar units.
func RadiusSolar(massSolar float64) float64 {
	return Radius(massSolar * SolarMass)
}

// HawkingTemperature computes T = ħc³/(8πGMk) for a mass in kg.
func HawkingTemperature(massKg float64) float64 {
	return hbar * SpeedOfLight * c2 / (8.0 * math.Pi * GravitationalConstant * massKg * BoltzmannConstant)
}

// BekensteinEntropy computes S = 4πkGM²/(ħc) for a mass in kg.
func BekensteinEntropy(massKg float64) float64 {
	return 4.0 * math.Pi * BoltzmannConstant * GravitationalConstant * massKg * massKg /
		(hbar * SpeedOfLight)
}

// HawkingLuminosity computes L = ħc⁶/(15360πG²M²) for a mass in kg.
func HawkingLuminosity(massKg float64) float64 {
	g2 := GravitationalConstant * GravitationalConstant
	return hbar * math.Pow(SpeedOfLight, 6) / (15360.0 * math.Pi * g2 * massKg * massKg)
}
