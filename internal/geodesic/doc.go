// Package geodesic integrates trajectories of test particles in the
// Schwarzschild equatorial plane.
//
//   - [State]: six-component vector [t, r, φ, u_t, u_r, u_φ]
//   - [EquatorialField]: the geodesic ODE right-hand side, with the
//     near-horizon freeze guard
//   - [Generator]: initial-condition construction, the fixed-step loop,
//     and the capture/escape termination policy
//   - [Sampler]: seeded per-particle initial conditions
//   - [Ensemble]: parallel integration of independent particles
//
// # Termination
//
// A trajectory ends in one of three terminal outcomes: Captured
// (r ≤ 1.001·rs), Escaped (r > 10·r0), or BudgetExhausted. Capture and
// escape are normal results, distinguishable from the final state's
// radius; only invalid configuration is reported as an error, and it is
// rejected before the first step.
//
// # Example
//
//	m, _ := schwarzschild.New(10)
//	gen := geodesic.NewGenerator(m, integrators.NewRK4())
//	traj, _ := gen.Integrate(ctx, geodesic.Params{
//		R0: 5 * m.Rs(), VR0: -0.1, MaxSteps: 3000, StepSize: 200,
//	})
package geodesic
