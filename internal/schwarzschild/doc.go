// Package schwarzschild provides the spacetime geometry of a non-rotating
// massive body.
//
// The central type is [Metric], which precomputes the Schwarzschild radius
// for a given mass and exposes:
//
//   - the Christoffel symbols needed by the equatorial geodesic equation
//   - conserved integrals of motion (specific energy, angular momentum)
//   - analytic quantities for consumers: effective potential, ISCO and
//     photon-sphere radii, time dilation, redshift, escape velocity
//
// Radii are in meters and masses in kg (construction takes solar units);
// the time coordinate is geometrized (c = 1) so that four-velocity
// components are dimensionless rates with respect to the affine parameter.
//
// A Metric is immutable after construction and safe for concurrent use.
package schwarzschild
