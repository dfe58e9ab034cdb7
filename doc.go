// Package minos propagates asymmetric uncertainties.
//
// A measurement is a central value with separate upper and lower errors,
// written c +up -lo. Independent measurements are combined under sums,
// products or any smooth function with the profile-likelihood (Minos)
// method: each input contributes an approximate negative log-likelihood,
// the joint NLL is minimised, and the interval of the derived quantity is
// the extent of the ΔNLL contour, found with Lagrange multipliers.
//
// Everything is organised in subpackages:
//
//	matrix/      dense matrices and pivoted LU, used by the Newton root finder
//	solver/      Brent root/minimum, Nelder–Mead simplex, damped Newton, derivatives
//	stat/        confidence ↔ sigma, NLL primitives, 1-D and N-D Minos intervals
//	measurement/ the Measurement type, closed-form scalar ops, Sum/Prod/Evaluate
//	poisson/     measurements from event counts
//	efficiency/  measurements from binomial pass/total counts
//	config/      YAML/JSON measurement documents
//	cmd/minos    command-line front end
//
// Quick example:
//
//	a := measurement.New(10, 3, 1)   // 10 +3 -1
//	b := measurement.NewSymmetric(4, 2)
//	s, err := measurement.Sum(a, b)  // Minos interval of a + b
//
//	go get github.com/katalvlaran/minos
package minos
