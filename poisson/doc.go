// Package poisson builds Measurements for Poisson-distributed event counts.
//
// Three constructions are offered, from the cheapest to the most careful:
//
//	Lazy        obs ± √obs·σ(cl), symmetric.
//	CMSStatCom  Garwood interval from gamma quantiles (the frequentist
//	            recipe recommended for displaying small counts).
//	Minos       profile-likelihood interval of ν − obs·ln ν.
//
// All three take the observed count (any non-negative real) and a confidence
// level in (0, 1); stat.OneSigmaLevel() is the usual choice.
package poisson
