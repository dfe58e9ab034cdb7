// Package efficiency builds Measurements for binomial efficiencies: passed
// events out of total trials.
//
// Constructions:
//
//	Minos           profile-likelihood interval of the binomial NLL. The
//	                boundary cases passed == 0 and passed == total have no
//	                interior minimum and are solved one-sided.
//	Bayesian        posterior Beta(passed+α, total−passed+β) interval, either
//	                the shortest one or the equal-tailed one; the central
//	                value is the posterior mode.
//	ClopperPearson  exact frequentist interval from Beta quantiles.
//	Lazy            ε ± σ(cl)·√(ε(1−ε)/N).
//
// Every function validates its input: total > 0, 0 ≤ passed ≤ total and a
// confidence level in (0, 1).
package efficiency
