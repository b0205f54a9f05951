package go_bsm

import "gonum.org/v1/gonum/stat/distuv"

// normCdf returns the probability that a standard normal random variable is
// less than or equal to x.
func normCdf(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// normPdf is the density of the standard normal distribution at x.
func normPdf(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
