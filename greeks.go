package go_bsm

import (
	"math"
)

// Greeks holds the option price together with its first order sensitivities
// (and gamma). Theta is per year and vega is per unit of volatility; neither
// is rescaled to days or percentage points.
type Greeks struct {
	Price float64
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// Map returns the Greeks keyed by their lower case names.
func (g Greeks) Map() map[string]float64 {
	return map[string]float64{
		"price": g.Price,
		"delta": g.Delta,
		"gamma": g.Gamma,
		"theta": g.Theta,
		"vega":  g.Vega,
		"rho":   g.Rho,
	}
}

// Greeks returns the price and sensitivities under the current volatility.
// The result is memoized until SetVolatility is called. An error wrapping
// ErrNumericDomain is returned instead of a partially valid set.
func (bs *BSMSolver) Greeks() (Greeks, error) {
	if bs._greeks == nil {
		g, err := bs.computeGreeks()
		if err != nil {
			return Greeks{}, err
		}
		bs._greeks = &g
	}
	return *bs._greeks, nil
}

func (bs *BSMSolver) computeGreeks() (Greeks, error) {
	d1, err := bs.D1()
	if err != nil {
		return Greeks{}, err
	}
	d2, err := bs.D2()
	if err != nil {
		return Greeks{}, err
	}

	S := bs.AssetPrice
	K := bs.StrikePrice
	T := bs.TimeToMaturity
	r := bs.RiskFreeRate
	sigma := bs.volatility
	sqrtT := math.Sqrt(T)
	deflater := bs.deflater()

	pdf1 := normPdf(d1)
	cdf1 := normCdf(d1)
	cdf2 := normCdf(d2)

	var g Greeks
	g.Gamma = pdf1 / (S * sigma * sqrtT)
	g.Vega = S * pdf1 * sqrtT

	// Both variants share the time decay of the volatility term.
	decay := -S * pdf1 * sigma / (2 * sqrtT)
	if bs.CallPut == Call {
		g.Price = cdf1*S - cdf2*K*deflater
		g.Delta = cdf1
		g.Theta = decay - r*K*deflater*cdf2
		g.Rho = T * K * deflater * cdf2
	} else {
		// put = K * exp(-r * T) - S + call, i.e. priced through parity.
		g.Price = K*deflater - S + cdf1*S - cdf2*K*deflater
		g.Delta = cdf1 - 1
		g.Theta = decay + r*K*deflater*(1-cdf2)
		g.Rho = -T * K * deflater * (1 - cdf2)
	}

	for name, v := range g.Map() {
		if !isFinite(v) {
			return Greeks{}, bs.domainError(name, v)
		}
	}
	return g, nil
}
