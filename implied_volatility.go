package go_bsm

import (
	"math"

	"github.com/golang/glog"
)

const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-5

	// VegaEpsilon is the magnitude below which vega is treated as zero and
	// the Newton step is abandoned.
	VegaEpsilon = 1e-8
)

// ImpliedVolatility is ImpliedVolatilityWithin with DefaultMaxIterations and
// DefaultTolerance.
func (bs *BSMSolver) ImpliedVolatility(target_price float64) (float64, error) {
	return bs.ImpliedVolatilityWithin(target_price, DefaultMaxIterations, DefaultTolerance)
}

// ImpliedVolatilityWithin estimates the volatility that reproduces
// target_price using Newton-Raphson on sigma, with vega as the derivative.
//
// The iteration always starts from DefaultVolatility, whatever the current
// volatility is. It stops when the price is within tolerance of the target,
// when vega is numerically zero, or after max_iterations steps. In the last
// two cases the current guess is returned as a best effort estimate without
// an error; use Residual to judge its quality.
//
// The solver leaves the receiver's volatility set to the returned estimate.
// Use ImpliedVolatilitySnapshot to keep the receiver untouched.
func (bs *BSMSolver) ImpliedVolatilityWithin(
	target_price float64,
	max_iterations int,
	tolerance float64) (float64, error) {
	volatility := DefaultVolatility

	for i := 0; i < max_iterations; i++ {
		bs.SetVolatility(volatility)
		g, err := bs.Greeks()
		if err != nil {
			glog.V(1).Infof("implied volatility: iteration %d failed at sigma=%v: %v", i, volatility, err)
			return volatility, err
		}

		if math.Abs(g.Vega) <= VegaEpsilon {
			glog.V(1).Infof("implied volatility: vega vanished at sigma=%v after %d iterations", volatility, i)
			return volatility, nil
		}

		diff := target_price - g.Price
		glog.V(2).Infof("implied volatility: iteration=%d sigma=%v price=%v vega=%v diff=%v",
			i, volatility, g.Price, g.Vega, diff)
		if math.Abs(diff) < tolerance {
			glog.V(1).Infof("implied volatility: converged to sigma=%v after %d iterations", volatility, i)
			return volatility, nil
		}

		volatility += diff / g.Vega
	}

	glog.Warningf("implied volatility did not converge in %d iterations for target %v, returning sigma=%v",
		max_iterations, target_price, volatility)
	bs.SetVolatility(volatility)
	return volatility, nil
}

// ImpliedVolatilitySnapshot runs the same solver on a clone of the receiver
// and returns the clone, left at the estimated volatility. The receiver's
// volatility and memoized values are not modified.
func (bs *BSMSolver) ImpliedVolatilitySnapshot(
	target_price float64,
	max_iterations int,
	tolerance float64) (float64, *BSMSolver, error) {
	clone := bs.Clone()
	volatility, err := clone.ImpliedVolatilityWithin(target_price, max_iterations, tolerance)
	if err != nil {
		return volatility, nil, err
	}
	return volatility, clone, nil
}

// Residual returns target_price minus the model price under the current
// volatility.
func (bs *BSMSolver) Residual(target_price float64) (float64, error) {
	g, err := bs.Greeks()
	if err != nil {
		return 0, err
	}
	return target_price - g.Price, nil
}
