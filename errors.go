package go_bsm

import (
	"errors"
	"math"
)

var (
	// ErrInvalidContract is returned by NewBSMSolver when the contract
	// parameters cannot describe a European option.
	ErrInvalidContract = errors.New("invalid contract")

	// ErrNumericDomain is returned when a derived value (d1, d2 or any of the
	// Greeks) comes out as NaN or Inf, e.g. for a zero volatility or a zero
	// asset/strike price.
	ErrNumericDomain = errors.New("numeric domain error")
)

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
