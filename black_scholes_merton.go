package go_bsm

import (
	"fmt"
	"math"

	"github.com/golang/glog"
)

// DefaultVolatility is the volatility used when the caller has no estimate,
// and the starting guess of the implied volatility solver.
const DefaultVolatility = 0.5

// CallPut selects the option variant. The numeric values are the usual
// phi = +1 / -1 sign convention.
type CallPut int

const (
	Call CallPut = 1
	Put  CallPut = -1
)

func (cp CallPut) String() string {
	switch cp {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("CallPut(%d)", int(cp))
}

// BSMSolver prices a single European option contract under
// Black-Scholes-Merton and solves for its implied volatility.
//
// Every field except the volatility is fixed at construction. d1, d2 and the
// Greeks are computed on first read and memoized until the volatility is
// changed. A BSMSolver is not safe for concurrent use; use Clone to get an
// independent instance per goroutine.
type BSMSolver struct {
	AssetPrice     float64 /* S */
	StrikePrice    float64 /* K */
	TimeToMaturity float64 /* T, in years */
	RiskFreeRate   float64 /* r, continuously compounded */
	CallPut        CallPut /* phi */

	volatility float64 /* sigma */

	_d1     *float64
	_d2     *float64
	_greeks *Greeks
}

// NewBSMSolver validates the contract and returns a solver for it. No derived
// value is computed here.
func NewBSMSolver(
	asset_price float64,
	strike_price float64,
	time_to_maturity float64,
	risk_free_rate float64,
	volatility float64,
	call_put CallPut) (*BSMSolver, error) {
	if err := validateContract(asset_price, strike_price, time_to_maturity, call_put); err != nil {
		glog.V(1).Infof("rejected contract S=%v K=%v T=%v phi=%d: %v",
			asset_price, strike_price, time_to_maturity, int(call_put), err)
		return nil, err
	}

	return &BSMSolver{
		AssetPrice:     asset_price,
		StrikePrice:    strike_price,
		TimeToMaturity: time_to_maturity,
		RiskFreeRate:   risk_free_rate,
		CallPut:        call_put,
		volatility:     volatility,
	}, nil
}

// NewDefaultBSMSolver returns a call priced at DefaultVolatility.
func NewDefaultBSMSolver(asset_price, strike_price, time_to_maturity, risk_free_rate float64) (*BSMSolver, error) {
	return NewBSMSolver(asset_price, strike_price, time_to_maturity, risk_free_rate, DefaultVolatility, Call)
}

func validateContract(s, k, t float64, cp CallPut) error {
	// Written as !(t > 0) so that a NaN maturity is rejected too.
	if !(t > 0) {
		return fmt.Errorf("%w: time to maturity must be greater than 0, got %v", ErrInvalidContract, t)
	}
	if s < 0 || k < 0 {
		return fmt.Errorf("%w: asset price and strike price cannot be negative, got S=%v K=%v",
			ErrInvalidContract, s, k)
	}
	if cp != Call && cp != Put {
		return fmt.Errorf("%w: option type must be 1 (call) or -1 (put), got %d", ErrInvalidContract, int(cp))
	}
	return nil
}

// Volatility returns the annualized volatility the derived values are
// computed under.
func (bs *BSMSolver) Volatility() float64 {
	return bs.volatility
}

// SetVolatility replaces the volatility and drops every memoized value so the
// next read of d1, d2 or the Greeks is recomputed.
func (bs *BSMSolver) SetVolatility(volatility float64) {
	bs.volatility = volatility
	bs._d1 = nil
	bs._d2 = nil
	bs._greeks = nil
}

// Clone returns an independent copy of the contract with the same
// volatility and an empty cache.
func (bs *BSMSolver) Clone() *BSMSolver {
	return &BSMSolver{
		AssetPrice:     bs.AssetPrice,
		StrikePrice:    bs.StrikePrice,
		TimeToMaturity: bs.TimeToMaturity,
		RiskFreeRate:   bs.RiskFreeRate,
		CallPut:        bs.CallPut,
		volatility:     bs.volatility,
	}
}

// D1 returns the d1 term of the Black-Scholes formula.
func (bs *BSMSolver) D1() (float64, error) {
	if bs._d1 == nil {
		d1 := bs.d1()
		if !isFinite(d1) {
			return 0, bs.domainError("d1", d1)
		}
		bs._d1 = &d1
	}
	return *bs._d1, nil
}

// D2 returns the d2 term of the Black-Scholes formula.
func (bs *BSMSolver) D2() (float64, error) {
	if bs._d2 == nil {
		d1, err := bs.D1()
		if err != nil {
			return 0, err
		}
		d2 := d1 - bs.a()
		if !isFinite(d2) {
			return 0, bs.domainError("d2", d2)
		}
		bs._d2 = &d2
	}
	return *bs._d2, nil
}

// 'a' is sigma * sqrt(T), the standard deviation of the log return of the
// asset over the life of the option.
func (bs *BSMSolver) a() float64 {
	return bs.volatility * math.Sqrt(bs.TimeToMaturity)
}

// d1 = (ln(S / K) + (r + σ² / 2) * T) / (σ * √T)
func (bs *BSMSolver) d1() float64 {
	return (math.Log(bs.AssetPrice/bs.StrikePrice) +
		(bs.RiskFreeRate+0.5*bs.volatility*bs.volatility)*bs.TimeToMaturity) /
		bs.a()
}

// deflater discounts a payoff at expiry back to today: exp(-r * T).
func (bs *BSMSolver) deflater() float64 {
	return math.Exp(-bs.RiskFreeRate * bs.TimeToMaturity)
}

func (bs *BSMSolver) domainError(name string, value float64) error {
	return fmt.Errorf("%w: %s is %v (S=%v K=%v T=%v r=%v sigma=%v)",
		ErrNumericDomain, name, value,
		bs.AssetPrice, bs.StrikePrice, bs.TimeToMaturity, bs.RiskFreeRate, bs.volatility)
}
