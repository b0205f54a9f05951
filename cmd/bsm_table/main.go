// bsm_table prints d1, d2, the Greeks and the implied volatility of a single
// contract as a one row table.
//
//	bsm_table -S 4815 -K 4500 -T 0.0877 -r 0 -sigma 0.26 -type call -target 352.404034
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"

	bsm "github.com/joshi-prasad/go_bsm"
)

func main() {
	assetPrice := flag.Float64("S", 4815, "current price of the underlying")
	strikePrice := flag.Float64("K", 4500, "strike price")
	maturity := flag.Float64("T", 0.0877, "time to maturity in years")
	rate := flag.Float64("r", 0, "risk free rate")
	volatility := flag.Float64("sigma", 0.26, "annualized volatility")
	optionType := flag.String("type", "call", "call or put")
	target := flag.Float64("target", 352.404034, "market price to solve the implied volatility for")
	places := flag.Int("places", 6, "decimal places in the output")
	flag.Parse()
	defer glog.Flush()

	callPut, err := parseCallPut(*optionType)
	if err != nil {
		glog.Fatal(err)
	}

	solver, err := bsm.NewBSMSolver(*assetPrice, *strikePrice, *maturity, *rate, *volatility, callPut)
	if err != nil {
		glog.Fatalf("building contract: %v", err)
	}

	d1, err := solver.D1()
	if err != nil {
		glog.Fatal(err)
	}
	d2, err := solver.D2()
	if err != nil {
		glog.Fatal(err)
	}
	g, err := solver.Greeks()
	if err != nil {
		glog.Fatal(err)
	}
	iv, err := solver.ImpliedVolatility(*target)
	if err != nil {
		glog.Fatalf("solving implied volatility: %v", err)
	}

	columns := []string{"d1", "d2", "Price", "Delta", "Gamma", "Theta", "Vega", "Rho", "Implied Volatility"}
	values := []float64{d1, d2, g.Price, g.Delta, g.Gamma, g.Theta, g.Vega, g.Rho, iv}

	row := make([]string, len(values))
	for i, v := range values {
		row[i] = decimal.NewFromFloat(v).Round(int32(*places)).String()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, strings.Join(columns, "\t")+"\t")
	fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	w.Flush()
}

func parseCallPut(s string) (bsm.CallPut, error) {
	switch strings.ToLower(s) {
	case "call", "c", "1":
		return bsm.Call, nil
	case "put", "p", "-1":
		return bsm.Put, nil
	}
	return 0, fmt.Errorf("unknown option type %q, want call or put", s)
}
