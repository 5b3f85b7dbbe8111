// Package main demonstrates multi-seasonal decomposition of hourly data.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DemoYeti/augurs/mstl"
	"github.com/DemoYeti/augurs/stl"
	"github.com/DemoYeti/augurs/timeseries"
)

const (
	hours       = 24 * 7 * 6 // six weeks of hourly observations
	dailyCycle  = 24
	weeklyCycle = 24 * 7
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Augurs Demonstration - STL / MSTL Decomposition")
	fmt.Println(strings.Repeat("=", 80))

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	series := electricityDemand(hours)
	fmt.Printf("\nSynthetic hourly demand: n=%d mean=%.1f std=%.1f min=%.1f max=%.1f\n",
		series.Len(), series.Mean(), series.Std(), series.Min(), series.Max())

	// Single-period STL on the daily cycle only.
	fmt.Printf("\n%s\nSTL, period=%d\n%s\n", strings.Repeat("-", 80), dailyCycle, strings.Repeat("-", 80))
	fit, err := stl.NewParams().SeasonalLength(11).Fit(series.Values, dailyCycle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "STL fit failed: %v\n", err)
		os.Exit(1)
	}
	printComponent("trend", fit.Trend)
	printComponent("seasonal", fit.Seasonal)
	printComponent("remainder", fit.Remainder)

	// Multi-period MSTL on daily and weekly cycles together.
	fmt.Printf("\n%s\nMSTL, periods=[%d %d]\n%s\n", strings.Repeat("-", 80), dailyCycle, weeklyCycle, strings.Repeat("-", 80))
	params := stl.NewParams().
		SeasonalDegree(0).
		TrendDegree(1).
		LowPassDegree(1).
		InnerLoops(2).
		OuterLoops(0)
	periods := []int{dailyCycle, weeklyCycle}
	res, err := mstl.New(series, periods).Params(params).Logger(logger).Fit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "MSTL fit failed: %v\n", err)
		os.Exit(1)
	}

	printComponent("trend", res.Trend())
	daily, _ := res.Seasonal(dailyCycle)
	printComponent(fmt.Sprintf("seasonal(%d)", dailyCycle), daily)
	weekly, _ := res.Seasonal(weeklyCycle)
	printComponent(fmt.Sprintf("seasonal(%d)", weeklyCycle), weekly)
	printComponent("residuals", res.Residuals())

	out := "mstl_components.csv"
	err = timeseries.SaveComponentsCSV(out,
		[]string{"y", "trend", "seasonal_daily", "seasonal_weekly", "residual"},
		series.Values, res.Trend(), daily, weekly, res.Residuals())
	if err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("\nComponents written to %s\n", out)
}

// electricityDemand synthesizes an hourly demand-like series with a slow
// upward trend, daily and weekly cycles, and a small off-period ripple.
func electricityDemand(n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		t := float64(i)
		daily := 120 * math.Sin(2*math.Pi*t/dailyCycle)
		weekly := 300 * math.Cos(2*math.Pi*t/weeklyCycle)
		ripple := 15 * math.Sin(2*math.Pi*t/5.3)
		values[i] = 8000 + 0.4*t + daily + weekly + ripple
	}
	series := timeseries.New(values)
	series.Name = "demand"
	return series
}

func printComponent(name string, values []float64) {
	s := timeseries.New(values)
	fmt.Printf("  %-16s mean=%9.2f std=%8.2f min=%9.2f max=%9.2f\n",
		name, s.Mean(), s.Std(), s.Min(), s.Max())
}
