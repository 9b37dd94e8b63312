package stalker

import "math"

// This file holds the price-series analytics. All functions operate on
// plain close-price slices and use NaN for points where the metric is
// undefined, so that a result always has the same length as its input.

// SMA computes the simple moving average over a trailing window.
//
// The first window-1 points are NaN. A window that is not positive, or
// larger than the series, yields an all-NaN result of the same length.
func SMA(prices []float64, window int) []float64 {
	out := nans(len(prices))
	if window <= 0 || window > len(prices) {
		return out
	}
	// Sliding sum, keeping NaNs out of it so a single bad point only
	// poisons the windows that contain it.
	var sum float64
	var nanCount int
	for i, p := range prices {
		if math.IsNaN(p) {
			nanCount++
		} else {
			sum += p
		}
		if i >= window {
			if old := prices[i-window]; math.IsNaN(old) {
				nanCount--
			} else {
				sum -= old
			}
		}
		if i >= window-1 && nanCount == 0 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// DailyReturns computes simple period-over-period returns.
//
// The first point is NaN, as is any point whose previous close is zero or
// undefined.
func DailyReturns(prices []float64) []float64 {
	out := nans(len(prices))
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 || math.IsNaN(prev) || math.IsNaN(prices[i]) {
			continue
		}
		out[i] = (prices[i] - prev) / prev
	}
	return out
}

// MaxProfit computes the best achievable profit when buying and selling at
// closes with unlimited transactions: the sum of every positive
// day-over-day delta.
func MaxProfit(prices []float64) float64 {
	var profit float64
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 { // NaN deltas fail this test and contribute nothing
			profit += delta
		}
	}
	return profit
}

// Streaks returns the longest run of strictly rising days, the longest run
// of strictly falling days, and the day-over-day trend mask (+1 rise,
// -1 fall, 0 flat or undefined; the first point is always 0).
//
// Flat days break both runs. A series of one point or less has no streaks.
func Streaks(prices []float64) (longestUp, longestDown int, mask []int) {
	mask = make([]int, len(prices))
	if len(prices) <= 1 {
		return 0, 0, mask
	}
	var up, down int
	for i := 1; i < len(prices); i++ {
		switch {
		case prices[i] > prices[i-1]:
			mask[i] = 1
			up++
			down = 0
		case prices[i] < prices[i-1]:
			mask[i] = -1
			down++
			up = 0
		default: // flat or NaN
			up, down = 0, 0
		}
		longestUp = max(longestUp, up)
		longestDown = max(longestDown, down)
	}
	return longestUp, longestDown, mask
}

// Volatility computes the sample standard deviation of the defined daily
// returns. Fewer than two defined returns yields NaN.
func Volatility(prices []float64) float64 {
	returns := defined(DailyReturns(prices))
	if len(returns) < 2 {
		return math.NaN()
	}
	return stddev(returns, 1)
}

// tradingDaysPerYear is the conventional annualization base.
const tradingDaysPerYear = 252

// AnnualizedVolatility scales the daily volatility by √252.
func AnnualizedVolatility(prices []float64) float64 {
	return Volatility(prices) * math.Sqrt(tradingDaysPerYear)
}

// Drawdowns computes the underwater series: price over running maximum,
// minus one. Every point is ≤ 0; a NaN price yields a NaN point without
// corrupting the running maximum.
func Drawdowns(prices []float64) []float64 {
	out := nans(len(prices))
	runningMax := math.Inf(-1)
	for i, p := range prices {
		if math.IsNaN(p) {
			continue
		}
		if p > runningMax {
			runningMax = p
		}
		if runningMax > 0 {
			out[i] = p/runningMax - 1
		}
	}
	return out
}

// MaxDrawdown returns the deepest point of the underwater series, as a
// negative ratio. An empty or all-NaN series has no drawdown (0).
func MaxDrawdown(prices []float64) float64 {
	var worst float64
	for _, d := range Drawdowns(prices) {
		if !math.IsNaN(d) && d < worst {
			worst = d
		}
	}
	return worst
}

// Growth computes (last-first)/first over the defined endpoints of the series.
func Growth(prices []float64) float64 {
	vals := defined(prices)
	if len(vals) < 2 || vals[0] == 0 {
		return math.NaN()
	}
	return (vals[len(vals)-1] - vals[0]) / vals[0]
}

// AverageDailyRange computes the mean of 100*(high-low)/close over the
// trailing n bars. Bars with a zero close are skipped.
func AverageDailyRange(bars []Bar, n int) float64 {
	if n <= 0 || len(bars) == 0 {
		return math.NaN()
	}
	if n > len(bars) {
		n = len(bars)
	}
	var sum float64
	var count int
	for _, b := range bars[len(bars)-n:] {
		if b.Close == 0 {
			continue
		}
		sum += 100 * (b.High - b.Low) / b.Close
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// AverageDollarVolume computes the mean of close*volume over the trailing n bars.
func AverageDollarVolume(bars []Bar, n int) float64 {
	if n <= 0 || len(bars) == 0 {
		return math.NaN()
	}
	if n > len(bars) {
		n = len(bars)
	}
	var sum float64
	for _, b := range bars[len(bars)-n:] {
		sum += b.Close * float64(b.Volume)
	}
	return sum / float64(n)
}

// nans returns a slice of n NaN values.
func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// defined filters out the NaN values.
func defined(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// stddev computes the standard deviation with the given delta degrees of
// freedom (0 for population, 1 for sample).
func stddev(values []float64, ddof int) float64 {
	n := len(values)
	if n-ddof <= 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-ddof))
}
