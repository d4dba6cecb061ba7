package patterns

import (
	"IcebergScore/internal/services/indicators"
)

// Detector flags named market conditions from precomputed indicator
// outputs. Every check is conjunctive: a missing input means false,
// never an error.
type Detector struct {
	trend *indicators.TrendService
}

func NewDetector() *Detector {
	return &Detector{
		trend: indicators.NewTrendService(),
	}
}

// DipRecovery: price dipped under the 50-day average but holds above the
// 10-day one, with both trends still pointing up.
func (d *Detector) DipRecovery(price float64, sma10, sma50 *float64, trend10, trend50 *indicators.TrendSummary) bool {
	if sma10 == nil || sma50 == nil || trend10 == nil || trend50 == nil {
		return false
	}
	return price < *sma50 &&
		price > *sma10 &&
		trend10.Bias == indicators.TrendBiasUp &&
		trend50.Bias == indicators.TrendBiasUp
}

// PostShockRecovery: a sharp drop from the recent high on a stock that
// showed real strength beforehand, and that has stopped free-falling.
func (d *Detector) PostShockRecovery(price float64, distanceFromHigh *float64, rsi *indicators.RSISummary, closes []float64) bool {
	if distanceFromHigh == nil || *distanceFromHigh > -10 {
		return false
	}

	// Pre-shock strength: above its own historical SMA-100 at some point
	// in the trailing 60 sessions.
	start := len(closes) - 60
	if start < 0 {
		start = 0
	}
	if !d.hadHistoricalStrength(closes, start) {
		return false
	}

	// Not in free-fall: RSI has a pulse, or price is stabilizing near the
	// 5-day low.
	if rsi != nil && rsi.Value > 20 {
		return true
	}
	if len(closes) >= 5 {
		low := closes[len(closes)-5]
		for _, c := range closes[len(closes)-5:] {
			if c < low {
				low = c
			}
		}
		if price >= low*0.98 {
			return true
		}
	}
	return false
}

// CheapOnWinner: a long-term uptrending stock trading under its 20-day
// average but still above the 100-day one, without a hot RSI.
func (d *Detector) CheapOnWinner(price float64, sma20, sma100 *float64, longTermTrend *indicators.TrendBias, rsi *indicators.RSISummary) bool {
	if sma20 == nil || sma100 == nil || longTermTrend == nil {
		return false
	}
	if *longTermTrend != indicators.TrendBiasUp {
		return false
	}
	if price >= *sma20 || price <= *sma100 {
		return false
	}
	return rsi == nil || rsi.Value < 50
}

// ProvenWinnerCapitulation: the rarest, highest-confidence setup. A stock
// that rallied at least 40% inside the trailing 90 sessions, then crashed
// more than 30% off that peak in extreme panic (RSI < 20), and is now back
// near the price the rally started from. The rally must have carried the
// stock above its historical SMA-100 to count as a genuine breakout.
func (d *Detector) ProvenWinnerCapitulation(price float64, closes []float64, rsi *indicators.RSISummary, distanceFromHigh *float64) bool {
	if len(closes) < 90 {
		return false
	}

	window := closes[len(closes)-90:]

	peakIdx := 0
	for i, c := range window {
		if c > window[peakIdx] {
			peakIdx = i
		}
	}
	// Need room before the peak to establish a trough.
	if peakIdx < 30 {
		return false
	}

	troughIdx := 0
	for i := 0; i < peakIdx; i++ {
		if window[i] < window[troughIdx] {
			troughIdx = i
		}
	}
	trough := window[troughIdx]
	if trough <= 0 {
		return false
	}

	rally := ((window[peakIdx] - trough) / trough) * 100
	if rally < 40 {
		return false
	}

	if distanceFromHigh == nil || *distanceFromHigh > -30 {
		return false
	}
	if rsi == nil || rsi.Value >= 20 {
		return false
	}
	if price > trough*1.10 {
		return false
	}

	// The rally has to have been a real breakout, not noise.
	return d.hadHistoricalStrength(closes, len(closes)-90+troughIdx)
}

// hadHistoricalStrength reports whether the close exceeded its own
// historical SMA-100 at any index from start onward. The SMA is recomputed
// over each prefix; quadratic on purpose, windows are small.
func (d *Detector) hadHistoricalStrength(closes []float64, start int) bool {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(closes); i++ {
		sma, ok := d.trend.SMA(closes[:i+1], 100)
		if !ok {
			continue
		}
		if closes[i] > sma {
			return true
		}
	}
	return false
}
