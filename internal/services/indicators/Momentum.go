package indicators

// MomentumService covers growth, drawdown and slope style metrics
// computed over a trailing close window.
type MomentumService struct{}

func NewMomentumService() *MomentumService {
	return &MomentumService{}
}

// DistanceFromHigh returns the percentage distance between the last close
// and the highest close of the trailing period (the current bar excluded,
// hence the period+1 minimum). Almost always <= 0.
func (s *MomentumService) DistanceFromHigh(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	last := closes[len(closes)-1]
	window := closes[len(closes)-1-period : len(closes)-1]

	high := window[0]
	for _, c := range window {
		if c > high {
			high = c
		}
	}
	if high == 0 {
		return 0, false
	}

	return ((last - high) / high) * 100, true
}

// GrowthRate is the simple percentage change over the trailing periodDays.
func (s *MomentumService) GrowthRate(closes []float64, periodDays int) (float64, bool) {
	if periodDays <= 0 || len(closes) < periodDays {
		return 0, false
	}

	start := closes[len(closes)-periodDays]
	if start == 0 {
		return 0, false
	}
	return ((closes[len(closes)-1] - start) / start) * 100, true
}

// RallyMagnitude finds the largest trough-to-peak percentage gain inside
// the trailing lookback window.
func (s *MomentumService) RallyMagnitude(closes []float64, lookbackDays int) (float64, bool) {
	if len(closes) < 2 {
		return 0, false
	}

	start := len(closes) - lookbackDays
	if start < 0 {
		start = 0
	}
	window := closes[start:]

	best := 0.0
	found := false
	for i := 0; i < len(window)-1; i++ {
		trough := window[i]
		if trough == 0 {
			continue
		}
		peak := trough
		for j := i + 1; j < len(window); j++ {
			if window[j] > peak {
				peak = window[j]
			}
		}
		gain := ((peak - trough) / trough) * 100
		if gain > best {
			best = gain
		}
		found = true
	}

	if !found {
		return 0, false
	}
	return best, true
}

// ReturnToHighsFrequency is the percentage of days, after a 20-day warmup,
// where the close sits within 10% of its trailing 20-day high.
func (s *MomentumService) ReturnToHighsFrequency(closes []float64, lookbackDays int) (float64, bool) {
	const warmup = 20

	if len(closes) < warmup+1 {
		return 0, false
	}

	start := len(closes) - lookbackDays
	if start < warmup {
		start = warmup
	}
	if start >= len(closes) {
		return 0, false
	}

	total := 0
	nearHigh := 0
	for i := start; i < len(closes); i++ {
		high := closes[i-warmup+1]
		for _, c := range closes[i-warmup+1 : i+1] {
			if c > high {
				high = c
			}
		}
		if high == 0 {
			continue
		}
		total++
		if closes[i] >= high*0.90 {
			nearHigh++
		}
	}

	if total == 0 {
		return 0, false
	}
	return float64(nearHigh) / float64(total) * 100, true
}

// TrendSlope fits an ordinary-least-squares line through the trailing
// period closes and annualizes the slope as a percentage of the mean price
// (slope * 252 trading days / mean * 100).
func (s *MomentumService) TrendSlope(closes []float64, period int) (float64, bool) {
	if period < 2 || len(closes) < period {
		return 0, false
	}

	window := closes[len(closes)-period:]
	n := float64(len(window))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range window {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, false
	}
	slope := (n*sumXY - sumX*sumY) / denom

	mean := sumY / n
	if mean == 0 {
		return 0, false
	}

	return (slope * 252 / mean) * 100, true
}

// Beta is the covariance of the stock's daily returns against the market's,
// divided by the market's return variance, over the shorter of the two
// aligned series. Needs at least minPeriods points of overlap.
func (s *MomentumService) Beta(stockCloses, marketCloses []float64, minPeriods int) (float64, bool) {
	n := len(stockCloses)
	if len(marketCloses) < n {
		n = len(marketCloses)
	}
	if n < minPeriods || n < 2 {
		return 0, false
	}

	stock := stockCloses[len(stockCloses)-n:]
	market := marketCloses[len(marketCloses)-n:]

	stockReturns := make([]float64, 0, n-1)
	marketReturns := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		if stock[i-1] == 0 || market[i-1] == 0 {
			continue
		}
		stockReturns = append(stockReturns, (stock[i]-stock[i-1])/stock[i-1])
		marketReturns = append(marketReturns, (market[i]-market[i-1])/market[i-1])
	}

	if len(marketReturns) < 2 {
		return 0, false
	}

	var stockMean, marketMean float64
	for i := range marketReturns {
		stockMean += stockReturns[i]
		marketMean += marketReturns[i]
	}
	stockMean /= float64(len(stockReturns))
	marketMean /= float64(len(marketReturns))

	var covariance, variance float64
	for i := range marketReturns {
		covariance += (stockReturns[i] - stockMean) * (marketReturns[i] - marketMean)
		variance += (marketReturns[i] - marketMean) * (marketReturns[i] - marketMean)
	}

	if variance == 0 {
		return 0, false
	}
	return covariance / variance, true
}
