package scoring

import (
	"IcebergScore/internal/services/indicators"
)

// InvestmentScore rates long-horizon quality (months to years): trajectory,
// resilience, and how persistently the stock earns back its highs.
func (s *Scorer) InvestmentScore(snap *IndicatorSnapshot) ScoreResult {
	if len(snap.Closes) < MinDataPoints {
		return neutralResult()
	}

	w := s.investWeights
	closes := snap.Closes
	raw := 0

	// Long-term trajectory
	if longTermIs(snap.LongTermTrend, indicators.TrendBiasUp) {
		raw += w.LongTermTrendUp
	} else if longTermIs(snap.LongTermTrend, indicators.TrendBiasDown) {
		raw += w.LongTermTrendDown
	}

	// Resilience tiers
	switch {
	case snap.ResilienceCount >= 5:
		raw += w.Resilience5
	case snap.ResilienceCount >= 3:
		raw += w.Resilience3
	case snap.ResilienceCount >= 1:
		raw += w.Resilience1
	}

	// 1-year growth tiers
	if growth, ok := s.momentum.GrowthRate(closes, 252); ok {
		switch {
		case growth >= 100:
			raw += w.Growth100
		case growth >= 50:
			raw += w.Growth50
		case growth >= 25:
			raw += w.Growth25
		case growth >= 10:
			raw += w.Growth10
		case growth < 0:
			raw += w.GrowthNegative
		}
	}

	// Innovation growth: explosive rallies, time spent near highs, steep
	// sustained slopes.
	if rally, ok := s.momentum.RallyMagnitude(closes, 90); ok {
		if rally >= 50 {
			raw += w.Rally50
		} else if rally >= 30 {
			raw += w.Rally30
		}
	}

	nearHighs, hasNearHighs := s.momentum.ReturnToHighsFrequency(closes, 180)
	if hasNearHighs {
		switch {
		case nearHighs >= 80:
			raw += w.NearHighs80
		case nearHighs >= 60:
			raw += w.NearHighs60
		case nearHighs >= 40:
			raw += w.NearHighs40
		}
	}

	if slope, ok := s.momentum.TrendSlope(closes, 100); ok {
		if slope >= 50 {
			raw += w.Slope50
		} else if slope >= 25 {
			raw += w.Slope25
		}
	}

	// A wild chart that keeps recovering is strength, not noise.
	if snap.Volatility != nil && snap.Volatility.Bias == indicators.VolatilityBiasWild && snap.ResilienceCount >= 3 {
		raw += w.TurbulenceCombo
	}

	// Winner's premium: lives near its highs and has proven it comes back.
	if hasNearHighs && nearHighs >= 80 && snap.ResilienceCount >= 3 {
		raw += w.WinnersPremium
	}

	return s.applyPatterns(snap, raw, w.DipRecovery, w.PostShock, w.Capitulation, w.CheapOnWinner, w.MaxPoints)
}
