package scoring

import (
	"IcebergScore/internal/services/indicators"
)

// TradeScore rates short-horizon entry timing (days to weeks). It rewards
// two kinds of setups: dips on healthy stocks and confirmed momentum, and
// penalizes extended or structurally declining charts.
func (s *Scorer) TradeScore(snap *IndicatorSnapshot) ScoreResult {
	if len(snap.Closes) < MinDataPoints {
		return neutralResult()
	}

	w := s.tradeWeights
	closes := snap.Closes
	price := snap.Price
	raw := 0

	// Dip/recovery plays (buy weakness)
	if change, ok := changePct(closes, 5); ok && change <= -8 && longTermIs(snap.LongTermTrend, indicators.TrendBiasUp) {
		raw += w.SharpDrop
	}
	if snap.ResilienceCount >= 3 && !longTermIs(snap.LongTermTrend, indicators.TrendBiasDown) {
		raw += w.Resilience
	}
	if snap.DistanceFromHigh != nil && !longTermIs(snap.LongTermTrend, indicators.TrendBiasDown) {
		if dist := *snap.DistanceFromHigh; dist >= -25 && dist <= -10 {
			raw += w.Pullback
		}
	}
	belowSMA10 := snap.SMA10 != nil && price < *snap.SMA10
	belowSMA20 := snap.SMA20 != nil && price < *snap.SMA20
	if (belowSMA10 || belowSMA20) && trendIs(snap.Trend50, indicators.TrendBiasUp) {
		raw += w.DipUptrend
	}
	if snap.RSI != nil && snap.RSI.Value < 35 {
		raw += w.RSIOversold
	}
	if snap.RSI != nil {
		if snap.RSI.Value >= 70 {
			raw += w.RSIOverbought
		} else if snap.RSI.Value >= 65 {
			raw += w.RSIWarm
		}
	}

	// Momentum/breakout plays (buy strength)
	if trendIs(snap.Trend50, indicators.TrendBiasUp) {
		raw += w.Trend50Up
	}
	if snap.MACD != nil && snap.MACD.Bias == indicators.MACDBiasBull {
		raw += w.MACDBull
	}
	if snap.SMA20 != nil && price > *snap.SMA20 && trendIs(snap.Trend10, indicators.TrendBiasUp) {
		raw += w.RideSMA20
	}
	// Cumulative momentum tiers
	if change, ok := changePct(closes, 3); ok && change >= 3 {
		raw += w.Momentum3Day
	}
	if change, ok := changePct(closes, 5); ok && change >= 5 {
		raw += w.Momentum5Day
	}
	if change, ok := changePct(closes, 8); ok && change >= 10 {
		raw += w.Momentum8Day
	}

	// Support/resistance proximity
	if lv := snap.Levels; lv != nil {
		if lv.Support != nil && price <= *lv.Support*1.03 {
			raw += w.NearSupport
		}
		if lv.RecentBreakout {
			raw += w.FreshBreakout
		}
		if lv.Resistance != nil && price > 0 {
			if price >= *lv.Resistance*0.97 {
				raw += w.NearResistance
			} else if ((*lv.Resistance-price)/price)*100 >= 10 {
				raw += w.RoomToResistance
			}
		}
	}

	// Caution flags
	if snap.DistanceFromHigh != nil && *snap.DistanceFromHigh < -40 {
		raw += w.DeepDrawdown
	}
	if trendIs(snap.Trend50, indicators.TrendBiasDown) {
		raw += w.Trend50Down
	}
	if change, ok := changePct(closes, 10); ok && change > 40 {
		raw += w.Overheated
	}
	if slope, ok := s.momentum.TrendSlope(closes, 100); ok && slope < -30 {
		raw += w.StructuralDecline
	}
	if snap.SMA100 != nil && *snap.SMA100 > 0 {
		extension := ((price - *snap.SMA100) / *snap.SMA100) * 100
		switch {
		case extension >= 40:
			raw += w.Parabolic40
		case extension >= 30:
			raw += w.Parabolic30
		case extension >= 25:
			raw += w.Parabolic25
		}
	}

	return s.applyPatterns(snap, raw, w.DipRecovery, w.PostShock, w.Capitulation, w.CheapOnWinner, w.MaxPoints)
}
