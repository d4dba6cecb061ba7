package scoring

import (
	"IcebergScore/internal/services/indicators"
	"IcebergScore/internal/services/patterns"
	"math"
)

// IndicatorSnapshot is every input the score calculators need, computed
// once from a single close window. Nil fields mean the indicator's minimum
// window wasn't met; the calculators skip those terms.
type IndicatorSnapshot struct {
	Price  float64
	Closes []float64

	MACD             *indicators.MACDSummary
	RSI              *indicators.RSISummary
	SMA10            *float64
	SMA20            *float64
	SMA50            *float64
	SMA100           *float64
	Trend10          *indicators.TrendSummary
	Trend50          *indicators.TrendSummary
	LongTermTrend    *indicators.TrendBias
	Volatility       *indicators.VolatilitySummary
	DistanceFromHigh *float64
	ResilienceCount  int
	Levels           *indicators.LevelSummary
}

// Scorer owns the indicator services and the pattern detector and turns a
// close window into the dual Iceberg scores. Pure compute: it never touches
// a database or the network.
type Scorer struct {
	macd       *indicators.MACDService
	rsi        *indicators.RSIService
	trend      *indicators.TrendService
	volatility *indicators.VolatilityService
	momentum   *indicators.MomentumService
	recovery   *indicators.RecoveryService
	levels     *indicators.LevelService
	detector   *patterns.Detector

	tradeWeights  TradeWeights
	investWeights InvestmentWeights
}

func NewScorer() *Scorer {
	return &Scorer{
		macd:          indicators.NewMACDService(),
		rsi:           indicators.NewRSIService(),
		trend:         indicators.NewTrendService(),
		volatility:    indicators.NewVolatilityService(),
		momentum:      indicators.NewMomentumService(),
		recovery:      indicators.NewRecoveryService(),
		levels:        indicators.NewLevelService(),
		detector:      patterns.NewDetector(),
		tradeWeights:  DefaultTradeWeights(),
		investWeights: DefaultInvestmentWeights(),
	}
}

// Snapshot computes the full indicator set for a close window
// (oldest to newest).
func (s *Scorer) Snapshot(closes []float64) *IndicatorSnapshot {
	snap := &IndicatorSnapshot{Closes: closes}
	if len(closes) == 0 {
		return snap
	}
	snap.Price = closes[len(closes)-1]

	snap.MACD = s.macd.Calculate(closes)
	snap.RSI = s.rsi.Calculate(closes, 14)
	snap.SMA10 = s.smaPtr(closes, 10)
	snap.SMA20 = s.smaPtr(closes, 20)
	snap.SMA50 = s.smaPtr(closes, 50)
	snap.SMA100 = s.smaPtr(closes, 100)
	snap.Trend10 = s.trend.Trend(closes, 10)
	snap.Trend50 = s.trend.Trend(closes, 50)
	if bias, ok := s.trend.LongTermTrend(closes, 100); ok {
		snap.LongTermTrend = &bias
	}
	snap.Volatility = s.volatility.Calculate(closes)
	if dist, ok := s.momentum.DistanceFromHigh(closes, 20); ok {
		snap.DistanceFromHigh = &dist
	}
	snap.ResilienceCount = s.recovery.Count(closes, 180)
	snap.Levels = s.levels.Calculate(closes, 5)

	return snap
}

// Score is the one-call entry point: snapshot once, score twice.
func (s *Scorer) Score(closes []float64) (trade, investment ScoreResult) {
	snap := s.Snapshot(closes)
	return s.TradeScore(snap), s.InvestmentScore(snap)
}

func (s *Scorer) smaPtr(closes []float64, period int) *float64 {
	sma, ok := s.trend.SMA(closes, period)
	if !ok {
		return nil
	}
	return &sma
}

// applyPatterns layers the pattern bonuses over a base raw score and
// splits it into the turnaround and BAU variants. Capitulation only ever
// feeds the turnaround side; BAU stays conservative.
func (s *Scorer) applyPatterns(snap *IndicatorSnapshot, base, dipW, shockW, capW, cheapW, maxPoints int) ScoreResult {
	price := snap.Price

	dip := s.detector.DipRecovery(price, snap.SMA10, snap.SMA50, snap.Trend10, snap.Trend50)
	shock := s.detector.PostShockRecovery(price, snap.DistanceFromHigh, snap.RSI, snap.Closes)
	cheap := s.detector.CheapOnWinner(price, snap.SMA20, snap.SMA100, snap.LongTermTrend, snap.RSI)
	capitulation := s.detector.ProvenWinnerCapitulation(price, snap.Closes, snap.RSI, snap.DistanceFromHigh)

	dipMult := 1.0
	if snap.ResilienceCount >= 3 {
		dipMult = 1.2
	} else if snap.ResilienceCount == 0 {
		dipMult = 0.8
	}
	patternMult := 1.0
	if snap.ResilienceCount >= 3 {
		patternMult = 1.2
	}

	turnaround, bau := base, base
	if dip {
		bonus := scaled(dipW, dipMult)
		turnaround += bonus
		bau += bonus
	}
	if cheap {
		turnaround += cheapW
		bau += cheapW
	}

	shockBonus := scaled(shockW, patternMult)
	if capitulation {
		turnaround += scaled(capW, patternMult)
	} else if shock {
		turnaround += shockBonus
	}
	if shock {
		bau += shockBonus
	}

	// Safety rail: the aggressive signal dies once price reclaims SMA-50.
	active := capitulation && snap.SMA50 != nil && price < *snap.SMA50

	return ScoreResult{
		TurnaroundRaw:    turnaround,
		TurnaroundScore:  Normalize(turnaround, maxPoints),
		BAURaw:           bau,
		BAUScore:         Normalize(bau, maxPoints),
		TurnaroundActive: active,
	}
}

func scaled(weight int, mult float64) int {
	return int(math.Round(float64(weight) * mult))
}

// changePct is the % change over the trailing days (inclusive of today,
// so days=5 spans four sessions of movement).
func changePct(closes []float64, days int) (float64, bool) {
	if days <= 1 || len(closes) < days {
		return 0, false
	}
	start := closes[len(closes)-days]
	if start == 0 {
		return 0, false
	}
	return ((closes[len(closes)-1] - start) / start) * 100, true
}

func trendIs(trend *indicators.TrendSummary, bias indicators.TrendBias) bool {
	return trend != nil && trend.Bias == bias
}

func longTermIs(longTerm *indicators.TrendBias, bias indicators.TrendBias) bool {
	return longTerm != nil && *longTerm == bias
}
