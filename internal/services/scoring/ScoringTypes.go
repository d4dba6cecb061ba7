package scoring

import "math"

const (
	// NeutralScore is returned for both variants when the window is too
	// short to compute anything.
	NeutralScore = 50

	// MinDataPoints is the shortest close window either calculator will
	// score.
	MinDataPoints = 10

	// TradeMaxPoints and InvestmentMaxPoints are the normalization
	// divisors: a raw score of +max maps to 100, -max to 0, 0 to 50.
	TradeMaxPoints      = 150
	InvestmentMaxPoints = 175
)

// ScoreResult carries both scoring variants. The turnaround variant
// includes the aggressive capitulation bonus; the business-as-usual (BAU)
// variant never does. TurnaroundActive gates which one callers display.
type ScoreResult struct {
	TurnaroundRaw    int
	TurnaroundScore  int
	BAURaw           int
	BAUScore         int
	TurnaroundActive bool
}

// DisplayScore is the primary score: turnaround while active, else BAU.
func (r ScoreResult) DisplayScore() int {
	if r.TurnaroundActive {
		return r.TurnaroundScore
	}
	return r.BAUScore
}

// DisplayRaw is the raw score behind DisplayScore.
func (r ScoreResult) DisplayRaw() int {
	if r.TurnaroundActive {
		return r.TurnaroundRaw
	}
	return r.BAURaw
}

func neutralResult() ScoreResult {
	return ScoreResult{
		TurnaroundRaw:    NeutralScore,
		TurnaroundScore:  NeutralScore,
		BAURaw:           NeutralScore,
		BAUScore:         NeutralScore,
		TurnaroundActive: false,
	}
}

// Normalize maps a raw additive score onto 0-100 around a neutral 50,
// clamping overshoot from stacked pattern bonuses.
func Normalize(raw, maxPoints int) int {
	if maxPoints <= 0 {
		return NeutralScore
	}
	score := int(math.Round(((float64(raw) + float64(maxPoints)) / (2 * float64(maxPoints))) * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// TradeWeights groups every point value the Trade Score hands out.
// Penalties are negative.
type TradeWeights struct {
	// Dip/recovery plays (buy weakness)
	SharpDrop     int // -8% in 5 days on a long-term uptrend
	Resilience    int // 3+ historical recoveries outside a downtrend
	Pullback      int // -25%..-10% off the high outside a downtrend
	DipUptrend    int // below SMA10/SMA20 with the 50-day trend intact
	RSIOversold   int // RSI < 35
	RSIWarm       int // RSI >= 65
	RSIOverbought int // RSI >= 70

	// Momentum plays (buy strength)
	Trend50Up    int
	MACDBull     int
	RideSMA20    int // above SMA20 with the 10-day trend up
	Momentum3Day int // +3% in 3 days
	Momentum5Day int // +5% in 5 days
	Momentum8Day int // +10% in 8 days

	// Support/resistance proximity
	NearSupport      int
	FreshBreakout    int
	RoomToResistance int // >= 10% of headroom
	NearResistance   int

	// Caution flags
	DeepDrawdown      int // below -40% off the high
	Trend50Down       int
	Overheated        int // +40% in 10 days
	StructuralDecline int // 100-day trend slope under -30
	Parabolic25       int // 25% above SMA100
	Parabolic30       int
	Parabolic40       int

	// Pattern bonuses
	DipRecovery   int
	PostShock     int
	Capitulation  int
	CheapOnWinner int

	MaxPoints int
}

// DefaultTradeWeights is the authoritative Trade Score weight set.
func DefaultTradeWeights() TradeWeights {
	return TradeWeights{
		SharpDrop:     20,
		Resilience:    15,
		Pullback:      10,
		DipUptrend:    15,
		RSIOversold:   12,
		RSIWarm:       -8,
		RSIOverbought: -12,

		Trend50Up:    15,
		MACDBull:     12,
		RideSMA20:    10,
		Momentum3Day: 3,
		Momentum5Day: 3,
		Momentum8Day: 6,

		NearSupport:      8,
		FreshBreakout:    10,
		RoomToResistance: 5,
		NearResistance:   -8,

		DeepDrawdown:      -15,
		Trend50Down:       -10,
		Overheated:        -8,
		StructuralDecline: -15,
		Parabolic25:       -10,
		Parabolic30:       -20,
		Parabolic40:       -30,

		DipRecovery:   20,
		PostShock:     60,
		Capitulation:  120,
		CheapOnWinner: 15,

		MaxPoints: TradeMaxPoints,
	}
}

// InvestmentWeights groups every point value the Investment Score hands out.
type InvestmentWeights struct {
	LongTermTrendUp   int
	LongTermTrendDown int

	// Resilience tiers (1+/3+/5+ recoveries)
	Resilience1 int
	Resilience3 int
	Resilience5 int

	// 1-year growth tiers
	Growth10       int
	Growth25       int
	Growth50       int
	Growth100      int
	GrowthNegative int

	// Innovation growth bonuses
	Rally30         int
	Rally50         int
	NearHighs40     int
	NearHighs60     int
	NearHighs80     int
	Slope25         int
	Slope50         int
	TurbulenceCombo int // wild volatility with proven resilience
	WinnersPremium  int // >= 80% time near highs and 3+ recoveries

	// Pattern bonuses
	DipRecovery   int
	PostShock     int
	Capitulation  int
	CheapOnWinner int

	MaxPoints int
}

// DefaultInvestmentWeights is the authoritative Investment Score weight set.
func DefaultInvestmentWeights() InvestmentWeights {
	return InvestmentWeights{
		LongTermTrendUp:   25,
		LongTermTrendDown: -25,

		Resilience1: 15,
		Resilience3: 25,
		Resilience5: 35,

		Growth10:       5,
		Growth25:       10,
		Growth50:       20,
		Growth100:      30,
		GrowthNegative: -15,

		Rally30:         8,
		Rally50:         15,
		NearHighs40:     5,
		NearHighs60:     10,
		NearHighs80:     20,
		Slope25:         8,
		Slope50:         15,
		TurbulenceCombo: 10,
		WinnersPremium:  15,

		DipRecovery:   20,
		PostShock:     60,
		Capitulation:  100,
		CheapOnWinner: 15,

		MaxPoints: InvestmentMaxPoints,
	}
}
