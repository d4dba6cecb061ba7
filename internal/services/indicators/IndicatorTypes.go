package indicators

// MACDBias is the directional read of the MACD histogram.
type MACDBias int

const (
	MACDBiasNeutral MACDBias = iota
	MACDBiasBull
	MACDBiasBear
)

func (b MACDBias) String() string {
	switch b {
	case MACDBiasBull:
		return "bull"
	case MACDBiasBear:
		return "bear"
	default:
		return "neutral"
	}
}

// RSIBias buckets the RSI value into strength bands.
type RSIBias int

const (
	RSIBiasNeutral RSIBias = iota
	RSIBiasOverbought
	RSIBiasStrong
	RSIBiasWeak
	RSIBiasOversold
)

func (b RSIBias) String() string {
	switch b {
	case RSIBiasOverbought:
		return "overbought"
	case RSIBiasStrong:
		return "strong"
	case RSIBiasWeak:
		return "weak"
	case RSIBiasOversold:
		return "oversold"
	default:
		return "neutral"
	}
}

// TrendBias is the direction of price relative to its moving average.
type TrendBias int

const (
	TrendBiasSideways TrendBias = iota
	TrendBiasUp
	TrendBiasDown
)

func (b TrendBias) String() string {
	switch b {
	case TrendBiasUp:
		return "up"
	case TrendBiasDown:
		return "down"
	default:
		return "sideways"
	}
}

// VolatilityBias buckets the daily-return standard deviation.
type VolatilityBias int

const (
	VolatilityBiasCalm VolatilityBias = iota
	VolatilityBiasChoppy
	VolatilityBiasWild
)

func (b VolatilityBias) String() string {
	switch b {
	case VolatilityBiasChoppy:
		return "choppy"
	case VolatilityBiasWild:
		return "wild"
	default:
		return "calm"
	}
}

// MACDSummary is the latest MACD(12,26,9) reading.
type MACDSummary struct {
	MACD   float64
	Signal float64
	Hist   float64
	Bias   MACDBias
}

// RSISummary is the latest RSI reading.
type RSISummary struct {
	Value float64
	Bias  RSIBias
}

// TrendSummary is price position relative to an SMA.
type TrendSummary struct {
	SMA      float64
	DeltaPct float64
	Bias     TrendBias
}

// VolatilitySummary is the daily-return dispersion reading.
type VolatilitySummary struct {
	Sigma float64
	Bias  VolatilityBias
}

// LevelSummary holds the nearest confirmed support/resistance levels.
// Support and Resistance are nil when no confirmed pivot qualifies.
type LevelSummary struct {
	Support        *float64
	Resistance     *float64
	RecentBreakout bool
}
