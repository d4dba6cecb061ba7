package indicators

// TrendService provides SMA-based trend calculations
type TrendService struct{}

func NewTrendService() *TrendService {
	return &TrendService{}
}

// SMA returns the mean of the trailing period closes.
func (s *TrendService) SMA(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}

	var sum float64
	for _, c := range closes[len(closes)-period:] {
		sum += c
	}
	return sum / float64(period), true
}

// Trend compares the last close to its SMA. Bias is Up above +2%,
// Down below -2%, Sideways between.
func (s *TrendService) Trend(closes []float64, period int) *TrendSummary {
	sma, ok := s.SMA(closes, period)
	if !ok || sma == 0 {
		return nil
	}

	last := closes[len(closes)-1]
	deltaPct := ((last - sma) / sma) * 100

	bias := TrendBiasSideways
	if deltaPct > 2.0 {
		bias = TrendBiasUp
	} else if deltaPct < -2.0 {
		bias = TrendBiasDown
	}

	return &TrendSummary{SMA: sma, DeltaPct: deltaPct, Bias: bias}
}

// LongTermTrend is Trend over a long window, reduced to its bias.
func (s *TrendService) LongTermTrend(closes []float64, period int) (TrendBias, bool) {
	trend := s.Trend(closes, period)
	if trend == nil {
		return TrendBiasSideways, false
	}
	return trend.Bias, true
}
