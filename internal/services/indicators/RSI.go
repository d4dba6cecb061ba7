package indicators

type RSIService struct{}

func NewRSIService() *RSIService {
	return &RSIService{}
}

// Calculate computes RSI over the trailing period deltas.
// Returns nil with fewer than period+1 points.
func (s *RSIService) Calculate(closes []float64, period int) *RSISummary {
	if period <= 0 || len(closes) < period+1 {
		return nil
	}

	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}

	var avgGain, avgLoss float64
	for _, g := range gains[len(gains)-period:] {
		avgGain += g
	}
	for _, l := range losses[len(losses)-period:] {
		avgLoss += l
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	rsi := 100.0
	if avgLoss != 0 {
		rs := avgGain / avgLoss
		rsi = 100 - (100 / (1 + rs))
	}

	var bias RSIBias
	switch {
	case rsi >= 70:
		bias = RSIBiasOverbought
	case rsi >= 55:
		bias = RSIBiasStrong
	case rsi >= 45:
		bias = RSIBiasNeutral
	case rsi >= 30:
		bias = RSIBiasWeak
	default:
		bias = RSIBiasOversold
	}

	return &RSISummary{Value: rsi, Bias: bias}
}
