package indicators

import "math"

// VolatilityService measures dispersion of daily returns
type VolatilityService struct{}

func NewVolatilityService() *VolatilityService {
	return &VolatilityService{}
}

// Calculate returns the sample standard deviation of day-over-day
// percentage returns. Needs at least two computable returns.
func (s *VolatilityService) Calculate(closes []float64) *VolatilitySummary {
	if len(closes) < 2 {
		return nil
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, ((closes[i]-closes[i-1])/closes[i-1])*100)
	}

	if len(returns) < 2 {
		return nil
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		diff := r - mean
		variance += diff * diff
	}
	variance /= float64(len(returns) - 1)
	sigma := math.Sqrt(variance)

	var bias VolatilityBias
	switch {
	case sigma < 1.0:
		bias = VolatilityBiasCalm
	case sigma < 3.0:
		bias = VolatilityBiasChoppy
	default:
		bias = VolatilityBiasWild
	}

	return &VolatilitySummary{Sigma: sigma, Bias: bias}
}
