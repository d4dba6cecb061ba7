package indicators

// EMAService provides Exponential Moving Average calculations
type EMAService struct{}

// NewEMAService creates a new EMA service instance
func NewEMAService() *EMAService {
	return &EMAService{}
}

// Calculate computes the EMA for the whole series (oldest to newest).
// The first value seeds the average; every later point is smoothed with
// k = 2/(period+1). Returns nil if there are fewer points than the period.
func (s *EMAService) Calculate(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	k := 2.0 / float64(period+1)
	ema := make([]float64, len(values))
	ema[0] = values[0]

	for i := 1; i < len(values); i++ {
		ema[i] = values[i]*k + ema[i-1]*(1-k)
	}

	return ema
}

// CalculateOne smooths a single new value against the previous EMA.
func (s *EMAService) CalculateOne(value, prevEMA float64, period int) float64 {
	k := 2.0 / float64(period+1)
	return value*k + prevEMA*(1-k)
}
