package indicators

// RecoveryService counts confirmed dip-and-recover cycles, the engine's
// resilience measure.
type RecoveryService struct {
	trend *TrendService
}

func NewRecoveryService() *RecoveryService {
	return &RecoveryService{
		trend: NewTrendService(),
	}
}

// Count walks the trailing lookback window day by day, recomputing SMA-50
// and SMA-10 over the prefix at each step. A close below SMA-50 enters a
// dip; a later close back above SMA-50 while also above SMA-10 confirms a
// recovery and exits the dip. Deliberately quadratic; the windows are small.
func (s *RecoveryService) Count(closes []float64, lookbackDays int) int {
	if len(closes) < 50 {
		return 0
	}

	start := len(closes) - lookbackDays
	if start < 50 {
		start = 50
	}

	count := 0
	inDip := false
	for i := start; i < len(closes); i++ {
		prefix := closes[:i+1]
		sma50, ok := s.trend.SMA(prefix, 50)
		if !ok {
			continue
		}
		sma10, ok := s.trend.SMA(prefix, 10)
		if !ok {
			continue
		}

		price := closes[i]
		if !inDip {
			if price < sma50 {
				inDip = true
			}
		} else if price > sma50 && price > sma10 {
			count++
			inDip = false
		}
	}

	return count
}
