package indicators

import "math"

type MACDService struct {
	ema *EMAService
}

func NewMACDService() *MACDService {
	return &MACDService{
		ema: NewEMAService(),
	}
}

// Calculate computes MACD(12,26,9) over the close series.
// Returns nil with fewer than 26 points.
func (s *MACDService) Calculate(closes []float64) *MACDSummary {
	if len(closes) < 26 {
		return nil
	}

	fastEMA := s.ema.Calculate(closes, 12)
	slowEMA := s.ema.Calculate(closes, 26)
	if fastEMA == nil || slowEMA == nil {
		return nil
	}

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	signal := s.ema.Calculate(macdLine, 9)
	if signal == nil {
		return nil
	}

	macdVal := macdLine[len(macdLine)-1]
	signalVal := signal[len(signal)-1]
	hist := macdVal - signalVal

	bias := MACDBiasNeutral
	if math.Abs(hist) >= 0.01 {
		if hist > 0 {
			bias = MACDBiasBull
		} else {
			bias = MACDBiasBear
		}
	}

	return &MACDSummary{
		MACD:   macdVal,
		Signal: signalVal,
		Hist:   hist,
		Bias:   bias,
	}
}
