package indicators

// LevelService detects support and resistance from confirmed local extrema.
type LevelService struct{}

func NewLevelService() *LevelService {
	return &LevelService{}
}

type pivot struct {
	index int
	value float64
	high  bool
}

// Calculate scans for local minima/maxima over a centered window of width
// 2*window+1. Support is the most recent confirmed low below the current
// price, resistance the most recent confirmed high above it. A breakout is
// flagged when the most recent confirmed high sits below price and price
// was still at or under that level five sessions ago.
func (s *LevelService) Calculate(closes []float64, window int) *LevelSummary {
	if window <= 0 || len(closes) < 2*window+1 {
		return nil
	}

	price := closes[len(closes)-1]

	var pivots []pivot
	for i := window; i < len(closes)-window; i++ {
		isLow, isHigh := true, true
		for j := i - window; j <= i+window; j++ {
			if j == i {
				continue
			}
			if closes[j] < closes[i] {
				isLow = false
			}
			if closes[j] > closes[i] {
				isHigh = false
			}
		}
		if isLow && !isHigh {
			pivots = append(pivots, pivot{index: i, value: closes[i], high: false})
		} else if isHigh && !isLow {
			pivots = append(pivots, pivot{index: i, value: closes[i], high: true})
		}
	}

	summary := &LevelSummary{}
	for i := len(pivots) - 1; i >= 0; i-- {
		p := pivots[i]
		if summary.Support == nil && !p.high && p.value < price {
			v := p.value
			summary.Support = &v
		}
		if summary.Resistance == nil && p.high && p.value > price {
			v := p.value
			summary.Resistance = &v
		}
		if summary.Support != nil && summary.Resistance != nil {
			break
		}
	}

	// Fresh breakout: price cleared the last confirmed high within ~a week.
	if len(closes) > 5 {
		for i := len(pivots) - 1; i >= 0; i-- {
			p := pivots[i]
			if !p.high {
				continue
			}
			if p.value < price && closes[len(closes)-6] <= p.value {
				summary.RecentBreakout = true
			}
			break
		}
	}

	return summary
}
