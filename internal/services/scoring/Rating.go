package scoring

import "strings"

// RatingLabel maps a normalized score to its categorical tier. Trade
// scores use the lower, more aggressive cutoffs (entry timing); Investment
// scores use the more selective set.
//
// Trade:      75 STRONG BUY / 65 BUY / 55 OUTPERFORM / 45 HOLD / 30 UNDERPERFORM / SELL
// Investment: 80 STRONG BUY / 70 BUY / 60 OUTPERFORM / 45 HOLD / 30 UNDERPERFORM / SELL
func RatingLabel(score int, isTradeScore bool) string {
	if isTradeScore {
		switch {
		case score >= 75:
			return "STRONG BUY"
		case score >= 65:
			return "BUY"
		case score >= 55:
			return "OUTPERFORM"
		case score >= 45:
			return "HOLD"
		case score >= 30:
			return "UNDERPERFORM"
		default:
			return "SELL"
		}
	}

	switch {
	case score >= 80:
		return "STRONG BUY"
	case score >= 70:
		return "BUY"
	case score >= 60:
		return "OUTPERFORM"
	case score >= 45:
		return "HOLD"
	case score >= 30:
		return "UNDERPERFORM"
	default:
		return "SELL"
	}
}

// RatingColor maps a score to a six-step ramp, monotonic with the score.
func RatingColor(score int) string {
	switch {
	case score >= 80:
		return "#00ff00"
	case score >= 70:
		return "#88ff00"
	case score >= 60:
		return "#ccff00"
	case score >= 45:
		return "#888888"
	case score >= 30:
		return "#ffaa00"
	default:
		return "#ff0000"
	}
}

// ScoreBar renders an ASCII bar for console display.
func ScoreBar(score, width int) string {
	if width <= 0 {
		return ""
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
