package patterns

import (
	"testing"

	"IcebergScore/internal/services/indicators"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func upTrend() *indicators.TrendSummary {
	return &indicators.TrendSummary{Bias: indicators.TrendBiasUp}
}

// capitulationCloses builds the canonical setup: a long flat base, a 40-day
// rally to 160, a pause, then a 14-day crash back toward the rally's origin.
func capitulationCloses() []float64 {
	closes := make([]float64, 0, 200)
	for i := 0; i < 110; i++ {
		closes = append(closes, 100)
	}
	for i := 1; i <= 40; i++ {
		closes = append(closes, 100+float64(i)*1.5) // 101.5 .. 160
	}
	for i := 0; i < 36; i++ {
		closes = append(closes, 160)
	}
	for i := 1; i <= 14; i++ {
		closes = append(closes, 160-float64(i)*4.65) // down to ~94.9
	}
	return closes
}

func TestDipRecovery(t *testing.T) {
	d := NewDetector()

	t.Run("dip under SMA-50 holding SMA-10 in an uptrend", func(t *testing.T) {
		assert.True(t, d.DipRecovery(95, fp(90), fp(100), upTrend(), upTrend()))
	})

	t.Run("price above SMA-50 is not a dip", func(t *testing.T) {
		assert.False(t, d.DipRecovery(105, fp(90), fp(100), upTrend(), upTrend()))
	})

	t.Run("broken short trend disqualifies", func(t *testing.T) {
		down := &indicators.TrendSummary{Bias: indicators.TrendBiasDown}
		assert.False(t, d.DipRecovery(95, fp(90), fp(100), down, upTrend()))
	})

	t.Run("missing inputs never match", func(t *testing.T) {
		assert.False(t, d.DipRecovery(95, nil, fp(100), upTrend(), upTrend()))
	})
}

func TestPostShockRecovery(t *testing.T) {
	d := NewDetector()

	strongCloses := make([]float64, 160)
	for i := range strongCloses {
		strongCloses[i] = 100 + float64(i)
	}

	t.Run("deep drop on a previously strong chart with RSI alive", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 35}
		assert.True(t, d.PostShockRecovery(200, fp(-15), rsi, strongCloses))
	})

	t.Run("shallow drop does not qualify", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 35}
		assert.False(t, d.PostShockRecovery(250, fp(-5), rsi, strongCloses))
	})

	t.Run("free fall without stabilization does not qualify", func(t *testing.T) {
		closes := append(append([]float64{}, strongCloses...), 240, 220, 200, 180, 150)
		rsi := &indicators.RSISummary{Value: 10}
		// Price far below the 5-day low floor and RSI dead.
		assert.False(t, d.PostShockRecovery(100, fp(-40), rsi, closes))
	})

	t.Run("no history of strength does not qualify", func(t *testing.T) {
		weak := make([]float64, 160)
		for i := range weak {
			weak[i] = 200 - float64(i) // always under its own average
		}
		rsi := &indicators.RSISummary{Value: 35}
		assert.False(t, d.PostShockRecovery(40, fp(-40), rsi, weak))
	})
}

func TestCheapOnWinner(t *testing.T) {
	d := NewDetector()
	up := indicators.TrendBiasUp
	down := indicators.TrendBiasDown

	t.Run("uptrend pullback between the averages", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 45}
		assert.True(t, d.CheapOnWinner(98, fp(100), fp(95), &up, rsi))
	})

	t.Run("hot RSI disqualifies", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 55}
		assert.False(t, d.CheapOnWinner(98, fp(100), fp(95), &up, rsi))
	})

	t.Run("downtrend disqualifies", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 45}
		assert.False(t, d.CheapOnWinner(98, fp(100), fp(95), &down, rsi))
	})

	t.Run("under the long average disqualifies", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 45}
		assert.False(t, d.CheapOnWinner(90, fp(100), fp(95), &up, rsi))
	})
}

func TestProvenWinnerCapitulation(t *testing.T) {
	d := NewDetector()
	closes := capitulationCloses()
	price := closes[len(closes)-1]

	t.Run("full setup matches", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 15}
		assert.True(t, d.ProvenWinnerCapitulation(price, closes, rsi, fp(-35)))
	})

	t.Run("RSI not panicked enough", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 25}
		assert.False(t, d.ProvenWinnerCapitulation(price, closes, rsi, fp(-35)))
	})

	t.Run("drawdown too shallow", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 15}
		assert.False(t, d.ProvenWinnerCapitulation(price, closes, rsi, fp(-20)))
	})

	t.Run("no rally means no capitulation", func(t *testing.T) {
		flat := make([]float64, 200)
		for i := range flat {
			flat[i] = 100
		}
		rsi := &indicators.RSISummary{Value: 15}
		assert.False(t, d.ProvenWinnerCapitulation(100, flat, rsi, fp(-35)))
	})

	t.Run("price too far above the trough", func(t *testing.T) {
		rsi := &indicators.RSISummary{Value: 15}
		assert.False(t, d.ProvenWinnerCapitulation(130, closes, rsi, fp(-35)))
	})
}
