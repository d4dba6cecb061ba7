package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceFromHigh(t *testing.T) {
	svc := NewMomentumService()

	t.Run("measures against the prior window high", func(t *testing.T) {
		// Window is {100, 110, 90}; the current bar 95 is excluded.
		got, ok := svc.DistanceFromHigh([]float64{100, 110, 90, 95}, 3)
		require.True(t, ok)
		assert.InDelta(t, -13.636, got, 0.001)
	})

	t.Run("new high reads positive", func(t *testing.T) {
		got, ok := svc.DistanceFromHigh([]float64{100, 101, 102, 110}, 3)
		require.True(t, ok)
		assert.Greater(t, got, 0.0)
	})

	t.Run("needs period+1 points", func(t *testing.T) {
		_, ok := svc.DistanceFromHigh([]float64{100, 110, 95}, 3)
		assert.False(t, ok)
	})
}

func TestGrowthRate(t *testing.T) {
	svc := NewMomentumService()

	closes := make([]float64, 10)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	got, ok := svc.GrowthRate(closes, 10)
	require.True(t, ok)
	assert.InDelta(t, 9.0, got, 1e-9)

	_, ok = svc.GrowthRate(closes, 11)
	assert.False(t, ok)
}

func TestRallyMagnitude(t *testing.T) {
	svc := NewMomentumService()

	t.Run("finds the biggest trough to later peak", func(t *testing.T) {
		got, ok := svc.RallyMagnitude([]float64{100, 80, 120, 90}, 90)
		require.True(t, ok)
		assert.InDelta(t, 50.0, got, 1e-9)
	})

	t.Run("monotonic decline has no rally", func(t *testing.T) {
		got, ok := svc.RallyMagnitude([]float64{100, 90, 80, 70}, 90)
		require.True(t, ok)
		assert.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("too few points", func(t *testing.T) {
		_, ok := svc.RallyMagnitude([]float64{100}, 90)
		assert.False(t, ok)
	})
}

func TestReturnToHighsFrequency(t *testing.T) {
	svc := NewMomentumService()

	t.Run("a steady climber lives at its highs", func(t *testing.T) {
		closes := make([]float64, 40)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}

		got, ok := svc.ReturnToHighsFrequency(closes, 40)
		require.True(t, ok)
		assert.InDelta(t, 100.0, got, 1e-9)
	})

	t.Run("a collapsed chart never revisits them", func(t *testing.T) {
		closes := make([]float64, 60)
		for i := range closes {
			closes[i] = 200 - float64(i)*2 // ends far below every trailing high
		}

		got, ok := svc.ReturnToHighsFrequency(closes, 30)
		require.True(t, ok)
		assert.Less(t, got, 50.0)
	})

	t.Run("needs the warmup window", func(t *testing.T) {
		_, ok := svc.ReturnToHighsFrequency(make([]float64, 20), 10)
		assert.False(t, ok)
	})
}

func TestTrendSlope(t *testing.T) {
	svc := NewMomentumService()

	t.Run("annualizes a unit slope", func(t *testing.T) {
		closes := make([]float64, 100)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}

		// slope 1/day, mean 149.5: 1 * 252 / 149.5 * 100
		got, ok := svc.TrendSlope(closes, 100)
		require.True(t, ok)
		assert.InDelta(t, 168.56, got, 0.1)
	})

	t.Run("flat series has zero slope", func(t *testing.T) {
		closes := make([]float64, 100)
		for i := range closes {
			closes[i] = 100
		}

		got, ok := svc.TrendSlope(closes, 100)
		require.True(t, ok)
		assert.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("too few points", func(t *testing.T) {
		_, ok := svc.TrendSlope([]float64{1, 2, 3}, 100)
		assert.False(t, ok)
	})
}

func TestBeta(t *testing.T) {
	svc := NewMomentumService()

	t.Run("doubled returns give beta 2", func(t *testing.T) {
		pattern := []float64{0.01, -0.02, 0.015, 0.005, -0.01}
		market := []float64{100}
		stock := []float64{100}
		for i := 0; len(market) < 250; i++ {
			r := pattern[i%len(pattern)]
			market = append(market, market[len(market)-1]*(1+r))
			stock = append(stock, stock[len(stock)-1]*(1+2*r))
		}

		got, ok := svc.Beta(stock, market, 240)
		require.True(t, ok)
		assert.InDelta(t, 2.0, got, 0.001)
	})

	t.Run("insufficient overlap", func(t *testing.T) {
		stock := make([]float64, 100)
		market := make([]float64, 300)
		for i := range stock {
			stock[i] = 100 + float64(i)
		}
		for i := range market {
			market[i] = 100 + float64(i)
		}

		_, ok := svc.Beta(stock, market, 240)
		assert.False(t, ok)
	})
}
