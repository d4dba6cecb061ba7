package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSICalculate(t *testing.T) {
	svc := NewRSIService()

	t.Run("monotonic gains pin RSI at 100", func(t *testing.T) {
		closes := make([]float64, 20)
		for i := range closes {
			closes[i] = 100 + float64(i) // 100..119
		}

		summary := svc.Calculate(closes, 14)
		require.NotNil(t, summary)
		assert.InDelta(t, 100.0, summary.Value, 1e-9)
		assert.GreaterOrEqual(t, summary.Value, 70.0)
		assert.Equal(t, RSIBiasOverbought, summary.Bias)
	})

	t.Run("monotonic losses pin RSI at 0", func(t *testing.T) {
		closes := make([]float64, 20)
		for i := range closes {
			closes[i] = 119 - float64(i) // 119..100
		}

		summary := svc.Calculate(closes, 14)
		require.NotNil(t, summary)
		assert.InDelta(t, 0.0, summary.Value, 1e-9)
		assert.LessOrEqual(t, summary.Value, 30.0)
		assert.Equal(t, RSIBiasOversold, summary.Bias)
	})

	t.Run("balanced chop sits mid-band", func(t *testing.T) {
		closes := make([]float64, 0, 21)
		v := 100.0
		for i := 0; i < 21; i++ {
			closes = append(closes, v)
			if i%2 == 0 {
				v += 1
			} else {
				v -= 1
			}
		}

		summary := svc.Calculate(closes, 14)
		require.NotNil(t, summary)
		assert.InDelta(t, 50.0, summary.Value, 5.0)
		assert.Equal(t, RSIBiasNeutral, summary.Bias)
	})

	t.Run("needs period+1 points", func(t *testing.T) {
		closes := make([]float64, 14)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		assert.Nil(t, svc.Calculate(closes, 14))
	})
}
