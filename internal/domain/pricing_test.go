package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/booking-engine/pkg/money"
)

func TestComputePrice(t *testing.T) {
	t.Run("standard quote", func(t *testing.T) {
		// 1000 ₹/час, 4 часа, GST 18%, сбор 300 ₹
		result, err := ComputePrice(PricingInput{
			HourlyRate:         money.FromRupees(1000),
			DurationHours:      4,
			TaxRateBasisPoints: 1800,
			ServiceFee:         money.FromRupees(300),
		})
		require.NoError(t, err)

		assert.Equal(t, money.FromRupees(4000), result.Base)
		assert.Equal(t, money.FromRupees(720), result.Tax)
		assert.Equal(t, money.FromRupees(300), result.ServiceFee)
		assert.Equal(t, money.FromRupees(5020), result.Total)
	})

	t.Run("total is the exact sum of components", func(t *testing.T) {
		result, err := ComputePrice(PricingInput{
			HourlyRate:         money.Paise(123457), // 1234.57 ₹
			DurationHours:      7,
			TaxRateBasisPoints: 1800,
			ServiceFee:         money.FromRupees(300),
		})
		require.NoError(t, err)
		assert.Equal(t, result.Base+result.Tax+result.ServiceFee, result.Total)
	})

	t.Run("tax rounds half up", func(t *testing.T) {
		// 25 пайс * 10% = 2.5 пайсы -> 3
		result, err := ComputePrice(PricingInput{
			HourlyRate:         money.Paise(25),
			DurationHours:      1,
			TaxRateBasisPoints: 1000,
			ServiceFee:         0,
		})
		require.NoError(t, err)
		assert.Equal(t, money.Paise(3), result.Tax)
	})

	t.Run("zero tax rate and zero fee", func(t *testing.T) {
		result, err := ComputePrice(PricingInput{
			HourlyRate:         money.FromRupees(500),
			DurationHours:      2,
			TaxRateBasisPoints: 0,
			ServiceFee:         0,
		})
		require.NoError(t, err)
		assert.Equal(t, money.Paise(0), result.Tax)
		assert.Equal(t, result.Base, result.Total)
	})

	t.Run("monotonic in duration", func(t *testing.T) {
		in := PricingInput{
			HourlyRate:         money.FromRupees(750),
			TaxRateBasisPoints: 1800,
			ServiceFee:         money.FromRupees(300),
		}

		var prev money.Paise
		for hours := 1; hours <= 12; hours++ {
			in.DurationHours = hours
			result, err := ComputePrice(in)
			require.NoError(t, err)
			assert.Greater(t, result.Total, prev, "total must grow with duration (hours=%d)", hours)
			prev = result.Total
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			in   PricingInput
		}{
			{
				name: "zero hourly rate",
				in:   PricingInput{HourlyRate: 0, DurationHours: 4, TaxRateBasisPoints: 1800},
			},
			{
				name: "negative hourly rate",
				in:   PricingInput{HourlyRate: -100, DurationHours: 4, TaxRateBasisPoints: 1800},
			},
			{
				name: "zero duration",
				in:   PricingInput{HourlyRate: money.FromRupees(1000), DurationHours: 0, TaxRateBasisPoints: 1800},
			},
			{
				name: "negative duration",
				in:   PricingInput{HourlyRate: money.FromRupees(1000), DurationHours: -2, TaxRateBasisPoints: 1800},
			},
			{
				name: "negative tax rate",
				in:   PricingInput{HourlyRate: money.FromRupees(1000), DurationHours: 4, TaxRateBasisPoints: -1},
			},
			{
				name: "negative service fee",
				in:   PricingInput{HourlyRate: money.FromRupees(1000), DurationHours: 4, TaxRateBasisPoints: 1800, ServiceFee: -1},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ComputePrice(tt.in)
				assert.ErrorIs(t, err, ErrInvalidPricingInput)
			})
		}
	})
}
