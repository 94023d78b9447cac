package vitals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/trackkit/pkg/vitals"
)

func TestRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  vitals.Rating
	}{
		{vitals.LCP, 1200, vitals.RatingGood},
		{vitals.LCP, 2500, vitals.RatingGood},
		{vitals.LCP, 3000, vitals.RatingNeedsImprovement},
		{vitals.LCP, 4500, vitals.RatingPoor},
		{vitals.CLS, 0.05, vitals.RatingGood},
		{vitals.CLS, 0.2, vitals.RatingNeedsImprovement},
		{vitals.CLS, 0.3, vitals.RatingPoor},
		{vitals.INP, 150, vitals.RatingGood},
		{vitals.INP, 600, vitals.RatingPoor},
		{vitals.TTFB, 500, vitals.RatingGood},
		{vitals.FID, 250, vitals.RatingNeedsImprovement},
		{vitals.FCP, 3200, vitals.RatingPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, vitals.Rate(tt.name, tt.value))
		})
	}

	t.Run("unknown metric rates empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, vitals.Rate("BOGUS", 100))
	})
}
