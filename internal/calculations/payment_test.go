package calculations

import (
	"math"
	"testing"

	"github.com/sammo1235/mortgage-overpayment-calculator/pkg/utils"
)

func TestMinimumPayment(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		periodicRate float64
		n            int
		want         float64
	}{
		{
			name:         "short loan at 2% a period",
			principal:    10000,
			periodicRate: 0.02,
			n:            5,
			want:         2121.58,
		},
		{
			name:         "35 year mortgage at 2%",
			principal:    100000,
			periodicRate: 0.02 / 12,
			n:            420,
			want:         331.26,
		},
		{
			name:         "30 year mortgage at 4%",
			principal:    300000,
			periodicRate: 0.04 / 12,
			n:            360,
			want:         1432.25,
		},
		{
			name:         "zero rate splits principal evenly",
			principal:    100000,
			periodicRate: 0,
			n:            10,
			want:         10000,
		},
		{
			name:         "single period repays principal plus one period of interest",
			principal:    1000,
			periodicRate: 0.01,
			n:            1,
			want:         1010,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimumPayment(tt.principal, tt.periodicRate, tt.n)
			if utils.Round2(got) != tt.want {
				t.Errorf("MinimumPayment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinimumPaymentApproachesZeroRateLimit(t *testing.T) {
	exact := MinimumPayment(120000, 0, 240)
	near := MinimumPayment(120000, 1e-9, 240)

	if math.Abs(exact-near) > 1e-3 {
		t.Errorf("payment at tiny rate %v too far from zero-rate payment %v", near, exact)
	}
	if !utils.IsFinite(exact) {
		t.Error("zero-rate payment should be finite")
	}
}
