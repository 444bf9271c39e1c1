package calculations

import "math"

// MinimumPayment returns the level periodic payment that amortizes principal over
// n periods at periodicRate:
//
//	payment = principal * r(1+r)^n / ((1+r)^n - 1)
//
// A zero rate has no interest to amortize, so the principal is split evenly.
func MinimumPayment(principal, periodicRate float64, n int) float64 {
	if periodicRate == 0 {
		return principal / float64(n)
	}

	growth := math.Pow(1.0+periodicRate, float64(n))
	top := periodicRate * growth
	bottom := growth - 1.0

	return principal * (top / bottom)
}
