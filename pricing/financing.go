package pricing

import "math"

// Financing defaults reflecting the dealer's standing offer; callers usually
// override them from configuration.
const (
	DefaultMonthlyRate = 0.005
	DefaultTermMonths  = 36
	DefaultMaxLoan     = 50000
)

// Estimate is the installment split for a total price: the amortized monthly
// payment on the financeable part and whatever must be paid upfront because
// it exceeds the maximum loan.
type Estimate struct {
	MonthlyPayment float64
	UpfrontPayment float64
}

// Financing computes the annuity payment for the financed amount,
// min(total, maxLoan), over termMonths at monthlyRate. The remainder above
// maxLoan is due upfront. A zero rate degrades to a straight-line split; a
// non-positive financed amount or term yields a zero payment.
func Financing(total, monthlyRate float64, termMonths int, maxLoan float64) Estimate {
	financed := math.Min(total, maxLoan)
	upfront := math.Max(0, total-maxLoan)

	if financed <= 0 || termMonths <= 0 {
		return Estimate{MonthlyPayment: 0, UpfrontPayment: upfront}
	}

	if monthlyRate == 0 {
		return Estimate{
			MonthlyPayment: financed / float64(termMonths),
			UpfrontPayment: upfront,
		}
	}

	// Annuity formula: P = L * r(1+r)^n / ((1+r)^n - 1)
	pow := math.Pow(1+monthlyRate, float64(termMonths))
	payment := financed * (monthlyRate * pow) / (pow - 1)

	return Estimate{MonthlyPayment: payment, UpfrontPayment: upfront}
}
