package pricing

import (
	"math"
	"testing"
)

func closeTo(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Fatalf("%s = %v, want %v (±%v)", name, got, want, tolerance)
	}
}

func TestFinancing_WithinLoanLimit(t *testing.T) {
	estimate := Financing(36000, DefaultMonthlyRate, DefaultTermMonths, DefaultMaxLoan)

	nearlyEqual(t, "upfront", estimate.UpfrontPayment, 0)
	// Annuity on 36000 at 0.5% over 36 months.
	pow := math.Pow(1+DefaultMonthlyRate, float64(DefaultTermMonths))
	want := 36000 * (DefaultMonthlyRate * pow) / (pow - 1)
	nearlyEqual(t, "monthly", estimate.MonthlyPayment, want)
}

func TestFinancing_AboveLoanLimit(t *testing.T) {
	estimate := Financing(60000, DefaultMonthlyRate, DefaultTermMonths, DefaultMaxLoan)

	nearlyEqual(t, "upfront", estimate.UpfrontPayment, 10000)
	// Only the max loan is amortized; the 36-month annuity on 50000 at
	// 0.5% per month lands just above 1521.
	closeTo(t, "monthly", estimate.MonthlyPayment, 1521.11, 0.05)
}

func TestFinancing_ZeroRate(t *testing.T) {
	estimate := Financing(36000, 0, 36, DefaultMaxLoan)

	nearlyEqual(t, "upfront", estimate.UpfrontPayment, 0)
	nearlyEqual(t, "monthly", estimate.MonthlyPayment, 1000)
}

func TestFinancing_DegenerateInputs(t *testing.T) {
	zeroTotal := Financing(0, DefaultMonthlyRate, DefaultTermMonths, DefaultMaxLoan)
	nearlyEqual(t, "zero total monthly", zeroTotal.MonthlyPayment, 0)
	nearlyEqual(t, "zero total upfront", zeroTotal.UpfrontPayment, 0)

	zeroTerm := Financing(36000, DefaultMonthlyRate, 0, DefaultMaxLoan)
	nearlyEqual(t, "zero term monthly", zeroTerm.MonthlyPayment, 0)
	nearlyEqual(t, "zero term upfront", zeroTerm.UpfrontPayment, 0)

	negativeTotal := Financing(-500, DefaultMonthlyRate, DefaultTermMonths, DefaultMaxLoan)
	nearlyEqual(t, "negative total monthly", negativeTotal.MonthlyPayment, 0)
	nearlyEqual(t, "negative total upfront", negativeTotal.UpfrontPayment, 0)
}
