// Package finance holds the pure domain formulas: interest accrual, EMI
// amortization, effort scoring and currency formatting. Nothing in here
// touches the database or the clock.
package finance

import (
	"math"
	"time"
)

// SimpleInterest returns the simple interest accrued on balance at an annual
// percentage rate over the given number of days (365-day year).
func SimpleInterest(balance, annualRatePct float64, days float64) float64 {
	return balance * (annualRatePct / 100) * days / 365
}

// EMI returns the equated monthly installment for a loan. A zero rate
// degrades to straight principal division.
func EMI(principal, annualRatePct float64, months int) float64 {
	monthlyRate := annualRatePct / 12 / 100
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * factor / (factor - 1)
}

// GymCategory is the one category scored at a flat rate
const GymCategory = "Gym"

// EffortPoints scores a time entry. Gym sessions are always worth exactly 1
// regardless of duration; every other category scores hours 1:1.
func EffortPoints(category string, hours float64) float64 {
	if category == GymCategory {
		return 1
	}
	return hours
}

// DaysBetween returns the number of days between two instants, rounding any
// partial day up.
func DaysBetween(a, b time.Time) float64 {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}
	return math.Ceil(diff.Hours() / 24)
}

// PaymentBreakdown is the derived ledger state for one posted payment
type PaymentBreakdown struct {
	InterestAccrued float64
	PrincipalPaid   float64
	NewBalance      float64
}

// BreakdownPayment derives the ledger fields for a payment of amountPaid
// against balance with interest accrued over elapsedDays at annualRatePct.
// Principal paid and the new balance are both floored at zero.
func BreakdownPayment(balance, annualRatePct, elapsedDays, amountPaid float64) PaymentBreakdown {
	interest := SimpleInterest(balance, annualRatePct, elapsedDays)
	return PaymentBreakdown{
		InterestAccrued: interest,
		PrincipalPaid:   math.Max(0, amountPaid-interest),
		NewBalance:      math.Max(0, balance+interest-amountPaid),
	}
}
