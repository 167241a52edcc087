package finance

import (
	"errors"
	"math"
	"time"
)

// maxProjectionMonths caps the amortization loop at 50 years to guard
// against runaway input.
const maxProjectionMonths = 600

// ErrNonAmortizing is returned when the monthly payment cannot cover the
// interest accruing on the balance, so the loan never resolves.
var ErrNonAmortizing = errors.New("monthly payment does not cover accruing interest")

// PayoffScenario is the outcome of simulating a fixed monthly payment.
// Capped means the simulation hit the month limit with balance remaining, so
// MonthsToPayoff and PayoffDate mark the horizon, not an actual payoff.
type PayoffScenario struct {
	MonthsToPayoff int       `json:"months_to_payoff"`
	TotalInterest  float64   `json:"total_interest"`
	PayoffDate     time.Time `json:"payoff_date"`
	Capped         bool      `json:"capped"`
}

// PayoffProjection compares the base EMI scenario against the same EMI plus
// an extra monthly amount
type PayoffProjection struct {
	Base          PayoffScenario  `json:"base"`
	WithExtra     *PayoffScenario `json:"with_extra,omitempty"`
	InterestSaved float64         `json:"interest_saved"`
	MonthsSaved   int             `json:"months_saved"`
}

// ProjectPayoff simulates month-by-month amortization of balance at
// annualRatePct under a fixed monthly payment, optionally with an extra
// amount per month. It returns ErrNonAmortizing when the base payment is
// swallowed by interest; the with-extra leg inherits the same check.
func ProjectPayoff(balance, annualRatePct, monthlyPayment, extraPayment float64, from time.Time) (*PayoffProjection, error) {
	base, err := simulatePayoff(balance, annualRatePct, monthlyPayment, from)
	if err != nil {
		return nil, err
	}

	proj := &PayoffProjection{Base: *base}
	if extraPayment > 0 {
		withExtra, err := simulatePayoff(balance, annualRatePct, monthlyPayment+extraPayment, from)
		if err != nil {
			return nil, err
		}
		proj.WithExtra = withExtra
		proj.InterestSaved = base.TotalInterest - withExtra.TotalInterest
		proj.MonthsSaved = base.MonthsToPayoff - withExtra.MonthsToPayoff
	}
	return proj, nil
}

func simulatePayoff(balance, annualRatePct, payment float64, from time.Time) (*PayoffScenario, error) {
	monthlyRate := annualRatePct / 12 / 100
	months := 0
	totalInterest := 0.0

	for balance > 0 && months < maxProjectionMonths {
		interest := balance * monthlyRate
		principal := math.Min(payment-interest, balance)
		if principal <= 0 {
			return nil, ErrNonAmortizing
		}
		totalInterest += interest
		balance -= principal
		months++
	}

	return &PayoffScenario{
		MonthsToPayoff: months,
		TotalInterest:  totalInterest,
		PayoffDate:     from.AddDate(0, months, 0),
		Capped:         balance > 0,
	}, nil
}
