package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleInterest(t *testing.T) {
	// B*R*D/36500
	assert.InDelta(t, 986.30, SimpleInterest(100000, 12, 30), 0.01)
	assert.Equal(t, 0.0, SimpleInterest(0, 12, 30))
	assert.Equal(t, 0.0, SimpleInterest(100000, 0, 30))
	assert.Equal(t, 0.0, SimpleInterest(100000, 12, 0))
	assert.InDelta(t, 100000*0.1, SimpleInterest(100000, 10, 365), 0.0001)
}

func TestEMI(t *testing.T) {
	// Zero rate degrades to straight division
	assert.InDelta(t, 1000.0, EMI(12000, 0, 12), 0.0001)

	// 12% over 12 months on 100k: standard amortization result
	emi := EMI(100000, 12, 12)
	assert.InDelta(t, 8884.88, emi, 0.01)

	// EMI must exceed the zero-rate installment whenever rate > 0
	assert.Greater(t, emi, 100000.0/12)
}

func TestEffortPoints(t *testing.T) {
	// Gym is always exactly 1, whatever the hours
	assert.Equal(t, 1.0, EffortPoints("Gym", 0))
	assert.Equal(t, 1.0, EffortPoints("Gym", 0.5))
	assert.Equal(t, 1.0, EffortPoints("Gym", 3))

	// Everything else maps hours 1:1
	assert.Equal(t, 2.5, EffortPoints("Thesis Work", 2.5))
	assert.Equal(t, 0.0, EffortPoints("Apply Jobs", 0))
	assert.Equal(t, 8.0, EffortPoints("CEO work", 8))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30.0, DaysBetween(a, b))
	assert.Equal(t, 30.0, DaysBetween(b, a)) // symmetric
	assert.Equal(t, 0.0, DaysBetween(a, a))

	// Partial days round up
	c := a.Add(36 * time.Hour)
	assert.Equal(t, 2.0, DaysBetween(a, c))
}

func TestBreakdownPayment(t *testing.T) {
	// Worked example: 100k balance, 12% annual, 30 days elapsed, 10k paid
	bd := BreakdownPayment(100000, 12, 30, 10000)
	assert.InDelta(t, 986.30, bd.InterestAccrued, 0.01)
	assert.InDelta(t, 9013.70, bd.PrincipalPaid, 0.01)
	assert.InDelta(t, 90986.30, bd.NewBalance, 0.01)

	// Re-deriving interest for day 0 on the new balance yields zero
	next := BreakdownPayment(bd.NewBalance, 12, 0, 0)
	assert.Equal(t, 0.0, next.InterestAccrued)

	// Payment below accrued interest: principal floors at zero, balance grows
	small := BreakdownPayment(100000, 12, 30, 500)
	assert.Equal(t, 0.0, small.PrincipalPaid)
	assert.Greater(t, small.NewBalance, 100000.0)

	// Overpayment floors the balance at zero
	over := BreakdownPayment(1000, 12, 0, 5000)
	assert.Equal(t, 0.0, over.NewBalance)
}
