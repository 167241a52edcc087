package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectPayoffBase(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	proj, err := ProjectPayoff(100000, 12, 10000, 0, from)
	require.NoError(t, err)

	// 100k at 1%/month under 10k/month clears in 11 months
	assert.Equal(t, 11, proj.Base.MonthsToPayoff)
	assert.Greater(t, proj.Base.TotalInterest, 0.0)
	assert.Less(t, proj.Base.TotalInterest, 100000.0)
	assert.Equal(t, from.AddDate(0, 11, 0), proj.Base.PayoffDate)
	assert.Nil(t, proj.WithExtra)
}

func TestProjectPayoffWithExtra(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	proj, err := ProjectPayoff(100000, 12, 10000, 5000, from)
	require.NoError(t, err)
	require.NotNil(t, proj.WithExtra)

	assert.Less(t, proj.WithExtra.MonthsToPayoff, proj.Base.MonthsToPayoff)
	assert.Less(t, proj.WithExtra.TotalInterest, proj.Base.TotalInterest)
	assert.InDelta(t, proj.Base.TotalInterest-proj.WithExtra.TotalInterest, proj.InterestSaved, 0.0001)
	assert.Equal(t, proj.Base.MonthsToPayoff-proj.WithExtra.MonthsToPayoff, proj.MonthsSaved)
}

func TestProjectPayoffNonAmortizing(t *testing.T) {
	from := time.Now()

	// Monthly interest on 100k at 12% is 1000; a 900 payment never resolves
	_, err := ProjectPayoff(100000, 12, 900, 0, from)
	assert.ErrorIs(t, err, ErrNonAmortizing)

	// Payment exactly equal to interest is also terminal
	_, err = ProjectPayoff(100000, 12, 1000, 0, from)
	assert.ErrorIs(t, err, ErrNonAmortizing)
}

func TestProjectPayoffZeroRate(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	proj, err := ProjectPayoff(12000, 0, 1000, 0, from)
	require.NoError(t, err)
	assert.Equal(t, 12, proj.Base.MonthsToPayoff)
	assert.Equal(t, 0.0, proj.Base.TotalInterest)
}

func TestProjectPayoffCapsAtFiftyYears(t *testing.T) {
	// Barely amortizing: principal shrinks a hair each month, so the loop
	// runs into the cap instead of spinning forever.
	proj, err := ProjectPayoff(100000, 12, 1000.01, 0, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 600, proj.Base.MonthsToPayoff)
	assert.True(t, proj.Base.Capped)

	// a loan that actually clears is not flagged
	proj, err = ProjectPayoff(100000, 12, 10000, 0, time.Now())
	require.NoError(t, err)
	assert.False(t, proj.Base.Capped)
}
