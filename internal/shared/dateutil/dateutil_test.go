package dateutil_test

import (
	"testing"
	"time"

	"sharda-hr/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
)

func TestMonthBounds(t *testing.T) {
	m, err := dateutil.ParseMonth("2024-02")
	assert.NoError(t, err)
	assert.Equal(t, 29, m.Days())
	assert.Equal(t, "2024-02-29", m.End().Format(dateutil.DateLayout))
	assert.Equal(t, "2024-02", m.String())
	assert.True(t, m.Contains(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	_, err = dateutil.ParseMonth("2024-13")
	assert.ErrorIs(t, err, dateutil.ErrInvalidMonth)

	_, err = dateutil.NewMonth(2024, 0)
	assert.ErrorIs(t, err, dateutil.ErrInvalidMonth)
}

func TestDayCounting(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) // Sunday
	end := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, dateutil.DaysInclusive(start, end))
	assert.Equal(t, 6, dateutil.CountWeekdays(start, end))
	assert.Equal(t, 1, dateutil.DaysInclusive(start, start))
}
