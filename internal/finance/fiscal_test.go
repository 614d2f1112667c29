package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialYearOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"march 31 closes the year", time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC), "2024-2025"},
		{"april 1 opens the next", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{"mid year", time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"january belongs to previous april", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), "2024-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinancialYearOf(tt.date))
		})
	}
}

func TestParseFinancialYear(t *testing.T) {
	start, err := ParseFinancialYear("2024-2025")
	require.NoError(t, err)
	assert.Equal(t, 2024, start)

	_, err = ParseFinancialYear("2024-2026")
	assert.Error(t, err)

	_, err = ParseFinancialYear("24-25")
	assert.Error(t, err)

	_, err = ParseFinancialYear("garbage")
	assert.Error(t, err)
}

func TestFinancialYearBounds(t *testing.T) {
	from, to, err := FinancialYearBounds("2024-2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), to)
}
