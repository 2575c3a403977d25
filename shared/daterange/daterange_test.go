package daterange_test

import (
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, checkIn, checkOut string) daterange.Range {
	t.Helper()

	r, err := daterange.Parse(checkIn, checkOut)
	require.NoError(t, err)

	return r
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  error
		wantCode int
	}{
		{name: "valid range", checkIn: "2025-01-10", checkOut: "2025-01-12"},
		{name: "same day", checkIn: "2025-01-10", checkOut: "2025-01-10", wantErr: failure.ErrInvalidDateRange, wantCode: http.StatusBadRequest},
		{name: "reversed", checkIn: "2025-01-12", checkOut: "2025-01-10", wantErr: failure.ErrInvalidDateRange, wantCode: http.StatusBadRequest},
		{name: "bad check in", checkIn: "10/01/2025", checkOut: "2025-01-12", wantCode: http.StatusBadRequest},
		{name: "bad check out", checkIn: "2025-01-10", checkOut: "tomorrow", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := daterange.Parse(tt.checkIn, tt.checkOut)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.checkIn, r.CheckInString())
			assert.Equal(t, tt.checkOut, r.CheckOutString())
		})
	}
}

func TestNew_TruncatesToDay(t *testing.T) {
	r, err := daterange.New(
		time.Date(2025, 5, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 3, 11, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.Equal(t, 2, r.Nights())
	assert.Equal(t, "2025-05-01/2025-05-03", r.String())
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
	}{
		{name: "one night", checkIn: "2025-01-10", checkOut: "2025-01-11", expected: 1},
		{name: "two nights", checkIn: "2025-01-10", checkOut: "2025-01-12", expected: 2},
		{name: "across month end", checkIn: "2025-01-30", checkOut: "2025-02-02", expected: 3},
		{name: "across leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustParse(t, tt.checkIn, tt.checkOut).Nights())
		})
	}
}

func TestNights_ZeroRange(t *testing.T) {
	assert.Equal(t, 0, daterange.Range{}.Nights())
}

func TestOverlaps(t *testing.T) {
	base := mustParse(t, "2025-01-10", "2025-01-12")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected bool
	}{
		{name: "identical", checkIn: "2025-01-10", checkOut: "2025-01-12", expected: true},
		{name: "starts inside", checkIn: "2025-01-11", checkOut: "2025-01-14", expected: true},
		{name: "ends inside", checkIn: "2025-01-08", checkOut: "2025-01-11", expected: true},
		{name: "covers", checkIn: "2025-01-01", checkOut: "2025-01-20", expected: true},
		{name: "back to back after", checkIn: "2025-01-12", checkOut: "2025-01-14", expected: false},
		{name: "back to back before", checkIn: "2025-01-08", checkOut: "2025-01-10", expected: false},
		{name: "disjoint", checkIn: "2025-02-01", checkOut: "2025-02-03", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustParse(t, tt.checkIn, tt.checkOut)

			assert.Equal(t, tt.expected, base.Overlaps(other))
			assert.Equal(t, tt.expected, other.Overlaps(base))
		})
	}
}

func TestDays(t *testing.T) {
	days := mustParse(t, "2025-03-30", "2025-04-02").Days()

	require.Len(t, days, 3)
	assert.Equal(t, "2025-03-30", days[0].CheckInString())
	assert.Equal(t, "2025-03-31", days[0].CheckOutString())
	assert.Equal(t, "2025-04-01", days[2].CheckInString())
	assert.Equal(t, "2025-04-02", days[2].CheckOutString())
}
