//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"museum-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey_String(t *testing.T) {
	// Wire format has no zero-padding and a 1-based month.
	key := schedule.NewDateKey(time.Date(2024, 6, 5, 15, 4, 5, 0, time.Local))
	assert.Equal(t, "5_6_2024", key.String())

	key = schedule.NewDateKey(time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "31_12_2024", key.String())
}

func TestParseDateKey(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    schedule.DateKey
		wantErr bool
	}{
		{name: "valid", input: "5_6_2024", want: schedule.DateKey{Day: 5, Month: 6, Year: 2024}},
		{name: "valid end of year", input: "31_12_2024", want: schedule.DateKey{Day: 31, Month: 12, Year: 2024}},
		{name: "too few parts", input: "5_6", wantErr: true},
		{name: "too many parts", input: "5_6_2024_1", wantErr: true},
		{name: "non numeric", input: "five_6_2024", wantErr: true},
		{name: "day out of range", input: "32_6_2024", wantErr: true},
		{name: "month out of range", input: "5_13_2024", wantErr: true},
		{name: "zero day", input: "0_6_2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := schedule.ParseDateKey(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidDateKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, key)
		})
	}
}

func TestDateKey_RoundTrip(t *testing.T) {
	key := schedule.DateKey{Day: 7, Month: 1, Year: 2025}
	parsed, err := schedule.ParseDateKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}
