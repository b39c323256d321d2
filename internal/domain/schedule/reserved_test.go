//go:build unit

package schedule_test

import (
	"testing"

	"museum-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestReservedWindows(t *testing.T) {
	key := schedule.DateKey{Day: 5, Month: 6, Year: 2024}
	other := schedule.DateKey{Day: 6, Month: 6, Year: 2024}

	reserved := schedule.NewReservedWindows()
	reserved.Add(key, "10:00 AM")
	reserved.Add(key, "10:00 AM") // duplicates collapse
	reserved.Add(key, "04:30 PM")

	assert.True(t, reserved.IsReserved(key, "10:00 AM"))
	assert.True(t, reserved.IsReserved(key, "04:30 PM"))
	assert.False(t, reserved.IsReserved(key, "10:30 AM"))
	assert.False(t, reserved.IsReserved(other, "10:00 AM"), "absent day means no reservations")
	assert.Equal(t, 2, reserved.CountOn(key))
	assert.Equal(t, 0, reserved.CountOn(other))
}

func TestReservedWindows_IgnoresInvalidEntries(t *testing.T) {
	reserved := schedule.NewReservedWindows()
	reserved.Add(schedule.DateKey{}, "10:00 AM")
	reserved.Add(schedule.DateKey{Day: 5, Month: 6, Year: 2024}, "")

	assert.Equal(t, 0, reserved.CountOn(schedule.DateKey{}))
	assert.Equal(t, 0, reserved.CountOn(schedule.DateKey{Day: 5, Month: 6, Year: 2024}))
}

func TestReservedWindows_NilSafe(t *testing.T) {
	var reserved schedule.ReservedWindows
	assert.False(t, reserved.IsReserved(schedule.DateKey{Day: 5, Month: 6, Year: 2024}, "10:00 AM"))
}
