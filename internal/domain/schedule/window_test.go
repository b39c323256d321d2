//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"museum-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySchedule_WindowAt(t *testing.T) {
	opening := time.Date(2024, 6, 5, 10, 0, 0, 0, time.Local)
	day := schedule.DaySchedule{
		Date: schedule.DateKey{Day: 5, Month: 6, Year: 2024},
		Windows: []schedule.CandidateWindow{
			{Instant: opening, Label: "10:00 AM"},
			{Instant: opening.Add(30 * time.Minute), Label: "10:30 AM"},
		},
	}

	t.Run("known label returns its window", func(t *testing.T) {
		w, ok := day.WindowAt("10:30 AM")
		require.True(t, ok)
		assert.Equal(t, opening.Add(30*time.Minute), w.Instant)
		assert.True(t, day.Contains("10:30 AM"))
	})

	t.Run("unknown label misses", func(t *testing.T) {
		_, ok := day.WindowAt("10:15 AM")
		assert.False(t, ok)
		assert.False(t, day.Contains("10:15 AM"))
	})

	t.Run("empty day matches nothing", func(t *testing.T) {
		empty := schedule.DaySchedule{Date: day.Date}
		assert.True(t, empty.IsEmpty())
		_, ok := empty.WindowAt("10:00 AM")
		assert.False(t, ok)
	})
}
