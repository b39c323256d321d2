package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDateKey = errors.New("invalid date key")

// DateKey identifies a calendar day in the exhibit's local time zone.
// It is used directly as a map key so day identity never depends on
// string formatting. The legacy wire format "day_month_year" (no
// zero-padding, month 1-based) is kept for the reservation records and
// the submission payload.
type DateKey struct {
	Day   int
	Month int
	Year  int
}

func NewDateKey(t time.Time) DateKey {
	return DateKey{
		Day:   t.Day(),
		Month: int(t.Month()),
		Year:  t.Year(),
	}
}

func (k DateKey) String() string {
	return fmt.Sprintf("%d_%d_%d", k.Day, k.Month, k.Year)
}

func (k DateKey) IsZero() bool {
	return k == DateKey{}
}

func ParseDateKey(s string) (DateKey, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return DateKey{}, ErrInvalidDateKey
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return DateKey{}, ErrInvalidDateKey
		}
		nums[i] = n
	}

	key := DateKey{Day: nums[0], Month: nums[1], Year: nums[2]}
	if key.Day < 1 || key.Day > 31 || key.Month < 1 || key.Month > 12 || key.Year < 1 {
		return DateKey{}, ErrInvalidDateKey
	}
	return key, nil
}
