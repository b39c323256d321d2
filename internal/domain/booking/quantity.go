package booking

import "strconv"

// MinQuantity is the floor every quantity input is clamped to. Invalid
// boundary input must never reach the fee calculation as zero or
// negative.
const MinQuantity = 1

// Quantity is the number of visitors on a booking.
type Quantity struct {
	value int
}

func NewQuantity(n int) Quantity {
	if n < MinQuantity {
		n = MinQuantity
	}
	return Quantity{value: n}
}

// ParseQuantity interprets raw boundary input. Non-numeric or sub-1
// values clamp to the minimum rather than propagating.
func ParseQuantity(raw string) Quantity {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return NewQuantity(MinQuantity)
	}
	return NewQuantity(n)
}

func (q Quantity) Value() int {
	return q.value
}
