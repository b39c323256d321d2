//go:build unit

package booking_test

import (
	"testing"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/exhibit"

	"github.com/stretchr/testify/assert"
)

func TestFeeCalculator_Recompute(t *testing.T) {
	calc := booking.NewDefaultFeeCalculator()
	unitFee := exhibit.NewMoney(5000) // 50.00 per visitor

	testCases := []struct {
		name     string
		quantity int
		want     int64
	}{
		{name: "single visitor", quantity: 1, want: 5000},
		{name: "three visitors", quantity: 3, want: 15000},
		{name: "zero clamps to one", quantity: 0, want: 5000},
		{name: "negative clamps to one", quantity: -2, want: 5000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := calc.Recompute(unitFee, booking.NewQuantity(tc.quantity))
			assert.Equal(t, tc.want, total.Cents())
		})
	}
}

func TestFeeCalculator_LinearAndIdempotent(t *testing.T) {
	calc := booking.NewDefaultFeeCalculator()
	unitFee := exhibit.NewMoney(730)

	one := calc.Recompute(unitFee, booking.NewQuantity(1))
	two := calc.Recompute(unitFee, booking.NewQuantity(2))
	assert.Equal(t, 2*one.Cents(), two.Cents())

	// Same inputs always give the same total; nothing is cached between calls.
	again := calc.Recompute(unitFee, booking.NewQuantity(2))
	assert.Equal(t, two.Cents(), again.Cents())
}
