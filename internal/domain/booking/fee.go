package booking

import (
	"museum-booking/internal/domain/exhibit"
)

// FeeCalculator derives the payable total from the per-visitor fee and
// the requested quantity. The total is never stored; it is recomputed
// whenever either operand changes.
type FeeCalculator interface {
	Recompute(unitFee exhibit.Money, quantity Quantity) exhibit.Money
}

type DefaultFeeCalculator struct{}

func NewDefaultFeeCalculator() *DefaultFeeCalculator {
	return &DefaultFeeCalculator{}
}

func (c *DefaultFeeCalculator) Recompute(unitFee exhibit.Money, quantity Quantity) exhibit.Money {
	return unitFee.MultiplyBy(quantity.Value())
}
