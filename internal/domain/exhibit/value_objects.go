package exhibit

import "errors"

// Money is an amount in integer cents. The caller owns currency-correct
// rounding and display.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) MultiplyBy(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}
