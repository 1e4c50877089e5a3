package domain

import "fmt"

// Amount is a monetary value in cents.
type Amount int

func NewAmountFromCents(cents int) Amount {
	return Amount(cents)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) Cents() int {
	return int(a)
}

func (a Amount) String() string {
	sign := ""
	v := int(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
