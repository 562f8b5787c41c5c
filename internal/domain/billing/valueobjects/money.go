package valueobjects

import (
	"fmt"
	"strconv"
	"strings"
)

// Money holds a monetary amount as an exact number of cents.
// Binary floating point never enters the arithmetic.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = "EUR"
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// ParseMoney parses a decimal string such as "100.00" or "99.5" into an
// exact cent amount. At most two fractional digits are accepted.
func ParseMoney(s string, currency string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("amount is required")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	// ParseInt tolerates a leading sign, so "1.-5" and "--5" would slip
	// through; only bare digits are acceptable past the optional minus.
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	if len(fracPart) > 2 {
		return Money{}, fmt.Errorf("amount %q has more than two fractional digits", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return NewMoney(total, currency), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amountInCents: m.amountInCents + other.amountInCents, currency: m.currency}, nil
}

func (m Money) MultiplyBy(quantity int) Money {
	return Money{amountInCents: m.amountInCents * int64(quantity), currency: m.currency}
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

// String formats the amount with two fractional digits, e.g. "100.00 EUR".
func (m Money) String() string {
	cents := m.amountInCents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, m.currency)
}

// Decimal formats the bare amount without the currency, e.g. "100.00".
func (m Money) Decimal() string {
	cents := m.amountInCents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
