package billing

import (
	"fmt"

	vo "bureau/internal/domain/billing/valueobjects"
)

// Line is one monetary line item of a quote or invoice: a description, a
// quantity of at least one, and an exact unit price.
type Line struct {
	id          uint
	description string
	quantity    int
	unitPrice   vo.Money
}

func NewLine(description string, quantity int, unitPrice vo.Money) (*Line, error) {
	if len(description) == 0 {
		return nil, fmt.Errorf("line description is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("line quantity must be >= 1, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("line unit price cannot be negative")
	}

	return &Line{
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

func ReconstructLine(id uint, description string, quantity int, unitPrice vo.Money) (*Line, error) {
	if id == 0 {
		return nil, fmt.Errorf("line ID cannot be zero")
	}
	line, err := NewLine(description, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	line.id = id
	return line, nil
}

func (l *Line) ID() uint {
	return l.id
}

func (l *Line) Description() string {
	return l.description
}

func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) UnitPrice() vo.Money {
	return l.unitPrice
}

// Total returns quantity times unit price.
func (l *Line) Total() vo.Money {
	return l.unitPrice.MultiplyBy(l.quantity)
}

func (l *Line) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("line ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("line ID cannot be zero")
	}
	l.id = id
	return nil
}

func sumLines(lines []*Line) (vo.Money, error) {
	total := vo.NewMoney(0, "")
	for _, line := range lines {
		var err error
		total, err = total.Add(line.Total())
		if err != nil {
			return vo.Money{}, err
		}
	}
	return total, nil
}
