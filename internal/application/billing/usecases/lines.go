package usecases

import (
	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
)

// LineInput carries one document line as received from the outside: the unit
// price is an exact decimal string, parsed to cents, never a float.
type LineInput struct {
	Description string
	Quantity    int
	UnitPrice   string
	Currency    string
}

func buildLines(inputs []LineInput) ([]*billing.Line, error) {
	lines := make([]*billing.Line, 0, len(inputs))
	for _, input := range inputs {
		price, err := vo.ParseMoney(input.UnitPrice, input.Currency)
		if err != nil {
			return nil, err
		}
		line, err := billing.NewLine(input.Description, input.Quantity, price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
