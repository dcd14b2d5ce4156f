package enums

import "fmt"

// PriceStrategy selects how a group-product line is priced. The numeric
// values are the wire encoding expected by the backend.
type PriceStrategy int

const (
	// PriceStrategyZero offers the group at no charge.
	PriceStrategyZero PriceStrategy = 1
	// PriceStrategyAsProduct charges each chosen member at its own price.
	PriceStrategyAsProduct PriceStrategy = 2
	// PriceStrategyManual charges the fixed group price entered on the line.
	PriceStrategyManual PriceStrategy = 3
)

var validPriceStrategies = []PriceStrategy{
	PriceStrategyZero,
	PriceStrategyAsProduct,
	PriceStrategyManual,
}

// String implements fmt.Stringer.
func (s PriceStrategy) String() string {
	switch s {
	case PriceStrategyZero:
		return "zero"
	case PriceStrategyAsProduct:
		return "as_product"
	case PriceStrategyManual:
		return "manual"
	default:
		return fmt.Sprintf("price_strategy(%d)", int(s))
	}
}

// IsValid reports whether the value is a known PriceStrategy.
func (s PriceStrategy) IsValid() bool {
	for _, candidate := range validPriceStrategies {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePriceStrategy converts a raw wire value into a PriceStrategy.
func ParsePriceStrategy(value int) (PriceStrategy, error) {
	for _, candidate := range validPriceStrategies {
		if int(candidate) == value {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("invalid price strategy %d", value)
}
