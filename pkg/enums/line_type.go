package enums

import "fmt"

// LineType discriminates the three kinds of price line a product can carry.
// The numeric values are the wire encoding expected by the backend.
type LineType int

const (
	LineTypePrice        LineType = 1
	LineTypeCommentGroup LineType = 2
	LineTypeGroupProduct LineType = 3
)

var validLineTypes = []LineType{
	LineTypePrice,
	LineTypeCommentGroup,
	LineTypeGroupProduct,
}

// String implements fmt.Stringer.
func (t LineType) String() string {
	switch t {
	case LineTypePrice:
		return "price"
	case LineTypeCommentGroup:
		return "comment_group"
	case LineTypeGroupProduct:
		return "group_product"
	default:
		return fmt.Sprintf("line_type(%d)", int(t))
	}
}

// IsValid reports whether the value is a known LineType.
func (t LineType) IsValid() bool {
	for _, candidate := range validLineTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseLineType converts a raw wire value into a LineType.
func ParseLineType(value int) (LineType, error) {
	for _, candidate := range validLineTypes {
		if int(candidate) == value {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("invalid line type %d", value)
}
