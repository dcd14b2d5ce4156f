package productform

import (
	"github.com/emrekoca/restopos-admin/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the in-memory state of the product form being added or edited.
type Product struct {
	ID            string
	Name          string `validate:"required"`
	SecondaryName string
	GroupID       string `validate:"required"`
	BranchID      string `validate:"required"`
	CompanyID     string `validate:"required"`
	ScreenID      string
	Discount      decimal.Decimal
	VAT           decimal.Decimal
	Active        bool
	Image         *Image
}

// Image is an optional picture uploaded alongside the product.
type Image struct {
	Filename string
	Data     []byte
}

// PriceLine is one entry in a product's price sequence. Exactly one of the
// variant field sets is populated, matching Type; constructors are the only
// way lines are born, so a mismatched variant cannot be built by accident.
type PriceLine struct {
	ID        string
	Type      enums.LineType
	BranchID  string
	CompanyID string
	Active    bool
	Deleted   bool

	Price    *PriceFields
	Comments *CommentGroupFields
	Group    *GroupFields
}

// PriceFields carries the simple-price variant.
type PriceFields struct {
	Name   string
	Amount decimal.Decimal
}

// CommentGroupFields carries the comment-group variant.
type CommentGroupFields struct {
	Comments []Comment
}

// GroupFields carries the group-product variant.
type GroupFields struct {
	QuantityToSelect int
	Strategy         enums.PriceStrategy
	Price            decimal.Decimal
	Members          []GroupMember
}

// Comment is one selectable remark nested in a comment-group line.
type Comment struct {
	ID          string
	PriceLineID string
	BranchID    string
	CompanyID   string
	Name        string
	Description string
	Active      bool
	Deleted     bool
}

// GroupMember references another product's price line offered as a choice
// inside a group-product line.
type GroupMember struct {
	ProductID      string
	ProductPriceID string
	Quantity       int
}

// newPriceLine builds a line with a fresh client-side identity and
// variant-appropriate defaults. Identity is assigned before any server
// round-trip and never reused.
func newPriceLine(lineType enums.LineType, branchID, companyID string) PriceLine {
	line := PriceLine{
		ID:        uuid.NewString(),
		Type:      lineType,
		BranchID:  branchID,
		CompanyID: companyID,
		Active:    true,
	}
	switch lineType {
	case enums.LineTypePrice:
		line.Price = &PriceFields{}
	case enums.LineTypeCommentGroup:
		line.Comments = &CommentGroupFields{}
	case enums.LineTypeGroupProduct:
		line.Group = &GroupFields{
			QuantityToSelect: 1,
			Strategy:         enums.PriceStrategyZero,
		}
	}
	return line
}

// clone deep-copies the line so stored state is never aliased by callers.
func (l PriceLine) clone() PriceLine {
	out := l
	if l.Price != nil {
		price := *l.Price
		out.Price = &price
	}
	if l.Comments != nil {
		comments := CommentGroupFields{Comments: append([]Comment(nil), l.Comments.Comments...)}
		out.Comments = &comments
	}
	if l.Group != nil {
		group := *l.Group
		group.Members = append([]GroupMember(nil), l.Group.Members...)
		out.Group = &group
	}
	return out
}
