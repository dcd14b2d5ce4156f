package productform

import (
	"github.com/emrekoca/restopos-admin/pkg/enums"
	"github.com/shopspring/decimal"
)

// Group sub-editor: operations on the group-product variant of a line. All
// no-op silently when the line index is out of range or the line is not a
// group-product line.

// SetQuantityToSelect sets how many members the guest must choose.
func (f *Form) SetQuantityToSelect(lineIndex, quantity int) {
	f.updateGroup(lineIndex, func(group *GroupFields) {
		group.QuantityToSelect = quantity
	})
}

// SetPriceStrategy sets the group pricing strategy.
func (f *Form) SetPriceStrategy(lineIndex int, strategy enums.PriceStrategy) {
	f.updateGroup(lineIndex, func(group *GroupFields) {
		group.Strategy = strategy
	})
}

// SetGroupPrice sets the manual group price. The value is only validated
// (and only sent as meaningful) when the strategy is manual.
func (f *Form) SetGroupPrice(lineIndex int, price decimal.Decimal) {
	f.updateGroup(lineIndex, func(group *GroupFields) {
		group.Price = price
	})
}

// AttachMembers replaces the member list with the selection confirmed in
// the catalog picker. Overwrite semantics: re-confirming a new selection
// discards the previous members.
func (f *Form) AttachMembers(lineIndex int, selections []GroupMember) {
	f.updateGroup(lineIndex, func(group *GroupFields) {
		group.Members = append([]GroupMember(nil), selections...)
	})
}

func (f *Form) updateGroup(lineIndex int, mutate func(*GroupFields)) {
	f.updateLive(lineIndex, func(line *PriceLine) {
		if line.Group == nil {
			return
		}
		mutate(line.Group)
	})
}
