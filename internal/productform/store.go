package productform

import (
	"github.com/emrekoca/restopos-admin/pkg/enums"
	"github.com/shopspring/decimal"
)

// Form owns the ordered price-line sequence of one product being added or
// edited. All indices refer to the live view (soft-deleted lines hidden).
// Mutations replace the backing array instead of writing through it, so a
// snapshot handed out by Lines is never changed behind the caller's back.
type Form struct {
	mode    enums.FormMode
	product Product
	lines   []PriceLine
}

// NewForm starts an add-flow form with an empty line sequence.
func NewForm(product Product) *Form {
	return &Form{mode: enums.FormModeAdd, product: product}
}

// NewEditForm hydrates a form from an existing product's lines.
func NewEditForm(product Product, lines []PriceLine) *Form {
	hydrated := make([]PriceLine, 0, len(lines))
	for _, line := range lines {
		hydrated = append(hydrated, line.clone())
	}
	return &Form{mode: enums.FormModeEdit, product: product, lines: hydrated}
}

// Mode reports whether this is an add or edit flow.
func (f *Form) Mode() enums.FormMode {
	return f.mode
}

// Product returns the current parent-product state.
func (f *Form) Product() Product {
	return f.product
}

// SetProduct replaces the parent-product fields.
func (f *Form) SetProduct(product Product) {
	f.product = product
}

// Lines returns a snapshot of the live (not soft-deleted) lines in order.
func (f *Form) Lines() []PriceLine {
	out := make([]PriceLine, 0, len(f.lines))
	for _, line := range f.lines {
		if line.Deleted {
			continue
		}
		out = append(out, line.clone())
	}
	return out
}

// AddLine appends a fresh line of the given type with variant defaults and
// owning branch/company copied from the product. Always succeeds; returns
// the created line.
func (f *Form) AddLine(lineType enums.LineType) PriceLine {
	line := newPriceLine(lineType, f.product.BranchID, f.product.CompanyID)
	next := make([]PriceLine, 0, len(f.lines)+1)
	next = append(next, f.lines...)
	next = append(next, line)
	f.lines = next
	return line.clone()
}

// RemoveLine drops the live line at index. Add flows splice the line out;
// edit flows keep it flagged so the server learns about the removal.
// Out-of-range indices are a no-op.
func (f *Form) RemoveLine(index int) {
	at := f.liveIndex(index)
	if at < 0 {
		return
	}
	if f.mode == enums.FormModeAdd {
		next := make([]PriceLine, 0, len(f.lines)-1)
		next = append(next, f.lines[:at]...)
		next = append(next, f.lines[at+1:]...)
		f.lines = next
		return
	}
	f.update(at, func(line *PriceLine) {
		line.Deleted = true
		line.Active = false
	})
}

// SetLineActive flips the status flag of the live line at index.
func (f *Form) SetLineActive(index int, active bool) {
	f.updateLive(index, func(line *PriceLine) {
		line.Active = active
	})
}

// SetPriceName sets the display name of a simple-price line. No-op when the
// index is out of range or the line is not a price line.
func (f *Form) SetPriceName(index int, name string) {
	f.updateLive(index, func(line *PriceLine) {
		if line.Price != nil {
			line.Price.Name = name
		}
	})
}

// SetPriceAmount sets the numeric price of a simple-price line.
func (f *Form) SetPriceAmount(index int, amount decimal.Decimal) {
	f.updateLive(index, func(line *PriceLine) {
		if line.Price != nil {
			line.Price.Amount = amount
		}
	})
}

// deletedLines returns the soft-deleted lines, in order. Empty in add flows.
func (f *Form) deletedLines() []PriceLine {
	var out []PriceLine
	for _, line := range f.lines {
		if line.Deleted {
			out = append(out, line.clone())
		}
	}
	return out
}

// liveIndex maps a live-view index to a position in the backing array.
func (f *Form) liveIndex(index int) int {
	if index < 0 {
		return -1
	}
	seen := 0
	for at, line := range f.lines {
		if line.Deleted {
			continue
		}
		if seen == index {
			return at
		}
		seen++
	}
	return -1
}

// update rewrites the line at a backing-array position through a fresh
// array, keeping copy-on-write semantics.
func (f *Form) update(at int, mutate func(*PriceLine)) {
	next := make([]PriceLine, len(f.lines))
	for i := range f.lines {
		next[i] = f.lines[i].clone()
	}
	mutate(&next[at])
	f.lines = next
}

// updateLive is update addressed by a live-view index; silently ignores
// out-of-range indices.
func (f *Form) updateLive(index int, mutate func(*PriceLine)) {
	at := f.liveIndex(index)
	if at < 0 {
		return
	}
	f.update(at, mutate)
}
