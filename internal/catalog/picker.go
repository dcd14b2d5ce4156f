package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/emrekoca/restopos-admin/internal/api"
	"github.com/emrekoca/restopos-admin/internal/productform"
)

// PriceCatalog is the slice of the API client the picker depends on.
type PriceCatalog interface {
	GetAllProductPrices(ctx context.Context) ([]api.ProductPriceRow, error)
}

// Row is one selectable (product, price) pair. Key is positional on top of
// the price identity so duplicate price IDs under different products stay
// distinguishable.
type Row struct {
	Position int
	api.ProductPriceRow
}

// Key uniquely identifies the row within one picker.
func (r Row) Key() string {
	return fmt.Sprintf("%s#%d", r.ProductPriceID, r.Position)
}

// Picker is the in-memory model of the product selection dialog: the full
// catalog, a reactive substring filter, and a quantity-carrying selection
// set. Confirm hands the selection to a group sub-editor; it never appends.
type Picker struct {
	rows     []Row
	query    string
	selected map[string]int // row key -> quantity
}

// Open fetches the full catalog and returns a picker over it. A fetch
// failure returns the error with no partial rows.
func Open(ctx context.Context, source PriceCatalog) (*Picker, error) {
	if source == nil {
		return nil, fmt.Errorf("price catalog required")
	}
	fetched, err := source.GetAllProductPrices(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(fetched))
	for i, row := range fetched {
		rows = append(rows, Row{Position: i, ProductPriceRow: row})
	}
	return &Picker{rows: rows, selected: map[string]int{}}, nil
}

// SetQuery updates the filter. Matching is a pure, case-insensitive
// substring test over product name, price name and the stringified price.
func (p *Picker) SetQuery(query string) {
	p.query = strings.TrimSpace(query)
}

// Visible returns the filtered rows in catalog order.
func (p *Picker) Visible() []Row {
	if p.query == "" {
		return append([]Row(nil), p.rows...)
	}
	needle := strings.ToLower(p.query)
	var out []Row
	for _, row := range p.rows {
		if strings.Contains(strings.ToLower(row.ProductName), needle) ||
			strings.Contains(strings.ToLower(row.PriceName), needle) ||
			strings.Contains(row.Price.String(), needle) {
			out = append(out, row)
		}
	}
	return out
}

// IsSelected reports whether the row at the catalog position is selected.
func (p *Picker) IsSelected(position int) bool {
	row, ok := p.rowAt(position)
	if !ok {
		return false
	}
	_, selected := p.selected[row.Key()]
	return selected
}

// Toggle flips the selection of the row at the catalog position. Newly
// selected rows start with quantity 1.
func (p *Picker) Toggle(position int) {
	row, ok := p.rowAt(position)
	if !ok {
		return
	}
	key := row.Key()
	if _, selected := p.selected[key]; selected {
		delete(p.selected, key)
		return
	}
	p.selected[key] = 1
}

// SetQuantity stores the per-row quantity, coercing non-positive input up
// to 1. Setting a quantity on an unselected row selects it.
func (p *Picker) SetQuantity(position, quantity int) {
	row, ok := p.rowAt(position)
	if !ok {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	p.selected[row.Key()] = quantity
}

// ToggleAll selects the whole filtered visible set, or deselects it when
// every visible row is already selected.
func (p *Picker) ToggleAll() {
	visible := p.Visible()
	all, _ := p.SelectionState()
	for _, row := range visible {
		if all {
			delete(p.selected, row.Key())
			continue
		}
		if _, selected := p.selected[row.Key()]; !selected {
			p.selected[row.Key()] = 1
		}
	}
}

// SelectionState reports (all, some) over the filtered visible set; the
// indeterminate checkbox state is some && !all.
func (p *Picker) SelectionState() (all bool, some bool) {
	visible := p.Visible()
	if len(visible) == 0 {
		return false, false
	}
	selected := 0
	for _, row := range visible {
		if _, ok := p.selected[row.Key()]; ok {
			selected++
		}
	}
	return selected == len(visible), selected > 0
}

// Confirm emits the selection as group members in catalog order. The caller
// feeds the result to Form.AttachMembers, which overwrites any previous
// member list.
func (p *Picker) Confirm() []productform.GroupMember {
	var out []productform.GroupMember
	for _, row := range p.rows {
		quantity, ok := p.selected[row.Key()]
		if !ok {
			continue
		}
		out = append(out, productform.GroupMember{
			ProductID:      row.ProductID,
			ProductPriceID: row.ProductPriceID,
			Quantity:       quantity,
		})
	}
	return out
}

// Clear resets the selection set without touching the filter or the rows.
func (p *Picker) Clear() {
	p.selected = map[string]int{}
}

func (p *Picker) rowAt(position int) (Row, bool) {
	if position < 0 || position >= len(p.rows) {
		return Row{}, false
	}
	return p.rows[position], true
}
