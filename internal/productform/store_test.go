package productform

import (
	"testing"

	"github.com/emrekoca/restopos-admin/pkg/enums"
	"github.com/shopspring/decimal"
)

func testProduct() Product {
	return Product{
		Name:      "Adana Kebap",
		GroupID:   "group-1",
		BranchID:  "branch-1",
		CompanyID: "company-1",
		Active:    true,
	}
}

func TestAddLineDefaultsMatchVariant(t *testing.T) {
	form := NewForm(testProduct())

	t.Run("price", func(t *testing.T) {
		line := form.AddLine(enums.LineTypePrice)
		if line.ID == "" {
			t.Fatal("expected a generated identity")
		}
		if line.Price == nil || line.Comments != nil || line.Group != nil {
			t.Fatal("price line must populate only the price variant")
		}
		if line.Price.Name != "" || !line.Price.Amount.IsZero() {
			t.Fatalf("expected empty name and zero price, got %q %s", line.Price.Name, line.Price.Amount)
		}
		if line.BranchID != "branch-1" || line.CompanyID != "company-1" {
			t.Fatal("line must inherit branch and company from the product")
		}
		if !line.Active || line.Deleted {
			t.Fatal("new lines start active and not deleted")
		}
	})

	t.Run("commentGroup", func(t *testing.T) {
		line := form.AddLine(enums.LineTypeCommentGroup)
		if line.Comments == nil || line.Price != nil || line.Group != nil {
			t.Fatal("comment-group line must populate only the comments variant")
		}
		if len(line.Comments.Comments) != 0 {
			t.Fatal("comment list starts empty")
		}
	})

	t.Run("groupProduct", func(t *testing.T) {
		line := form.AddLine(enums.LineTypeGroupProduct)
		if line.Group == nil || line.Price != nil || line.Comments != nil {
			t.Fatal("group line must populate only the group variant")
		}
		if line.Group.QuantityToSelect != 1 {
			t.Fatalf("expected quantity default 1, got %d", line.Group.QuantityToSelect)
		}
		if line.Group.Strategy != enums.PriceStrategyZero {
			t.Fatalf("expected zero strategy default, got %s", line.Group.Strategy)
		}
		if !line.Group.Price.IsZero() {
			t.Fatalf("expected zero group price, got %s", line.Group.Price)
		}
		if len(line.Group.Members) != 0 {
			t.Fatal("member list starts empty")
		}
	})

	ids := map[string]bool{}
	for _, line := range form.Lines() {
		if ids[line.ID] {
			t.Fatalf("identity %s reused", line.ID)
		}
		ids[line.ID] = true
	}
}

func TestUpdateIsCopyOnWrite(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypePrice)

	before := form.Lines()
	form.SetPriceName(0, "Large")
	form.SetPriceAmount(0, decimal.NewFromInt(50))
	after := form.Lines()

	if before[0].Price.Name != "" {
		t.Fatalf("retained snapshot mutated: %q", before[0].Price.Name)
	}
	if after[0].Price.Name != "Large" {
		t.Fatalf("expected updated name, got %q", after[0].Price.Name)
	}
	if !after[0].Price.Amount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected price 50, got %s", after[0].Price.Amount)
	}
}

func TestUpdateOutOfRangeIsNoOp(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypePrice)
	form.SetPriceName(5, "nope")
	form.SetPriceName(-1, "nope")
	if got := form.Lines()[0].Price.Name; got != "" {
		t.Fatalf("out-of-range update must not change state, got %q", got)
	}
}

func TestRemoveLinePreservesOrder(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypePrice)
	form.AddLine(enums.LineTypeCommentGroup)
	form.AddLine(enums.LineTypeGroupProduct)

	first := form.Lines()[0].ID
	third := form.Lines()[2].ID

	form.RemoveLine(1)

	lines := form.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ID != first || lines[1].ID != third {
		t.Fatal("remaining lines must keep their relative order")
	}
}

func TestRemoveLineEditFlowSoftDeletes(t *testing.T) {
	seed := []PriceLine{
		newPriceLine(enums.LineTypePrice, "branch-1", "company-1"),
		newPriceLine(enums.LineTypePrice, "branch-1", "company-1"),
	}
	product := testProduct()
	product.ID = "prod-1"
	form := NewEditForm(product, seed)

	form.RemoveLine(0)

	lines := form.Lines()
	if len(lines) != 1 {
		t.Fatalf("soft-deleted line must be hidden from the live view, got %d lines", len(lines))
	}
	if lines[0].ID != seed[1].ID {
		t.Fatal("wrong line was hidden")
	}

	deleted := form.deletedLines()
	if len(deleted) != 1 || deleted[0].ID != seed[0].ID {
		t.Fatal("removed line must be retained as a deleted record")
	}
	if !deleted[0].Deleted || deleted[0].Active {
		t.Fatal("deleted record must be flagged and inactive")
	}
}

func TestCommentEditing(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypeCommentGroup)

	form.AddComment(0)
	form.AddComment(0)
	form.SetCommentName(0, 0, "Extra Cheese")
	form.SetCommentName(0, 1, "No Onions")
	form.SetCommentDescription(0, 1, "hold the onions")

	comments := form.Lines()[0].Comments.Comments
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Name != "Extra Cheese" || comments[1].Name != "No Onions" {
		t.Fatalf("comment names not applied: %+v", comments)
	}
	if comments[0].PriceLineID != form.Lines()[0].ID {
		t.Fatal("comment must back-reference its owning line")
	}
	if comments[0].BranchID != "branch-1" || comments[0].CompanyID != "company-1" {
		t.Fatal("comment must inherit branch and company")
	}

	form.RemoveComment(0, 0)
	comments = form.Lines()[0].Comments.Comments
	if len(comments) != 1 || comments[0].Name != "No Onions" {
		t.Fatalf("expected only the second comment to remain, got %+v", comments)
	}

	// comment ops against a price line are inert
	form.AddLine(enums.LineTypePrice)
	form.AddComment(1)
	if form.Lines()[1].Comments != nil {
		t.Fatal("price line must not grow comments")
	}
}

func TestGroupEditingAndAttachOverwrites(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypeGroupProduct)

	form.SetQuantityToSelect(0, 2)
	form.SetPriceStrategy(0, enums.PriceStrategyManual)
	form.SetGroupPrice(0, decimal.NewFromInt(30))
	form.AttachMembers(0, []GroupMember{
		{ProductID: "p1", ProductPriceID: "pp1", Quantity: 2},
		{ProductID: "p2", ProductPriceID: "pp2", Quantity: 1},
	})

	group := form.Lines()[0].Group
	if group.QuantityToSelect != 2 || group.Strategy != enums.PriceStrategyManual {
		t.Fatalf("group fields not applied: %+v", group)
	}
	if len(group.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(group.Members))
	}

	form.AttachMembers(0, []GroupMember{{ProductID: "p3", ProductPriceID: "pp3", Quantity: 1}})
	group = form.Lines()[0].Group
	if len(group.Members) != 1 || group.Members[0].ProductPriceID != "pp3" {
		t.Fatal("re-attaching must overwrite, not append")
	}
}
