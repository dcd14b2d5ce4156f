package productform

import (
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/emrekoca/restopos-admin/pkg/enums"
	"github.com/shopspring/decimal"
)

// parsePayload flattens the multipart body into field values plus any file
// parts keyed by field name.
func parsePayload(t *testing.T, payload *Payload) (map[string]string, map[string][]byte) {
	t.Helper()
	_, params, err := mime.ParseMediaType(payload.ContentType)
	if err != nil {
		t.Fatalf("parsing content type: %v", err)
	}
	reader := multipart.NewReader(payload.Body, params["boundary"])
	fields := map[string]string{}
	files := map[string][]byte{}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading part: %v", err)
		}
		data, err := io.ReadAll(part)
		if err != nil {
			t.Fatalf("reading part body: %v", err)
		}
		if part.FileName() != "" {
			files[part.FormName()] = data
			continue
		}
		fields[part.FormName()] = string(data)
	}
	return fields, files
}

func TestEncodePriceLine(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypePrice)
	form.SetPriceName(0, "Large")
	form.SetPriceAmount(0, decimal.NewFromInt(50))

	payload, err := form.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	fields, _ := parsePayload(t, payload)

	expect := map[string]string{
		"productName":                     "Adana Kebap",
		"branchId":                        "branch-1",
		"companyId":                       "company-1",
		"productPrices[0].lineType":       "1",
		"productPrices[0].productPriceName": "Large",
		"productPrices[0].price":          "50",
		"productPrices[0].status":         "true",
	}
	for name, want := range expect {
		if got := fields[name]; got != want {
			t.Fatalf("field %s: expected %q got %q", name, want, got)
		}
	}
	if _, ok := fields["productId"]; ok {
		t.Fatal("add flow must not carry productId")
	}
	if fields["productPrices[0].id"] == "" {
		t.Fatal("line identity must be transmitted")
	}
}

func TestEncodeCommentGroupKeepsEntryOrder(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypeCommentGroup)
	form.AddComment(0)
	form.AddComment(0)
	form.SetCommentName(0, 0, "Extra Cheese")
	form.SetCommentName(0, 1, "No Onions")

	payload, err := form.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	fields, _ := parsePayload(t, payload)

	if fields["productPrices[0].lineType"] != "2" {
		t.Fatalf("expected comment-group line type, got %q", fields["productPrices[0].lineType"])
	}
	if fields["productPrices[0].priceComments[0].name"] != "Extra Cheese" {
		t.Fatalf("expected first comment at index 0, got %q", fields["productPrices[0].priceComments[0].name"])
	}
	if fields["productPrices[0].priceComments[1].name"] != "No Onions" {
		t.Fatalf("expected second comment at index 1, got %q", fields["productPrices[0].priceComments[1].name"])
	}
	if fields["productPrices[0].priceComments[0].productPriceId"] == "" {
		t.Fatal("comment must reference its owning line")
	}
}

func TestEncodeGroupProduct(t *testing.T) {
	form := NewForm(testProduct())
	form.AddLine(enums.LineTypeGroupProduct)
	form.SetQuantityToSelect(0, 2)
	form.SetPriceStrategy(0, enums.PriceStrategyManual)
	form.SetGroupPrice(0, decimal.NewFromInt(30))
	form.AttachMembers(0, []GroupMember{
		{ProductID: "p1", ProductPriceID: "pp1", Quantity: 2},
		{ProductID: "p2", ProductPriceID: "pp2", Quantity: 1},
	})

	payload, err := form.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	fields, _ := parsePayload(t, payload)

	expect := map[string]string{
		"productPrices[0].lineType":                  "3",
		"productPrices[0].quantityToSelect":          "2",
		"productPrices[0].groupPriceType":            "3",
		"productPrices[0].groupPrice":                "30",
		"productPrices[0].priceGroups[0].productId":  "p1",
		"productPrices[0].priceGroups[0].productPriceId": "pp1",
		"productPrices[0].priceGroups[0].quantity":   "2",
		"productPrices[0].priceGroups[1].productPriceId": "pp2",
		"productPrices[0].priceGroups[1].quantity":   "1",
	}
	for name, want := range expect {
		if got := fields[name]; got != want {
			t.Fatalf("field %s: expected %q got %q", name, want, got)
		}
	}
}

func TestEncodeEditFlowCarriesDeletedLines(t *testing.T) {
	seed := []PriceLine{
		newPriceLine(enums.LineTypePrice, "branch-1", "company-1"),
		newPriceLine(enums.LineTypePrice, "branch-1", "company-1"),
	}
	seed[0].Price.Name = "Small"
	seed[0].Price.Amount = decimal.NewFromInt(25)
	seed[1].Price.Name = "Large"
	seed[1].Price.Amount = decimal.NewFromInt(50)

	product := testProduct()
	product.ID = "prod-1"
	form := NewEditForm(product, seed)
	form.RemoveLine(0)

	payload, err := form.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	fields, _ := parsePayload(t, payload)

	if fields["productId"] != "prod-1" {
		t.Fatalf("edit flow must carry productId, got %q", fields["productId"])
	}
	// live line first, deleted record after it
	if fields["productPrices[0].productPriceName"] != "Large" {
		t.Fatalf("expected surviving line first, got %q", fields["productPrices[0].productPriceName"])
	}
	if fields["productPrices[0].isDeleted"] != "false" {
		t.Fatalf("live line must not be flagged, got %q", fields["productPrices[0].isDeleted"])
	}
	if fields["productPrices[1].productPriceName"] != "Small" {
		t.Fatalf("expected removed line retained, got %q", fields["productPrices[1].productPriceName"])
	}
	if fields["productPrices[1].isDeleted"] != "true" {
		t.Fatalf("removed line must be flagged, got %q", fields["productPrices[1].isDeleted"])
	}
}

func TestEncodeAppendsImagePart(t *testing.T) {
	product := testProduct()
	product.Image = &Image{Filename: "kebap.jpg", Data: []byte{0xff, 0xd8, 0xff}}
	form := NewForm(product)

	payload, err := form.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, files := parsePayload(t, payload)

	data, ok := files["image"]
	if !ok {
		t.Fatal("expected image part under the fixed field name")
	}
	if len(data) != 3 || data[0] != 0xff {
		t.Fatalf("image bytes mangled: %v", data)
	}
}
