package productform

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/emrekoca/restopos-admin/pkg/enums"
)

// imageFieldName is the fixed multipart field the image file travels under.
const imageFieldName = "image"

// Payload is an encoded multipart body ready for a create/update POST.
type Payload struct {
	Body        *bytes.Buffer
	ContentType string
}

// Encode flattens the form into the positional multipart payload the
// backend expects: productPrices[i].field for each line,
// productPrices[i].priceComments[j].field for nested comments and
// productPrices[i].priceGroups[k].field for nested group members. Live
// lines are emitted first; in edit flows soft-deleted lines follow as
// isDeleted records so the server can diff.
func (f *Form) Encode() (*Payload, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := writeProductFields(w, f.product, f.mode); err != nil {
		return nil, err
	}

	emit := f.Lines()
	if f.mode == enums.FormModeEdit {
		emit = append(emit, f.deletedLines()...)
	}
	for i, line := range emit {
		if err := writeLine(w, i, line, f.mode); err != nil {
			return nil, err
		}
	}

	if img := f.product.Image; img != nil {
		part, err := w.CreateFormFile(imageFieldName, img.Filename)
		if err != nil {
			return nil, fmt.Errorf("creating image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, fmt.Errorf("writing image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}
	return &Payload{Body: buf, ContentType: w.FormDataContentType()}, nil
}

func writeProductFields(w *multipart.Writer, product Product, mode enums.FormMode) error {
	fields := map[string]string{
		"productName":          product.Name,
		"productSecondaryName": product.SecondaryName,
		"productGroupId":       product.GroupID,
		"branchId":             product.BranchID,
		"companyId":            product.CompanyID,
		"screenId":             product.ScreenID,
		"discount":             product.Discount.String(),
		"vat":                  product.VAT.String(),
		"status":               strconv.FormatBool(product.Active),
	}
	if mode == enums.FormModeEdit {
		fields["productId"] = product.ID
	}
	return writeFields(w, fields)
}

func writeLine(w *multipart.Writer, index int, line PriceLine, mode enums.FormMode) error {
	prefix := fmt.Sprintf("productPrices[%d]", index)
	fields := map[string]string{
		prefix + ".id":        line.ID,
		prefix + ".lineType":  strconv.Itoa(int(line.Type)),
		prefix + ".branchId":  line.BranchID,
		prefix + ".companyId": line.CompanyID,
		prefix + ".status":    strconv.FormatBool(line.Active),
	}
	if mode == enums.FormModeEdit {
		fields[prefix+".isDeleted"] = strconv.FormatBool(line.Deleted)
	}
	if err := writeFields(w, fields); err != nil {
		return err
	}

	switch line.Type {
	case enums.LineTypePrice:
		if line.Price == nil {
			return nil
		}
		return writeFields(w, map[string]string{
			prefix + ".productPriceName": line.Price.Name,
			prefix + ".price":            line.Price.Amount.String(),
		})
	case enums.LineTypeCommentGroup:
		if line.Comments == nil {
			return nil
		}
		return writeComments(w, prefix, line.Comments.Comments)
	case enums.LineTypeGroupProduct:
		if line.Group == nil {
			return nil
		}
		return writeGroup(w, prefix, line.Group)
	}
	return nil
}

func writeComments(w *multipart.Writer, prefix string, comments []Comment) error {
	emitted := 0
	for _, comment := range comments {
		if comment.Deleted {
			continue
		}
		nested := fmt.Sprintf("%s.priceComments[%d]", prefix, emitted)
		err := writeFields(w, map[string]string{
			nested + ".id":             comment.ID,
			nested + ".productPriceId": comment.PriceLineID,
			nested + ".name":           comment.Name,
			nested + ".description":    comment.Description,
			nested + ".branchId":       comment.BranchID,
			nested + ".companyId":      comment.CompanyID,
			nested + ".status":         strconv.FormatBool(comment.Active),
		})
		if err != nil {
			return err
		}
		emitted++
	}
	return nil
}

func writeGroup(w *multipart.Writer, prefix string, group *GroupFields) error {
	err := writeFields(w, map[string]string{
		prefix + ".quantityToSelect": strconv.Itoa(group.QuantityToSelect),
		prefix + ".groupPriceType":   strconv.Itoa(int(group.Strategy)),
		prefix + ".groupPrice":       group.Price.String(),
	})
	if err != nil {
		return err
	}
	for k, member := range group.Members {
		nested := fmt.Sprintf("%s.priceGroups[%d]", prefix, k)
		err := writeFields(w, map[string]string{
			nested + ".productId":      member.ProductID,
			nested + ".productPriceId": member.ProductPriceID,
			nested + ".quantity":       strconv.Itoa(member.Quantity),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFields(w *multipart.Writer, fields map[string]string) error {
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("writing field %s: %w", name, err)
		}
	}
	return nil
}
