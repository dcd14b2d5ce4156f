package productform

import (
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/emrekoca/restopos-admin/pkg/errors"
	"github.com/emrekoca/restopos-admin/pkg/enums"
	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate checks the whole form the way submit does: product-level struct
// rules first, then every live line against its variant's rules. Line and
// comment positions in messages are 1-based, matching what the operator
// sees on screen. Returns nil when the form is submittable.
func (f *Form) Validate() error {
	var findings error

	if err := validate.Struct(f.product); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range errs {
				findings = multierr.Append(findings, fmt.Errorf("product %s is required", strings.ToLower(fieldErr.Field())))
			}
		} else {
			findings = multierr.Append(findings, err)
		}
	}

	for position, line := range f.Lines() {
		findings = multierr.Append(findings, validateLine(position+1, line))
	}

	if findings == nil {
		return nil
	}

	messages := make([]string, 0)
	for _, err := range multierr.Errors(findings) {
		messages = append(messages, err.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, findings, messages[0]).
		WithDetails(messages)
}

func validateLine(position int, line PriceLine) error {
	switch line.Type {
	case enums.LineTypePrice:
		return validatePriceLine(position, line)
	case enums.LineTypeCommentGroup:
		return validateCommentGroup(position, line)
	case enums.LineTypeGroupProduct:
		return validateGroupProduct(position, line)
	default:
		return fmt.Errorf("price line %d: unknown line type %d", position, int(line.Type))
	}
}

func validatePriceLine(position int, line PriceLine) error {
	if line.Price == nil {
		return fmt.Errorf("price line %d: missing price fields", position)
	}
	var findings error
	if strings.TrimSpace(line.Price.Name) == "" {
		findings = multierr.Append(findings, fmt.Errorf("price line %d: name is required", position))
	}
	if !line.Price.Amount.IsPositive() {
		findings = multierr.Append(findings, fmt.Errorf("price line %d: price must be greater than zero", position))
	}
	return findings
}

// Comment descriptions are optional; only the name is required.
func validateCommentGroup(position int, line PriceLine) error {
	if line.Comments == nil {
		return fmt.Errorf("price line %d: missing comment fields", position)
	}
	var findings error
	for at, comment := range line.Comments.Comments {
		if comment.Deleted {
			continue
		}
		if strings.TrimSpace(comment.Name) == "" {
			findings = multierr.Append(findings, fmt.Errorf("price line %d, comment %d: name is required", position, at+1))
		}
	}
	return findings
}

func validateGroupProduct(position int, line PriceLine) error {
	if line.Group == nil {
		return fmt.Errorf("price line %d: missing group fields", position)
	}
	var findings error
	if line.Group.QuantityToSelect <= 0 {
		findings = multierr.Append(findings, fmt.Errorf("price line %d: quantity to select must be greater than zero", position))
	}
	if !line.Group.Strategy.IsValid() {
		findings = multierr.Append(findings, fmt.Errorf("price line %d: pricing strategy is required", position))
	}
	if line.Group.Strategy == enums.PriceStrategyManual && !line.Group.Price.IsPositive() {
		findings = multierr.Append(findings, fmt.Errorf("price line %d: group price must be greater than zero", position))
	}
	return findings
}
