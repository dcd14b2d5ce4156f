package productform

import (
	"context"
	"fmt"
	"io"

	"github.com/emrekoca/restopos-admin/pkg/enums"
	pkgerrors "github.com/emrekoca/restopos-admin/pkg/errors"
	"github.com/emrekoca/restopos-admin/pkg/logger"
	"github.com/emrekoca/restopos-admin/pkg/notify"
)

const notificationTitle = "Products"

// ProductSender is the slice of the API client submit depends on.
type ProductSender interface {
	CreateProduct(ctx context.Context, body io.Reader, contentType string) error
	UpdateProduct(ctx context.Context, body io.Reader, contentType string) error
}

// Submitter validates, encodes and ships a product form.
type Submitter struct {
	sender   ProductSender
	notifier notify.Notifier
	logg     *logger.Logger
}

// NewSubmitter constructs a submitter instance.
func NewSubmitter(sender ProductSender, notifier notify.Notifier, logg *logger.Logger) (*Submitter, error) {
	if sender == nil {
		return nil, fmt.Errorf("product sender required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Submitter{sender: sender, notifier: notifier, logg: logg}, nil
}

// Submit runs the whole save path. Validation failures abort before any
// encoding or network I/O and leave the form untouched so the operator can
// fix and resubmit. Network failures also preserve the form state.
func (s *Submitter) Submit(ctx context.Context, form *Form) error {
	if form == nil {
		return fmt.Errorf("form required")
	}
	ctx = s.logg.WithProductID(ctx, form.Product().ID)

	if err := form.Validate(); err != nil {
		s.notifier.Notify(ctx, enums.SeverityWarning, notificationTitle, validationMessage(err))
		return err
	}

	payload, err := form.Encode()
	if err != nil {
		s.logg.Error(ctx, "encoding product payload", err)
		s.notifier.Notify(ctx, enums.SeverityError, notificationTitle, "save failed")
		return err
	}

	switch form.Mode() {
	case enums.FormModeEdit:
		err = s.sender.UpdateProduct(ctx, payload.Body, payload.ContentType)
	default:
		err = s.sender.CreateProduct(ctx, payload.Body, payload.ContentType)
	}
	if err != nil {
		s.logg.Error(ctx, "saving product", err)
		s.notifier.Notify(ctx, enums.SeverityError, notificationTitle, saveFailedMessage(err))
		return err
	}

	s.notifier.Notify(ctx, enums.SeveritySuccess, notificationTitle, "product saved")
	return nil
}

func validationMessage(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		return typed.Message()
	}
	return err.Error()
}

// saveFailedMessage appends the server-supplied message when one exists,
// else falls back to a generic string.
func saveFailedMessage(err error) string {
	if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
		return fmt.Sprintf("save failed: %s", typed.Message())
	}
	return "save failed"
}
