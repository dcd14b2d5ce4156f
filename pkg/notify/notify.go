package notify

import (
	"context"

	"github.com/emrekoca/restopos-admin/pkg/enums"
	"github.com/emrekoca/restopos-admin/pkg/logger"
)

// Notifier is the fire-and-forget surface every outcome is reported to.
type Notifier interface {
	Notify(ctx context.Context, severity enums.Severity, title, message string)
}

// Func adapts a plain function to the Notifier interface.
type Func func(ctx context.Context, severity enums.Severity, title, message string)

func (f Func) Notify(ctx context.Context, severity enums.Severity, title, message string) {
	f(ctx, severity, title, message)
}

// LogNotifier writes notifications to the structured logger.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) *LogNotifier {
	return &LogNotifier{logg: logg}
}

func (n *LogNotifier) Notify(ctx context.Context, severity enums.Severity, title, message string) {
	if n == nil || n.logg == nil {
		return
	}
	ctx = n.logg.WithFields(ctx, map[string]any{
		"severity": severity.String(),
		"title":    title,
	})
	switch severity {
	case enums.SeverityError:
		n.logg.Error(ctx, message, nil)
	case enums.SeverityWarning:
		n.logg.Warn(ctx, message)
	default:
		n.logg.Info(ctx, message)
	}
}

// Discard swallows every notification. Useful in tests.
var Discard Notifier = Func(func(context.Context, enums.Severity, string, string) {})
