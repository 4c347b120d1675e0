package routescmd

import (
	"context"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-ghost-routes/internal/commands"
	"github.com/goliatone/go-ghost-routes/internal/logging"
	"github.com/goliatone/go-ghost-routes/pkg/interfaces"
)

const (
	importOperation = "routes.import"

	// TextCodeRemoteFailed tags failures of the settings update request.
	TextCodeRemoteFailed = "ROUTES_REMOTE_FAILED"
)

var _ command.Commander[ImportRoutesCommand] = (*ImportRoutesHandler)(nil)

// ImportRoutesHandler submits route documents through a SettingsEditor.
type ImportRoutesHandler struct {
	inner *commands.Handler[ImportRoutesCommand]
}

// NewImportRoutesHandler creates a handler bound to editor. The request is
// made once with no timeout unless one is passed in opts.
func NewImportRoutesHandler(editor interfaces.SettingsEditor, logger interfaces.Logger, opts ...commands.HandlerOption[ImportRoutesCommand]) *ImportRoutesHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportRoutesCommand) error {
		result, err := editor.EditSetting(ctx, RoutesField, msg.Routes)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryExternal, "routes update request failed").
				WithTextCode(TextCodeRemoteFailed)
		}
		if msg.OnResult != nil {
			msg.OnResult(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportRoutesCommand]{
		commands.WithLogger[ImportRoutesCommand](logger),
		commands.WithOperation[ImportRoutesCommand](importOperation),
		commands.WithMessageFields[ImportRoutesCommand](func(msg ImportRoutesCommand) map[string]any {
			return map[string]any{
				"path":  msg.Path,
				"bytes": len(msg.Routes),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportRoutesCommand](logger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportRoutesHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ImportRoutesCommand].
func (h *ImportRoutesHandler) Execute(ctx context.Context, msg ImportRoutesCommand) error {
	return h.inner.Execute(ctx, msg)
}
