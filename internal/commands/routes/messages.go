package routescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-ghost-routes/pkg/interfaces"
)

const importRoutesMessageType = "routes.import"

// RoutesField is the settings key holding the route configuration.
const RoutesField = "routes"

// ImportRoutesCommand pushes the raw text of a routes file to the remote
// settings record. Routes is sent untouched; an empty document is left for
// the server to judge.
type ImportRoutesCommand struct {
	// Path names the file Routes was read from, for diagnostics.
	Path string `json:"path"`
	// Routes holds the file content.
	Routes string `json:"routes"`
	// OnResult receives the server acknowledgement after a successful update.
	OnResult func(*interfaces.SettingsResult) `json:"-"`
}

// Type implements command.Message.
func (ImportRoutesCommand) Type() string { return importRoutesMessageType }

// Validate ensures the source path is recorded before handlers execute.
func (cmd ImportRoutesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("routes.import.path_required", "path is required")
			}
			return nil
		})),
	)
}
