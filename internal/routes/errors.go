package routes

import (
	goerrors "github.com/goliatone/go-errors"
)

// Exit codes reported by the import-routes command.
const (
	ExitOK         = 0
	ExitLocalError = 2
	ExitRemoteFail = 3
)

const (
	textCodeConfigInvalid  = "ROUTES_CONFIG_INVALID"
	textCodeFileUnreadable = "ROUTES_FILE_UNREADABLE"
	textCodeClientInit     = "ROUTES_CLIENT_INIT_FAILED"
)

func configError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration").
		WithTextCode(textCodeConfigInvalid)
}

func fileError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, "read routes file "+path).
		WithTextCode(textCodeFileUnreadable)
}

func clientError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "construct admin client").
		WithTextCode(textCodeClientInit)
}

// ExitCode maps an importer error onto the process exit status. Local
// failures (configuration, file access) are 2; everything past the point
// of contacting the server is 3.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case goerrors.IsCategory(err, goerrors.CategoryValidation),
		goerrors.IsCategory(err, goerrors.CategoryBadInput):
		return ExitLocalError
	default:
		return ExitRemoteFail
	}
}
