// Package routes pushes a local routes.yaml to a Ghost site's settings.
package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	routescmd "github.com/goliatone/go-ghost-routes/internal/commands/routes"
	"github.com/goliatone/go-ghost-routes/internal/ghostadmin"
	"github.com/goliatone/go-ghost-routes/internal/logging"
	"github.com/goliatone/go-ghost-routes/internal/runtimeconfig"
	"github.com/goliatone/go-ghost-routes/pkg/interfaces"
)

const usageExample = `Example: GHOST_ADMIN_API_KEY="<id>:<secret>" GHOST_URL="https://example.com" import-routes`

// EditorFactory builds the settings editor for a validated configuration.
type EditorFactory func(cfg runtimeconfig.Config) (interfaces.SettingsEditor, error)

// Importer runs the import flow: validate configuration, read the routes
// file, submit it and report. Each step only runs if the previous one
// succeeded.
type Importer struct {
	Stdout    io.Writer
	Stderr    io.Writer
	ReadFile  func(path string) ([]byte, error)
	NewEditor EditorFactory
	Logger    interfaces.Logger

	// CommandLogger is handed to the import command handler. Defaults to Logger.
	CommandLogger interfaces.Logger
}

// Run executes one import and returns the process exit code together with
// the categorised error, if any. Diagnostics have already been written when
// Run returns.
func (im *Importer) Run(ctx context.Context, cfg runtimeconfig.Config) (int, error) {
	stdout, stderr := im.Stdout, im.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := im.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	readFile := im.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	if err := cfg.Validate(); err != nil {
		if runtimeconfig.IsMissingAdminKey(err) {
			fmt.Fprintf(stderr, "Missing %s (format: <id>:<secret>). Set env and retry.\n", runtimeconfig.EnvAdminAPIKey)
			fmt.Fprintln(stderr, usageExample)
		} else {
			fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		}
		err = configError(err)
		logger.Debug("routes.import.config_invalid", "error", err)
		return ExitCode(err), err
	}

	logger = logging.WithFields(logger, map[string]any{
		"path": cfg.RoutesPath,
		"url":  cfg.URL,
	})

	content, err := readFile(cfg.RoutesPath)
	if err != nil {
		fmt.Fprintln(stderr, "Failed to read routes file:", cfg.RoutesPath)
		fmt.Fprintln(stderr, err.Error())
		err = fileError(cfg.RoutesPath, err)
		logger.Debug("routes.import.read_failed", "error", err)
		return ExitCode(err), err
	}

	if im.NewEditor == nil {
		return im.remoteFailure(stderr, logger, clientError(errors.New("no settings editor configured")))
	}
	editor, err := im.NewEditor(cfg)
	if err != nil {
		return im.remoteFailure(stderr, logger, clientError(err))
	}

	fmt.Fprintln(stdout, "Importing routes from", cfg.RoutesPath, "to", cfg.URL)

	var result *interfaces.SettingsResult
	commandLogger := im.CommandLogger
	if commandLogger == nil {
		commandLogger = logger
	}
	handler := routescmd.NewImportRoutesHandler(editor, commandLogger)
	err = handler.Execute(ctx, routescmd.ImportRoutesCommand{
		Path:     cfg.RoutesPath,
		Routes:   string(content),
		OnResult: func(r *interfaces.SettingsResult) { result = r },
	})
	if err != nil {
		return im.remoteFailure(stderr, logger, err)
	}

	fmt.Fprintln(stdout, "Import successful. Updated settings:")
	fmt.Fprintln(stdout, result.Pretty())
	logger.Info("routes.import.completed", "bytes", len(content))
	return ExitOK, nil
}

func (im *Importer) remoteFailure(stderr io.Writer, logger interfaces.Logger, err error) (int, error) {
	fmt.Fprintln(stderr, "Import failed:")
	var apiErr *ghostadmin.APIError
	if errors.As(err, &apiErr) && apiErr.Structured() {
		fmt.Fprintln(stderr, string(bytes.TrimSpace(apiErr.Body)))
	} else {
		fmt.Fprintln(stderr, failureMessage(err))
	}
	logger.Debug("routes.import.failed", "error", err)
	return ExitRemoteFail, err
}

// failureMessage prefers the innermost cause so go-errors wrapping text does
// not hide the transport message.
func failureMessage(err error) string {
	var apiErr *ghostadmin.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
