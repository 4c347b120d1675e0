package runtimeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	EnvRoutesPath     = "ROUTES_PATH"
	EnvGhostURL       = "GHOST_URL"
	EnvGhostAdminURL  = "GHOST_ADMIN_URL"
	EnvAdminAPIKey    = "GHOST_ADMIN_API_KEY"
	EnvAdminKey       = "GHOST_ADMIN_KEY"
	EnvAPIVersion     = "GHOST_API_VERSION"
	EnvLogLevel       = "ROUTES_LOG_LEVEL"
	EnvLogFormat      = "ROUTES_LOG_FORMAT"
	EnvLogSource      = "ROUTES_LOG_SOURCE"
	EnvEnvFile        = "ROUTES_ENV_FILE"
	DefaultURL        = "http://localhost:2368"
	DefaultAPIVersion = "v5.0"
	DefaultLogLevel   = "error"
	DefaultLogFormat  = "console"
)

var defaultRoutesPath = filepath.Join("data", "ghost", "settings", "routes.yaml")

var (
	logLevels  = []any{"trace", "debug", "info", "warn", "warning", "error", "fatal"}
	logFormats = []any{"console", "json", "pretty"}
)

// Config holds the values resolved once at process start.
type Config struct {
	RoutesPath string        `json:"routes_path"`
	URL        string        `json:"url"`
	AdminKey   string        `json:"admin_key"`
	APIVersion string        `json:"api_version"`
	Logging    LoggingConfig `json:"logging"`
}

// LoggingConfig selects the logger provider and its threshold.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`

	// AddSource annotates go-logger entries with the calling file and line.
	AddSource bool `json:"add_source"`
}

// LoadOptions tunes defaults that depend on the host rather than the source.
type LoadOptions struct {
	// InstallDir anchors the default routes path. Defaults to the parent of
	// the executable's directory.
	InstallDir string
}

// Load resolves Config from src. Missing values fall back to defaults;
// the admin key has none and is checked by Validate.
func Load(src Source, opts LoadOptions) Config {
	if src == nil {
		src = MapSource{}
	}

	routesPath := first(src, EnvRoutesPath)
	if routesPath == "" {
		installDir := opts.InstallDir
		if installDir == "" {
			installDir = DefaultInstallDir()
		}
		routesPath = filepath.Join(installDir, defaultRoutesPath)
	}

	url := first(src, EnvGhostURL, EnvGhostAdminURL)
	if url == "" {
		url = DefaultURL
	}

	return Config{
		RoutesPath: routesPath,
		URL:        NormalizeURL(url),
		AdminKey:   first(src, EnvAdminAPIKey, EnvAdminKey),
		APIVersion: valueOr(first(src, EnvAPIVersion), DefaultAPIVersion),
		Logging: LoggingConfig{
			Level:  strings.ToLower(valueOr(first(src, EnvLogLevel), DefaultLogLevel)),
			Format: strings.ToLower(valueOr(first(src, EnvLogFormat), DefaultLogFormat)),

			AddSource: parseBool(first(src, EnvLogSource)),
		},
	}
}

// NormalizeURL removes exactly one trailing slash.
func NormalizeURL(url string) string {
	return strings.TrimSuffix(url, "/")
}

// DefaultInstallDir returns the parent of the directory holding the running
// executable, or "." when it cannot be determined.
func DefaultInstallDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(filepath.Dir(exe))
}

// Validate checks the resolved values. The admin key only has to be
// non-empty; its format (id:secret) is left for the server to enforce.
func (c Config) Validate() error {
	errs := validation.Errors{}
	if c.AdminKey == "" {
		errs["admin_key"] = validation.NewError("routes.config.admin_key_required",
			"admin key is required (set "+EnvAdminAPIKey+" or "+EnvAdminKey+")")
	}
	if strings.TrimSpace(c.URL) == "" {
		errs["url"] = validation.NewError("routes.config.url_required", "server url is required")
	}
	if strings.TrimSpace(c.RoutesPath) == "" {
		errs["routes_path"] = validation.NewError("routes.config.routes_path_required", "routes path is required")
	}
	if err := validation.Validate(c.Logging.Level, validation.In(logLevels...)); err != nil {
		errs["logging.level"] = err
	}
	if err := validation.Validate(c.Logging.Format, validation.In(logFormats...)); err != nil {
		errs["logging.format"] = err
	}
	return errs.Filter()
}

// IsMissingAdminKey reports whether err from Validate flags the admin key.
func IsMissingAdminKey(err error) bool {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return false
	}
	_, ok := errs["admin_key"]
	return ok
}

// parseBool reads flags such as "1" or "true"; anything unparsable is false.
func parseBool(value string) bool {
	enabled, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && enabled
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
