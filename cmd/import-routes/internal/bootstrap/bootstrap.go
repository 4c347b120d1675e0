package bootstrap

import (
	"io"
	"net/http"

	"github.com/goliatone/go-ghost-routes/internal/ghostadmin"
	"github.com/goliatone/go-ghost-routes/internal/logging"
	"github.com/goliatone/go-ghost-routes/internal/logging/console"
	"github.com/goliatone/go-ghost-routes/internal/logging/gologger"
	"github.com/goliatone/go-ghost-routes/internal/routes"
	"github.com/goliatone/go-ghost-routes/internal/runtimeconfig"
	"github.com/goliatone/go-ghost-routes/pkg/interfaces"
)

// LoggerProvider selects the provider for cfg.Format. The console provider
// writes to w; go-logger formats ("json", "pretty") use go-logger's own
// output and honour cfg.AddSource. Unknown values fall back to the console
// provider so the configuration error can still be reported.
func LoggerProvider(cfg runtimeconfig.LoggingConfig, w io.Writer) interfaces.LoggerProvider {
	switch cfg.Format {
	case "json", "pretty":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
		if err == nil {
			return provider
		}
	}
	level, ok := console.ParseLevel(cfg.Level)
	if !ok {
		level = console.LevelError
	}
	return console.NewProvider(console.Options{Writer: w, MinLevel: level})
}

// EditorFactory returns a routes.EditorFactory that builds Ghost Admin API
// clients. A nil httpClient uses http.DefaultClient.
func EditorFactory(provider interfaces.LoggerProvider, httpClient *http.Client) routes.EditorFactory {
	return func(cfg runtimeconfig.Config) (interfaces.SettingsEditor, error) {
		return ghostadmin.New(cfg.URL, cfg.AdminKey,
			ghostadmin.WithVersion(cfg.APIVersion),
			ghostadmin.WithHTTPClient(httpClient),
			ghostadmin.WithLogger(logging.AdminLogger(provider)),
		), nil
	}
}
