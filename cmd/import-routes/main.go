package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-ghost-routes/cmd/import-routes/internal/bootstrap"
	"github.com/goliatone/go-ghost-routes/internal/logging"
	"github.com/goliatone/go-ghost-routes/internal/routes"
	"github.com/goliatone/go-ghost-routes/internal/runtimeconfig"
)

func main() {
	os.Exit(run(context.Background(), runtimeconfig.EnvSource{}, os.Stdout, os.Stderr))
}

func run(ctx context.Context, env runtimeconfig.Source, stdout, stderr io.Writer) int {
	envFile, _ := env.Lookup(runtimeconfig.EnvEnvFile)
	src, err := runtimeconfig.DotenvSource(envFile, env)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read env file %s: %v\n", envFile, err)
		return routes.ExitLocalError
	}

	cfg := runtimeconfig.Load(src, runtimeconfig.LoadOptions{})
	provider := bootstrap.LoggerProvider(cfg.Logging, stderr)

	importer := &routes.Importer{
		Stdout:        stdout,
		Stderr:        stderr,
		NewEditor:     bootstrap.EditorFactory(provider, nil),
		Logger:        logging.ImporterLogger(provider),
		CommandLogger: logging.CommandLogger(provider, "routes"),
	}
	code, _ := importer.Run(ctx, cfg)
	return code
}
