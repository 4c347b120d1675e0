package runtimeconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-ghost-routes/internal/runtimeconfig"
)

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg := runtimeconfig.Load(runtimeconfig.MapSource{}, runtimeconfig.LoadOptions{InstallDir: "/srv/site"})

	if want := filepath.Join("/srv/site", "data", "ghost", "settings", "routes.yaml"); cfg.RoutesPath != want {
		t.Fatalf("expected default routes path %s, got %s", want, cfg.RoutesPath)
	}
	if cfg.URL != runtimeconfig.DefaultURL {
		t.Fatalf("expected default url, got %s", cfg.URL)
	}
	if cfg.AdminKey != "" {
		t.Fatalf("expected no default admin key, got %q", cfg.AdminKey)
	}
	if cfg.APIVersion != "v5.0" {
		t.Fatalf("expected default api version v5.0, got %s", cfg.APIVersion)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "console" || cfg.Logging.AddSource {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoad_StripsSingleTrailingSlash(t *testing.T) {
	cases := map[string]string{
		"https://example.com/":  "https://example.com",
		"https://example.com":   "https://example.com",
		"https://example.com//": "https://example.com/",
	}
	for input, want := range cases {
		cfg := runtimeconfig.Load(runtimeconfig.MapSource{runtimeconfig.EnvGhostURL: input}, runtimeconfig.LoadOptions{InstallDir: "."})
		if cfg.URL != want {
			t.Fatalf("url %q: expected %q, got %q", input, want, cfg.URL)
		}
	}
}

func TestLoad_VariablePrecedence(t *testing.T) {
	src := runtimeconfig.MapSource{
		runtimeconfig.EnvGhostURL:      "https://primary.example",
		runtimeconfig.EnvGhostAdminURL: "https://secondary.example",
		runtimeconfig.EnvAdminAPIKey:   "primary:aa",
		runtimeconfig.EnvAdminKey:      "secondary:bb",
	}
	cfg := runtimeconfig.Load(src, runtimeconfig.LoadOptions{InstallDir: "."})
	if cfg.URL != "https://primary.example" {
		t.Fatalf("expected GHOST_URL to win, got %s", cfg.URL)
	}
	if cfg.AdminKey != "primary:aa" {
		t.Fatalf("expected GHOST_ADMIN_API_KEY to win, got %s", cfg.AdminKey)
	}

	fallback := runtimeconfig.MapSource{
		runtimeconfig.EnvGhostURL:      "",
		runtimeconfig.EnvGhostAdminURL: "https://secondary.example/",
		runtimeconfig.EnvAdminKey:      "secondary:bb",
	}
	cfg = runtimeconfig.Load(fallback, runtimeconfig.LoadOptions{InstallDir: "."})
	if cfg.URL != "https://secondary.example" {
		t.Fatalf("expected GHOST_ADMIN_URL fallback, got %s", cfg.URL)
	}
	if cfg.AdminKey != "secondary:bb" {
		t.Fatalf("expected GHOST_ADMIN_KEY fallback, got %s", cfg.AdminKey)
	}
}

func TestLoad_RoutesPathOverride(t *testing.T) {
	cfg := runtimeconfig.Load(runtimeconfig.MapSource{runtimeconfig.EnvRoutesPath: "/tmp/routes.yaml"}, runtimeconfig.LoadOptions{})
	if cfg.RoutesPath != "/tmp/routes.yaml" {
		t.Fatalf("expected override, got %s", cfg.RoutesPath)
	}
}

func TestConfigValidate_RequiresAdminKey(t *testing.T) {
	cfg := runtimeconfig.Load(runtimeconfig.MapSource{}, runtimeconfig.LoadOptions{InstallDir: "."})

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !runtimeconfig.IsMissingAdminKey(err) {
		t.Fatalf("expected missing admin key, got %v", err)
	}
}

func TestConfigValidate_AcceptsResolvedConfig(t *testing.T) {
	cfg := runtimeconfig.Load(runtimeconfig.MapSource{runtimeconfig.EnvAdminAPIKey: "not-even-split"}, runtimeconfig.LoadOptions{InstallDir: "."})
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestLoad_LogSourceFlag(t *testing.T) {
	cases := map[string]bool{"true": true, "1": true, " TRUE ": true, "false": false, "yes": false}
	for input, want := range cases {
		cfg := runtimeconfig.Load(runtimeconfig.MapSource{runtimeconfig.EnvLogSource: input}, runtimeconfig.LoadOptions{InstallDir: "."})
		if cfg.Logging.AddSource != want {
			t.Fatalf("ROUTES_LOG_SOURCE=%q: expected %v, got %v", input, want, cfg.Logging.AddSource)
		}
	}
}

func TestConfigValidate_AcceptsWhitespaceAdminKey(t *testing.T) {
	cfg := runtimeconfig.Load(runtimeconfig.MapSource{runtimeconfig.EnvAdminAPIKey: "  "}, runtimeconfig.LoadOptions{InstallDir: "."})
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected non-empty key to pass local validation, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLogging(t *testing.T) {
	cfg := runtimeconfig.Load(runtimeconfig.MapSource{
		runtimeconfig.EnvAdminAPIKey: "id:secret",
		runtimeconfig.EnvLogFormat:   "xml",
	}, runtimeconfig.LoadOptions{InstallDir: "."})

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected logging format error")
	}
	if runtimeconfig.IsMissingAdminKey(err) {
		t.Fatalf("did not expect admin key error, got %v", err)
	}
}

func TestDotenvSource_ProcessValuesWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "GHOST_URL=https://dotenv.example\nGHOST_ADMIN_API_KEY=dotenv:aa\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	src, err := runtimeconfig.DotenvSource(path, runtimeconfig.MapSource{
		runtimeconfig.EnvGhostURL: "https://process.example",
	})
	if err != nil {
		t.Fatalf("DotenvSource returned error: %v", err)
	}

	cfg := runtimeconfig.Load(src, runtimeconfig.LoadOptions{InstallDir: "."})
	if cfg.URL != "https://process.example" {
		t.Fatalf("expected process value to win, got %s", cfg.URL)
	}
	if cfg.AdminKey != "dotenv:aa" {
		t.Fatalf("expected dotenv admin key, got %s", cfg.AdminKey)
	}
}

func TestDotenvSource_MissingFileIsIgnored(t *testing.T) {
	primary := runtimeconfig.MapSource{"A": "1"}
	src, err := runtimeconfig.DotenvSource(filepath.Join(t.TempDir(), "missing.env"), primary)
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if value, ok := src.Lookup("A"); !ok || value != "1" {
		t.Fatalf("expected primary source passthrough, got %q %v", value, ok)
	}
}
