package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-ghost-routes/pkg/interfaces"
)

type recordingLogger struct {
	fields []map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, fields)
	return r
}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, importerModule)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger.WithContext(context.Background()).Debug("noop")
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	ImporterLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != importerModule {
		t.Fatalf("expected module %s, got %v", importerModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != importerModule {
		t.Fatalf("expected module field, got %v", rec.fields)
	}
}

func TestCommandLoggerDefaultsModuleName(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	CommandLogger(provider, " ")

	if provider.requested[0] != commandsModule+".core" {
		t.Fatalf("expected core command module, got %v", provider.requested)
	}
	last := rec.fields[len(rec.fields)-1]
	if last["component"] != "command" || last["command_module"] != "core" {
		t.Fatalf("unexpected command fields %v", last)
	}
}

func TestWithFieldsCopiesInput(t *testing.T) {
	rec := &recordingLogger{}
	fields := map[string]any{"path": "routes.yaml"}

	WithFields(rec, fields)
	fields["path"] = "changed"

	if rec.fields[0]["path"] != "routes.yaml" {
		t.Fatalf("expected fields to be copied, got %v", rec.fields[0])
	}
	if got := WithFields(rec, nil); got != rec {
		t.Fatal("expected empty fields to return the same logger")
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "a"})
	ctx = ContextWithFields(ctx, map[string]any{"field": "routes"})

	fields := ContextFields(ctx)
	if fields["request_id"] != "a" || fields["field"] != "routes" {
		t.Fatalf("expected merged fields, got %v", fields)
	}

	fields["request_id"] = "mutated"
	if ContextFields(ctx)["request_id"] != "a" {
		t.Fatal("expected ContextFields to return a copy")
	}
	if ContextFields(context.Background()) != nil {
		t.Fatal("expected nil fields for bare context")
	}
}
