package internal

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"nlp_qa/internal/cli"
	"nlp_qa/internal/config"
	"nlp_qa/internal/llm"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"
)

func TestMissingCredentialNeverBuildsRunner(t *testing.T) {
	var (
		runner *cli.Runner
		client *llm.Client
	)
	cfg := config.Default()
	cfg.LogFile = ""

	app := fxtest.New(t,
		fx.Supply(zaptest.NewLogger(t)),
		fx.Supply(cfg),
		modules(),
		fx.Populate(&runner, &client),
	)

	err := app.Err()
	if err == nil {
		t.Fatal("expected startup to fail without a credential")
	}
	if !errors.Is(startupError(err), llm.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if runner != nil || client != nil {
		t.Fatal("runner and client must not be constructed")
	}
}

func TestGraphBuildsWithCredential(t *testing.T) {
	var runner *cli.Runner
	cfg := config.Default()
	cfg.GeminiAPIKey = "test-key"
	cfg.LLMBackend = "rest"
	cfg.LogFile = filepath.Join(t.TempDir(), "nlp-qa.log")

	app := fxtest.New(t,
		fx.Supply(zaptest.NewLogger(t)),
		fx.Supply(cfg),
		modules(),
		fx.Populate(&runner),
	)
	app.RequireStart()
	defer app.RequireStop()

	if runner == nil {
		t.Fatal("runner was not populated")
	}
}

func TestStartupErrorFallsBackToRootCause(t *testing.T) {
	cause := errors.New("disk full")
	err := startupError(fmt.Errorf("opening log: %w", cause))
	if !errors.Is(err, cause) {
		t.Fatalf("unexpected error %v", err)
	}
}
