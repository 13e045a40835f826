package internal

import (
	"context"
	"errors"

	"nlp_qa/internal/cli"
	"nlp_qa/internal/config"
	"nlp_qa/internal/llm"
	"nlp_qa/internal/logging"

	"github.com/go-core-fx/logger"
	"go.uber.org/dig"
	"go.uber.org/fx"
)

// modules wires everything below config and the base logger.
func modules() fx.Option {
	return fx.Options(
		logging.Module(),
		llm.Module(),
		cli.Module(),
	)
}

func Run() error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		modules(),
		fx.Populate(&runner),
	)
	if err := app.Err(); err != nil {
		return startupError(err)
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return startupError(err)
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}

// startupError strips the fx graph context so the user sees the cause.
func startupError(err error) error {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return llm.ErrMissingAPIKey
	}
	return dig.RootCause(err)
}
