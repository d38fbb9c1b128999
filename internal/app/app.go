// Package app wires configuration, matrix generation, the reduction run and
// its presentation into a single Application.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/agbru/matreduce/internal/config"
	apperrors "github.com/agbru/matreduce/internal/errors"
	"github.com/agbru/matreduce/internal/logging"
	"github.com/agbru/matreduce/internal/partition"
	"github.com/agbru/matreduce/internal/ui"
)

// Application represents the matreduce application instance.
type Application struct {
	Config    config.AppConfig
	Factory   *partition.Factory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom strategy factory for the application.
func WithFactory(f *partition.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "matreduce"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Factory == nil {
		app.Factory = partition.NewDefaultFactory(cfg.Cursor)
	}
	if app.Logger == nil {
		if cfg.LogFormat == config.LogFormatJSON {
			app.Logger = logging.NewLogger(errWriter, "matreduce")
		} else {
			app.Logger = logging.NewDefaultLogger(errWriter, cfg.NoColor)
		}
	}
	return app, nil
}

// Run executes the reduction and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	return a.runReduce(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

// StartupExitCode returns the exit code for an error returned by New.
// Configuration errors are printed to errWriter; flag errors have already
// been reported along with the usage.
func StartupExitCode(err error, errWriter io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	var cfgErr apperrors.ConfigError
	var valErr apperrors.ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return apperrors.HandleError(err, errWriter)
	}
	return apperrors.ExitErrorGeneric
}
