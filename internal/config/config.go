// Package config turns command-line flags, MATREDUCE_* environment variables
// and an optional config file into a validated AppConfig.
//
// Priority, highest first: flags, environment, config file, defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperrors "github.com/agbru/matreduce/internal/errors"
	"github.com/agbru/matreduce/internal/matrix"
	"github.com/agbru/matreduce/internal/partition"
	"github.com/agbru/matreduce/internal/ui"
)

// EnvPrefix prefixes every environment override, e.g. MATREDUCE_THREADS.
const EnvPrefix = "MATREDUCE"

// Log formats accepted by --log-format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Dynamic selects dynamic partitioning; static otherwise.
	Dynamic bool
	// Compare runs every strategy on the same matrix and cross-checks them.
	Compare bool
	// RequestedWorkers is the worker count as given, before clamping.
	RequestedWorkers int
	// Workers is the clamped worker count actually used.
	Workers int
	// HardwareThreads is the upper clamp bound observed at startup.
	HardwareThreads int
	Rows            int
	Cols            int
	Seed            uint64
	Cursor          partition.CursorKind
	Quiet           bool
	Verbose         bool
	NoColor         bool
	// Theme names the color theme; NoColor and NO_COLOR override it.
	Theme string
	// LogFormat is "console" or "json".
	LogFormat string
	// Metrics dumps the Prometheus exposition after the run.
	Metrics    bool
	ConfigFile string
}

// Strategy returns the name of the strategy selected by Dynamic.
func (c AppConfig) Strategy() string {
	if c.Dynamic {
		return partition.DynamicName
	}
	return partition.StaticName
}

func newFlagSet(programName string, errWriter io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.SortFlags = false

	threads := workerCount(DefaultWorkers)
	fs.BoolP("dynamic", "d", false, "Use dynamic load-balancing (default: static)")
	fs.VarP(&threads, "threads", "t", "Number of worker threads, clamped to [2, hardware threads]")
	fs.Int("rows", matrix.DefaultRows, "Number of matrix rows")
	fs.Int("cols", matrix.DefaultCols, "Number of matrix columns")
	fs.Uint64("seed", matrix.DefaultSeed, "Seed for the pseudo-random matrix fill")
	fs.String("cursor", string(partition.AtomicCursorKind), "Dynamic cursor implementation (atomic|mutex)")
	fs.Bool("compare", false, "Run static and dynamic partitioning and cross-check the results")
	fs.BoolP("quiet", "q", false, "Print only the gross sum")
	fs.BoolP("verbose", "v", false, "Print a per-worker table, memory and system statistics")
	fs.Bool("no-color", false, "Disable colored output (NO_COLOR is honoured too)")
	fs.String("theme", ui.DarkThemeName, "Color theme ("+strings.Join(ui.ThemeNames(), "|")+")")
	fs.String("log-format", LogFormatConsole, "Log format on stderr (console|json)")
	fs.Bool("metrics", false, "Print Prometheus metrics after the run")
	fs.String("config", "", "Optional config file (yaml|toml|json)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [-d] [-t num] [options]\n", programName)
		fmt.Fprintf(errWriter, "    -d Use dynamic load-balancing. (Default: static)\n")
		fmt.Fprintf(errWriter, "    -t Specifies the number of threads to use. (Default: %d)\n", DefaultWorkers)
		fmt.Fprintf(errWriter, "\nOptions:\n%s", fs.FlagUsages())
		fmt.Fprintf(errWriter, "\nEvery option can also be set through %s_<NAME> (e.g. %s_THREADS).\n", EnvPrefix, EnvPrefix)
	}
	return fs
}

// ParseConfig parses args (without the program name). Unknown flags print the
// error and the usage to errWriter. --help prints the usage and returns an
// error matching pflag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := newFlagSet(programName, errWriter)
	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(errWriter, err)
			fs.Usage()
		}
		return AppConfig{}, err
	}

	v, err := load(fs)
	if err != nil {
		return AppConfig{}, err
	}

	cursor, err := partition.ParseCursorKind(v.GetString("cursor"))
	if err != nil {
		return AppConfig{}, err
	}

	hw := HardwareThreads()
	cfg := AppConfig{
		Dynamic:          v.GetBool("dynamic"),
		Compare:          v.GetBool("compare"),
		RequestedWorkers: v.GetInt("threads"),
		HardwareThreads:  hw,
		Rows:             v.GetInt("rows"),
		Cols:             v.GetInt("cols"),
		Seed:             v.GetUint64("seed"),
		Cursor:           cursor,
		Quiet:            v.GetBool("quiet"),
		Verbose:          v.GetBool("verbose"),
		NoColor:          v.GetBool("no-color"),
		Theme:            v.GetString("theme"),
		LogFormat:        v.GetString("log-format"),
		Metrics:          v.GetBool("metrics"),
		ConfigFile:       v.GetString("config"),
	}
	cfg.Workers = ClampWorkers(cfg.RequestedWorkers, hw)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// load layers environment variables and the optional config file under the
// parsed flags.
func load(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, apperrors.WrapError(err, "bind flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.NewConfigError("read config file %s: %v", file, err)
		}
	}
	return v, nil
}

// Validate rejects settings no run can use.
func (c AppConfig) Validate() error {
	if c.Rows <= 0 {
		return apperrors.ValidationError{Field: "rows", Message: fmt.Sprintf("must be positive, got %d", c.Rows)}
	}
	if c.Cols <= 0 {
		return apperrors.ValidationError{Field: "cols", Message: fmt.Sprintf("must be positive, got %d", c.Cols)}
	}
	if _, ok := ui.ParseTheme(c.Theme); !ok {
		return apperrors.NewConfigError("unknown theme %q (expected %s)", c.Theme, strings.Join(ui.ThemeNames(), "|"))
	}
	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		return apperrors.NewConfigError("unknown log format %q (expected %s|%s)", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}
