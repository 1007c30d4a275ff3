package cmd

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Wosser1sProductions/utils/core/config"
	liberr "github.com/Wosser1sProductions/utils/core/error"
	"github.com/Wosser1sProductions/utils/core/errors"
	"github.com/Wosser1sProductions/utils/core/log"
)

// AppName names the config file and its XDG directory.
const AppName = "strutils"

// EnvPrefix prefixes every environment override, e.g. UTILS_SPLIT_DELIMITER.
const EnvPrefix = "UTILS"

var (
	cfgFile   string
	envFile   string
	logLevel  string
	logFormat string
	verbose   bool
)

// state shared by all subcommands, set up before each run
var (
	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "strutils",
	Short: "String helpers and Doxygen navigation index checks",
	Long: `strutils exposes the stringx helpers on the command line and checks
Doxygen navtree index files.

Text is taken from the arguments (joined by a space) or, without
arguments, from stdin.

Defaults are read from strutils.toml or strutils.yaml in the working
directory or $XDG_CONFIG_HOME/strutils, and can be overridden by UTILS_*
environment variables (also read from ./.env) and by flags.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps err to the process exit status: 2 for bad input, 1 for
// everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded *liberr.Error
	if !goerrors.As(err, &coded) {
		return 1
	}
	if coded.Severity() == liberr.SeverityLow {
		return 2
	}
	return coded.Code().ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./strutils.toml or ./strutils.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file with UTILS_* overrides")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console, logfmt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (log level debug)")
}

func setup(cmd *cobra.Command, args []string) error {
	required := cmd.Flags().Changed("env-file")
	envVars, err := config.LoadEnvFile(envFile, required)
	if err != nil {
		return errors.ConfigFailed("load_env", envFile, err)
	}

	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded
	if err := checkDefaults(cfg); err != nil {
		return err
	}

	lg, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = lg.WithCorrelationID(uuid.New().String()).WithField("command", cmd.Name())

	logger.Debug("configuration loaded",
		log.String("file", cfg.FilePath()),
		log.Int("env_file_vars", envVars))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Discover(config.DefaultDiscoveryOptions(AppName, EnvPrefix))
	}

	loaded, err := config.LoadWithOptions(cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, errors.ConfigFailed("load", cfgFile, err)
	}
	return loaded, nil
}

func newLogger(out io.Writer) (*log.Logger, error) {
	levelName := logLevel
	if levelName == "" {
		levelName = cfg.GetString("log.level", log.DefaultLevel().String())
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleCLI, "log_level", levelName, "trace, debug, info, warn, error or fatal")
	}
	if verbose && level > log.LevelDebug {
		level = log.LevelDebug
	}

	formatName := logFormat
	if formatName == "" {
		formatName = cfg.GetString("log.format", log.FormatText.String())
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleCLI, "log_format", formatName, "text, json, console or logfmt")
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "strutils",
	}), nil
}

func reportError(w io.Writer, err error) {
	if logger != nil {
		logger.LogError(err)
	}
	fmt.Fprintf(w, "strutils: %v\n", err)
}

// inputText joins args with a space or, without args, reads all of stdin.
// One trailing line break from stdin is dropped.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := readStdin(cmd)
	if err != nil {
		return "", err
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func readStdin(cmd *cobra.Command) ([]byte, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return nil, errors.InvalidInput(errors.ModuleCLI, cmd.Name(), "terminal", "text as arguments or on stdin")
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, liberr.Wrap(err, "failed to read stdin").
			WithCode(liberr.CodeInternal).
			WithOperation("cli." + cmd.Name())
	}
	return data, nil
}

// singleByte validates a one-byte flag or config value such as a delimiter.
func singleByte(name, value string) (byte, error) {
	if len(value) != 1 {
		return 0, errors.InvalidInput(errors.ModuleCLI, name, value, "a single byte")
	}
	return value[0], nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
