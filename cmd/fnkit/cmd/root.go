package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/fnkit/foundation/core/error"
	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
	mdwlog "github.com/msto63/fnkit/foundation/core/log"
	"github.com/msto63/fnkit/foundation/utils/fnx"
	"github.com/msto63/fnkit/pkg/core/config"
	"github.com/msto63/fnkit/pkg/core/logging"
)

// app carries the state shared by the commands of one run
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	config func() loaded
	log    *mdwlog.Logger
}

type loaded struct {
	cfg *config.Config
	err error
}

// NewRootCommand builds the fnkit command tree
func NewRootCommand() *cobra.Command {
	a := &app{}
	a.config = fnx.Memoize(func() loaded {
		cfg, err := a.readConfig()
		return loaded{cfg: cfg, err: err}
	})

	rootCmd := &cobra.Command{
		Use:   "fnkit",
		Short: "fnkit - string, markup and document field utilities",
		Long: `fnkit exposes the fnkit library on the command line.

Commands:
  tag      - length, padding, cropping and rendering of tagged text
  str      - case conversion, segments, truncation and padding
  field    - read and edit fields of JSON, YAML and TOML documents
  version  - show version information

Text is taken from the arguments, or from stdin when none are given.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $FNKIT_CONFIG, ./fnkit.toml, ~/.config/fnkit/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json, text, console or logfmt")

	rootCmd.AddCommand(
		newTagCmd(a),
		newStrCmd(a),
		newFieldCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line and reports a failure on stderr
func Execute() error {
	return run(NewRootCommand(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func (a *app) readConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	return config.LoadFromEnv()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	l := a.config()
	if l.err != nil {
		return l.err
	}

	level := l.cfg.General.LogLevel
	if a.verbose {
		level = "debug"
	}
	format := l.cfg.General.LogFormat
	if a.logFormat != "" {
		if _, err := mdwlog.ParseFormat(a.logFormat); err != nil {
			return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "setup", a.logFormat, "--log-format json, text, console or logfmt")
		}
		format = a.logFormat
	}

	a.log = logging.NewLogger(logging.LoggerConfig{
		Name:   "fnkit",
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	a.log.Debug("command started", logging.KV("command", cmd.CommandPath(), "args", len(args)))
	return nil
}

// cfg returns the loaded configuration. Only valid after setup.
func (a *app) cfg() *config.Config {
	return a.config().cfg
}

// fail logs err and returns it to cobra. Structured errors are logged with
// their code and details at the level of their severity.
func (a *app) fail(err error) error {
	if err == nil || a.log == nil {
		return err
	}
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		a.log.LogError(err)
	} else {
		a.log.ErrorWithErr("command failed", err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "fnkit: %v\n", err)
}

// inputText joins the arguments, or reads stdin when there are none. One
// trailing newline is removed from stdin.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
