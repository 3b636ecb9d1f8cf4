// Package cli provides the command-line interface for pixels.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ironsheep/pixels-mcp/internal/config"
	"github.com/ironsheep/pixels-mcp/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app carries the settings resolved for one invocation.
type app struct {
	cfg config.Config
	log zerolog.Logger

	logLevel  string
	logFormat string
	threshold int
	timeout   time.Duration
}

// NewRootCmd builds the pixels command tree. Each call returns an
// independent tree so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pixels",
		Short: "Abstract and negate images from the command line",
		Long: `pixels posterises images by merging connected pixels of similar color
into regions painted with their average color, and inverts images channel by
channel.

Settings default to the PIXELS_* environment variables used by pixels-mcp;
flags override them.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	rootCmd.SetVersionTemplate(versionString() + "\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", config.FormatConsole, "log format (console, json)")
	flags.IntVar(&a.threshold, "threshold", 0, "color distance below which neighbors merge (1-766)")
	flags.DurationVar(&a.timeout, "timeout", 0, "abort an abstract run after this long (0 = no limit)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAbstractCmd(a))
	rootCmd.AddCommand(newNegateCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))

	return rootCmd
}

// resolve merges the environment with any flags the user set and builds a
// logger writing to logOut.
func (a *app) resolve(flags *pflag.FlagSet, logOut io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	if flags.Changed("log-level") {
		if err := cfg.SetLogLevel(a.logLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	} else if os.Getenv(config.EnvLogLevel) == "" {
		cfg.LogLevel = zerolog.WarnLevel
	}
	if flags.Changed("log-format") {
		if err := cfg.SetLogFormat(a.logFormat); err != nil {
			return fmt.Errorf("invalid --log-format: %w", err)
		}
	} else if os.Getenv(config.EnvLogFormat) == "" {
		cfg.LogFormat = config.FormatConsole
	}
	if flags.Changed("threshold") {
		cfg.Threshold = a.threshold
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.log = logger.New(logOut, cfg)
	return nil
}

func versionString() string {
	return fmt.Sprintf("pixels %s (built %s, commit %s)", Version, BuildTime, GitCommit)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}
