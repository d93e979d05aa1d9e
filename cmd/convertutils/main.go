// Package main provides the convertutils command line tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands once the root has loaded config.
type app struct {
	configPath string
	verbose    bool

	cfg    *Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "convertutils",
		Short: "Convert between text, fixed-width numbers and hex",
		Long: `convertutils parses and formats fixed-width numbers and encodes
bytes as uppercase hexadecimal.

Commands:
  parse      Parse text as a numeric type
  format     Format a numeric value, optionally with a precision
  hex        Encode or decode hexadecimal text
  selftest   Run the built-in conversion checks`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default .convertutils.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newFormatCmd(a))
	rootCmd.AddCommand(newHexCmd(a))
	rootCmd.AddCommand(newSelftestCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// version needs no config; overriding the root hook skips loading it
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "convertutils %s\n", version)
		},
	}
}
