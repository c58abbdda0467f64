// Command urlkit parses, normalizes and compares URLs from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/gotypes/internal/errorutil"
	"github.com/ghettovoice/gotypes/internal/log"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.LookupEnv).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns 2 for input that could not be parsed or converted, 1 otherwise.
func exitCode(err error) int {
	if errorutil.IsGrammarErr(err) || errorutil.IsConversionErr(err) {
		return 2
	}
	return 1
}

type rootFlags struct {
	dev      bool
	logLevel string
}

func newRootCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "urlkit",
		Short: "Inspect and manipulate URLs",
		Long: `urlkit decomposes URLs into scheme, credentials, host, port,
path segments, query parameters and fragment, and rebuilds them after edits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(flags.logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", flags.logLevel, err)
			}
			log.SetDefault(log.New(cmd.ErrOrStderr(), flags.dev, level))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.dev, "dev", false, "Use the developer log format")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		parseCmd(),
		tidyCmd(),
		compareCmd(),
		segmentCmd(),
		paramCmd(),
		validateCmd(),
		currentCmd(lookupEnv),
		versionCmd(),
	)

	return rootCmd
}
