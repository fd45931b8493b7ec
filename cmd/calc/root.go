package main

import (
	"os"

	"github.com/graeme-hill/calcstuff-go/internal/logger"
	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/spf13/cobra"
)

type options struct {
	mode     string
	logLevel string
	logFile  string
	verbose  bool
}

// session is what every command needs once flags are parsed.
type session struct {
	ev  lib.Evaluator
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates expressions made of whole numbers and the operators
+, -, *, and /. Multiplication and division bind tighter than addition and
subtraction, and a '-' directly after '*' or '/' negates the next number.

With no subcommand calc reads one expression per line until it sees 'q'.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				in := cmd.InOrStdin()
				return runRepl(in, cmd.OutOrStdout(), s, promptEnabled(in))
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.mode, "mode", envOr("CALC_MODE", "decimal"), "Division mode: decimal or integer")
	flags.StringVar(&opts.logLevel, "log-level", envOr("CALC_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error or none")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level, overriding --log-level")

	rootCmd.AddCommand(newEvalCmd(opts), newRunCmd(opts))
	return rootCmd
}

func withSession(opts *options, fn func(*session) error) error {
	mode, err := lib.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.ParseLevel(opts.logLevel), opts.logFile, "calc")
	if err != nil {
		return err
	}
	defer log.Close()
	if opts.verbose {
		log.SetLevel(logger.LevelDebug)
	}

	log.Debug("mode %s", mode)
	return fn(&session{ev: lib.Evaluator{Mode: mode}, log: log})
}

func envOr(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
