package main

import (
	"fmt"
	"os"

	"github.com/graeme-hill/calcstuff-go/internal/logger"
	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate each argument and print its value",
		Example: `  calc eval "2+3*4" 10/-2
  calc eval -- -5+10`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				out := cmd.OutOrStdout()
				log := s.log.WithPrefix("eval")
				failed := 0
				for _, expr := range args {
					if log.GetLevel() == logger.LevelDebug {
						if canonical, err := lib.Canonical(expr); err == nil {
							log.Debug("%q canonical form %q", expr, canonical)
						}
					}
					value, err := s.ev.Evaluate(expr)
					if err != nil {
						failed++
						log.Debug("%q rejected: %v", expr, err)
						errorColor.Fprintf(out, "%s: invalid expression (%s)\n", expr, errorKind(err))
						continue
					}
					fmt.Fprintln(out, formatValue(value))
				}
				if failed > 0 {
					log.Warn("%d of %d expressions were invalid", failed, len(args))
					return fmt.Errorf("%d of %d expressions were invalid", failed, len(args))
				}
				return nil
			})
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file|dir>",
		Short: "Evaluate every line of a file, or of every file in a directory",
		Long: `Run evaluates one expression per line. Blank lines and lines starting
with '#' are ignored. A line may state its expected result as
"expression = value" or "expression = error".`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				log := s.log.WithPrefix("run")
				log.Info("evaluating %s in %s mode", args[0], s.ev.Mode)
				calcs, err := readCalculations(args[0], s.ev)
				if err != nil {
					log.Error("reading %s: %v", args[0], err)
					return err
				}
				failed := printCalculations(cmd, calcs)
				log.Info("%d of %d calculations passed", len(calcs)-failed, len(calcs))
				if failed > 0 {
					return fmt.Errorf("%d of %d calculations failed", failed, len(calcs))
				}
				return nil
			})
		},
	}
}

func readCalculations(path string, ev lib.Evaluator) ([]lib.Calculation, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return lib.ReadCalculationsFromDir(path, ev)
	}
	return lib.ReadCalculationsFromFile(path, ev)
}

func printCalculations(cmd *cobra.Command, calcs []lib.Calculation) int {
	out := cmd.OutOrStdout()
	failed := 0

	for _, calc := range calcs {
		result := formatValue(calc.Value)
		if calc.Err != nil {
			result = errorKind(calc.Err)
		}

		status := passColor.Sprint("PASS")
		if !calc.Passed() {
			status = errorColor.Sprint("FAIL")
			failed++
		}

		expected := ""
		if calc.HasExpectation() {
			if calc.ExpectError {
				expected = " (expected error)"
			} else {
				expected = fmt.Sprintf(" (expected %s)", formatValue(*calc.Expected))
			}
		}

		fmt.Fprintf(out, "%s:%d  %-20s -> %s%s  %s\n", calc.File, calc.Line, calc.Expr, result, expected, status)
	}

	fmt.Fprintf(out, "\nResults: %d/%d passed\n", len(calcs)-failed, len(calcs))
	return failed
}
