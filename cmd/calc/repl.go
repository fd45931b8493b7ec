package main

import (
	"fmt"
	"io"

	"github.com/graeme-hill/calcstuff-go/lib"
)

const exitCommand = "q"

func runRepl(in io.Reader, out io.Writer, s *session, prompt bool) error {
	log := s.log.WithPrefix("repl")
	fmt.Fprintln(out, "Enter expressions or 'q' to exit:")

	lines := lib.NewLineReader(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		line, more, err := lines.Next()
		if err != nil {
			log.Error("reading input: %v", err)
			return err
		}
		if !more {
			return nil
		}

		if line == exitCommand {
			return nil
		}
		if line == "" {
			continue
		}

		value, err := s.ev.Evaluate(line)
		if err != nil {
			log.Debug("%q rejected (%s): %v", line, errorKind(err), err)
			printInvalid(out)
			continue
		}
		log.Debug("%q = %s", line, formatValue(value))
		fmt.Fprintln(out, formatValue(value))
	}
}
