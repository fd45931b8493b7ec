package lib

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Tolerance used when comparing a result against an expected value.
const expectedTolerance = 0.0001

// Calculation is one line of a batch file. A line is either a bare
// expression or "expression = expected" where expected is a number or the
// word "error".
type Calculation struct {
	File        string
	Line        int
	Expr        string
	Value       float64
	Err         error
	Expected    *float64
	ExpectError bool
}

// HasExpectation reports whether the line said what the result should be.
func (c Calculation) HasExpectation() bool {
	return c.Expected != nil || c.ExpectError
}

// Passed reports whether the evaluation matched the line's expectation. A
// line with no expectation passes when it evaluated without error.
func (c Calculation) Passed() bool {
	if c.ExpectError {
		return c.Err != nil
	}
	if c.Err != nil {
		return false
	}
	if c.Expected == nil {
		return true
	}
	return math.Abs(c.Value-*c.Expected) < expectedTolerance
}

func ReadCalculationsFromDir(dir string, ev Evaluator) ([]Calculation, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	calculations := []Calculation{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filePath := filepath.Join(dir, entry.Name())
		calcs, err := ReadCalculationsFromFile(filePath, ev)
		if err != nil {
			return nil, err
		}
		calculations = append(calculations, calcs...)
	}

	return calculations, nil
}

func ReadCalculationsFromFile(filePath string, ev Evaluator) ([]Calculation, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCalculations(file, filePath, ev)
}

// ReadCalculations evaluates every expression line in r. Blank lines and
// lines starting with '#' are skipped. Only read errors and unparseable
// expectations are returned as errors; evaluation failures end up in
// Calculation.Err.
func ReadCalculations(r io.Reader, name string, ev Evaluator) ([]Calculation, error) {
	calculations := []Calculation{}
	lines := NewLineReader(r)
	lineNum := 0

	for {
		text, more, err := lines.Next()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if !more {
			break
		}

		lineNum++
		line := strings.TrimSpace(text)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		calc := Calculation{File: name, Line: lineNum, Expr: line}

		if i := strings.LastIndex(line, "="); i >= 0 {
			calc.Expr = strings.TrimSpace(line[:i])
			expected := strings.TrimSpace(line[i+1:])
			if strings.EqualFold(expected, "error") {
				calc.ExpectError = true
			} else {
				value, err := strconv.ParseFloat(expected, 64)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: invalid expected value %q: %w", name, lineNum, expected, err)
				}
				calc.Expected = &value
			}
		}

		calc.Value, calc.Err = ev.Evaluate(calc.Expr)
		calculations = append(calculations, calc)
	}

	return calculations, nil
}
