package lib

import (
	"fmt"
	"strings"
)

// Mode selects how division behaves.
type Mode int

const (
	// ModeDecimal divides in floating point: 7/2 is 3.5.
	ModeDecimal Mode = iota
	// ModeInteger truncates every quotient toward zero: 7/2 is 3, -7/2 is -3.
	ModeInteger
)

func (m Mode) String() string {
	switch m {
	case ModeDecimal:
		return "decimal"
	case ModeInteger:
		return "integer"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decimal":
		return ModeDecimal, nil
	case "integer", "int":
		return ModeInteger, nil
	}
	return ModeDecimal, fmt.Errorf("Unknown mode %q, expected decimal or integer", s)
}

// Evaluator runs the normalize, validate, tokenize and parse pipeline. The
// zero value evaluates in ModeDecimal. An Evaluator holds no per-call state
// and can be shared freely.
type Evaluator struct {
	Mode Mode
}

// Evaluate returns the value of expression or an *Error describing why it
// could not be computed. No partial result is ever returned.
func (ev Evaluator) Evaluate(expression string) (float64, error) {
	expr := RemoveSpaces(expression)
	if err := Validate(expr); err != nil {
		return 0, err
	}

	buffer := newTokenBuffer()
	if err := lex(expr, buffer.Write); err != nil {
		return 0, err
	}
	buffer.Done()

	p := parser{reader: buffer, mode: ev.Mode}
	value, err := p.scan()
	if err != nil {
		return 0, err
	}
	if value == 0 {
		// "0*-5" should print as 0, not -0
		value = 0
	}
	return value, nil
}

// Evaluate evaluates expression in ModeDecimal.
func Evaluate(expression string) (float64, error) {
	return Evaluator{}.Evaluate(expression)
}
