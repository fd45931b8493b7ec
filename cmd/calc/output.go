package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/graeme-hill/calcstuff-go/lib"
	"golang.org/x/term"
)

const (
	invalidInputMessage = "Invalid input! Please use only whole numbers, +, -, *, and /"
	examplesMessage     = "Examples: 5+3, -10+25, 6*7, 15/3, 5*-3, 10/-2"
)

var (
	errorColor = color.New(color.FgRed)
	passColor  = color.New(color.FgGreen)
)

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// printInvalid writes the same message for every kind of evaluation failure.
func printInvalid(out io.Writer) {
	errorColor.Fprintln(out, invalidInputMessage)
	fmt.Fprintln(out, examplesMessage)
}

func errorKind(err error) string {
	var evalErr *lib.Error
	if errors.As(err, &evalErr) {
		return evalErr.Kind.String()
	}
	return "error"
}

func promptEnabled(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
