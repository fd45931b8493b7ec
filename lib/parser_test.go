package lib

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func num(v float64, text string) token {
	return token{tokType: tokenTypeNumber, value: v, text: []rune(text)}
}

func op(typ tokenType) token {
	return token{tokType: typ}
}

func parseTokens(mode Mode, tokens ...token) (float64, error) {
	buf := newTokenBuffer()
	for _, tok := range tokens {
		buf.Write(tok)
	}
	buf.Done()
	p := parser{reader: buf, mode: mode}
	return p.scan()
}

func TestParseSingleNumber(t *testing.T) {
	value, err := parseTokens(ModeDecimal, num(7, "7"), op(tokenTypeEnd))
	require.NoError(t, err)
	require.Equal(t, 7.0, value)
}

func TestParsePrecedence(t *testing.T) {
	// 2+3*4
	value, err := parseTokens(ModeDecimal,
		num(2, "2"), op(tokenTypePlus), num(3, "3"), op(tokenTypeAsterisk), num(4, "4"),
		op(tokenTypeEnd))
	require.NoError(t, err)
	require.Equal(t, 14.0, value)
}

func TestParseLeftAssociative(t *testing.T) {
	// 10-3-2
	value, err := parseTokens(ModeDecimal,
		num(10, "10"), op(tokenTypeMinus), num(3, "3"), op(tokenTypeMinus), num(2, "2"),
		op(tokenTypeEnd))
	require.NoError(t, err)
	require.Equal(t, 5.0, value)

	// 100/10/2
	value, err = parseTokens(ModeDecimal,
		num(100, "100"), op(tokenTypeSlash), num(10, "10"), op(tokenTypeSlash), num(2, "2"),
		op(tokenTypeEnd))
	require.NoError(t, err)
	require.Equal(t, 5.0, value)
}

func TestParseDivisionByZero(t *testing.T) {
	_, err := parseTokens(ModeDecimal,
		num(5, "5"), op(tokenTypeSlash), num(0, "0"), op(tokenTypePlus), num(1, "1"),
		op(tokenTypeEnd))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDivisionByZero))
	require.False(t, errors.Is(err, ErrMalformedInput))
}

func TestParseIntegerModeTruncates(t *testing.T) {
	value, err := parseTokens(ModeInteger,
		num(-7, "-7"), op(tokenTypeSlash), num(2, "2"), op(tokenTypeEnd))
	require.NoError(t, err)
	require.Equal(t, -3.0, value)
}

func TestParseOperatorWhereNumberExpected(t *testing.T) {
	_, err := parseTokens(ModeDecimal, op(tokenTypePlus), num(5, "5"), op(tokenTypeEnd))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))

	_, err = parseTokens(ModeDecimal, num(5, "5"), op(tokenTypeAsterisk), op(tokenTypeMinus), op(tokenTypeEnd))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestParseOnlyEnd(t *testing.T) {
	_, err := parseTokens(ModeDecimal, op(tokenTypeEnd))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestParseExhaustedWithoutEnd(t *testing.T) {
	_, err := parseTokens(ModeDecimal, num(1, "1"), op(tokenTypePlus))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
	require.Contains(t, err.Error(), "EOF")

	_, err = parseTokens(ModeDecimal, num(1, "1"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestParseTrailingTokens(t *testing.T) {
	// Two numbers in a row parse as "1" followed by leftovers.
	_, err := parseTokens(ModeDecimal, num(1, "1"), num(2, "2"), op(tokenTypeEnd))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestParseOverflowingStep(t *testing.T) {
	_, err := parseTokens(ModeDecimal,
		num(math.MaxFloat64, "max"), op(tokenTypeAsterisk), num(2, "2"), op(tokenTypeEnd))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))

	_, err = parseTokens(ModeDecimal,
		num(math.MaxFloat64, "max"), op(tokenTypePlus), num(math.MaxFloat64, "max"), op(tokenTypeEnd))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}
