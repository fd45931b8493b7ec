package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAccepts(t *testing.T) {
	for _, expr := range []string{
		"5",
		"-5",
		"5+3",
		"-10+25",
		"6*7",
		"15/3",
		"5*-3",
		"10/-2",
		"-7*-3+1",
		"1000000/8",
	} {
		require.NoError(t, Validate(expr), expr)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		expr string
		pos  int
	}{
		{"", -1},
		{"abc", 0},
		{"5.5+3", 1},
		{"5 +3", 1},
		{"5\t+3", 1},
		{"+5", 0},
		{"*5", 0},
		{"5+", 1},
		{"5*-", 2},
		{"-", 0},
		{"5++3", 2},
		{"5+-3", 2},
		{"5--3", 2},
		{"5-+3", 2},
		{"5**3", 2},
		{"5/*3", 2},
		{"5*+3", 2},
		{"5*--3", 3},
		{"--5", 1},
	}
	for _, c := range cases {
		err := Validate(c.expr)
		require.Error(t, err, c.expr)
		require.True(t, errors.Is(err, ErrMalformedInput), c.expr)

		var evalErr *Error
		require.True(t, errors.As(err, &evalErr), c.expr)
		require.Equal(t, c.pos, evalErr.Pos, c.expr)
	}
}

func TestRemoveSpaces(t *testing.T) {
	require.Equal(t, "1+2*3", RemoveSpaces(" 1 +  2 * 3 "))
	require.Equal(t, "", RemoveSpaces("   "))
	require.Equal(t, "a\tb", RemoveSpaces("a \tb"))
	require.Equal(t, "5+3", RemoveSpaces("5+3"))
}

func TestRemoveSpacesIdempotent(t *testing.T) {
	for _, s := range []string{"", " ", "1 + 2", " - 5 * - 3 ", "a b c", "x\t y"} {
		once := RemoveSpaces(s)
		require.Equal(t, once, RemoveSpaces(once), s)
	}
}
