package lib

import "strings"

// RemoveSpaces drops every ' ' from the input. Tabs and other whitespace are
// left alone so the validator can reject them.
func RemoveSpaces(expr string) string {
	if !strings.ContainsRune(expr, ' ') {
		return expr
	}
	var b strings.Builder
	b.Grow(len(expr))
	for _, ch := range expr {
		if ch != ' ' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
