package lib

import "strings"

// render writes tokens back out as an expression with no spaces. Number
// tokens keep their sign so "5*-3" renders as "5*-3".
func render(tokens []token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.tokType == tokenTypeEnd {
			break
		}
		b.WriteString(tokenValueString(tok))
	}
	return b.String()
}

// Canonical returns expr with spaces removed after checking that it would
// be accepted by Evaluate's validator and lexer.
func Canonical(expr string) (string, error) {
	normalized := RemoveSpaces(expr)
	if err := Validate(normalized); err != nil {
		return "", err
	}
	tokens, err := tokenize(normalized)
	if err != nil {
		return "", err
	}
	return render(tokens), nil
}
