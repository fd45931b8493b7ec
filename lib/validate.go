package lib

// Validate checks a space-free expression before it is tokenized. A nil
// return means the lexer and parser can handle it.
func Validate(expr string) error {
	chars := []rune(expr)
	if len(chars) == 0 {
		return &Error{Kind: MalformedInput, Pos: -1, Msg: "empty expression"}
	}

	for i, ch := range chars {
		if !isDigit(ch) && !isOperator(ch) {
			return malformedf(i, "unexpected character %q", ch)
		}
	}

	// A leading '-' is the sign of the first operand.
	if first := chars[0]; !isDigit(first) && first != '-' {
		return malformedf(0, "expression cannot start with '%c'", first)
	}
	last := len(chars) - 1
	if !isDigit(chars[last]) {
		return malformedf(last, "expression cannot end with '%c'", chars[last])
	}

	for i := 0; i < last; i++ {
		current, next := chars[i], chars[i+1]
		if !isOperator(current) || !isOperator(next) {
			continue
		}
		// '-' after '*' or '/' negates the next operand
		if next == '-' && (current == '*' || current == '/') {
			continue
		}
		return malformedf(i+1, "'%c' cannot follow '%c'", next, current)
	}

	return nil
}
