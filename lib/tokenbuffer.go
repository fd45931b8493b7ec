package lib

// tokenBuffer collects tokens from the lexer and hands them to the parser
// one at a time. Everything happens on the caller's goroutine, so reading
// past the written tokens of an unfinished buffer is an error instead of a
// wait.
type tokenBuffer struct {
	tokens       []token
	index        int
	doneReceived bool
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokens:       []token{},
		index:        0,
		doneReceived: false,
	}
}

func (tb *tokenBuffer) Next() (tok token, done bool, err error) {
	tok, done, err = tb.Peek()
	if err == nil && !done {
		tb.index++
	}
	return tok, done, err
}

func (tb *tokenBuffer) Peek() (token, bool, error) {
	if tb.index < len(tb.tokens) {
		return tb.tokens[tb.index], false, nil
	}
	if tb.doneReceived {
		return token{}, true, nil
	}
	return token{}, false, malformedf(-1, "read past token %d before the token stream was finished", tb.index)
}

func (tb *tokenBuffer) Write(tok token) {
	tb.tokens = append(tb.tokens, tok)
}

func (tb *tokenBuffer) Done() {
	tb.doneReceived = true
}
