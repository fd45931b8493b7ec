package lib

import (
	"strconv"
)

func lex(expr string, emit func(token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

// tokenize is lex with the tokens gathered into a slice.
func tokenize(expr string) ([]token, error) {
	tokens := []token{}
	err := lex(expr, func(t token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	emitCallback     func(token)
}

func newLexer(expr string, emit func(token)) *lexer {
	chars := []rune(expr)
	return &lexer{
		expr:             chars,
		length:           len(chars),
		currentCharIndex: 0,
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (rune, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return 0, false
	}
	return l.expr[i], true
}

func (l *lexer) advance() (rune, bool) {
	ch, ok := l.peek(0)
	if ok {
		l.currentCharIndex++
	}
	return ch, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	l.emitCallback(token{tokType: tokenTypeEnd, pos: l.length})
	return nil
}

func (l *lexer) next() (bool, error) {
	start := l.currentCharIndex
	ch, ok := l.advance()
	if !ok {
		return false, nil
	}

	switch ch {
	case '+':
		l.emitCallback(token{tokType: tokenTypePlus, pos: start})
	case '-':
		if l.startsNumber(start) {
			return l.scanNumber(start)
		}
		l.emitCallback(token{tokType: tokenTypeMinus, pos: start})
	case '*':
		l.emitCallback(token{tokType: tokenTypeAsterisk, pos: start})
	case '/':
		l.emitCallback(token{tokType: tokenTypeSlash, pos: start})
	default:
		if isDigit(ch) {
			return l.scanNumber(start)
		}
		return false, malformedf(start, "unexpected character %q", ch)
	}

	return true, nil
}

// startsNumber reports whether the '-' at i is a sign rather than a
// subtraction: it is at the very start or directly after '*' or '/'.
func (l *lexer) startsNumber(i int) bool {
	if i == 0 {
		return true
	}
	prev := l.expr[i-1]
	return prev == '*' || prev == '/'
}

func (l *lexer) scanNumber(start int) (bool, error) {
	for {
		next, ok := l.peek(0)
		if !ok || !isDigit(next) {
			break
		}
		_, _ = l.advance()
	}

	text := l.expr[start:l.currentCharIndex]
	if len(text) == 1 && text[0] == '-' {
		// A sign with no digits. Validation never lets this through.
		return true, nil
	}

	value, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return false, malformedf(start, "number %s is out of range", string(text))
	}
	l.emitCallback(token{tokType: tokenTypeNumber, value: value, text: text, pos: start})
	return true, nil
}
