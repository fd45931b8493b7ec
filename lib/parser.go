package lib

import (
	"fmt"
	"math"
)

type parser struct {
	reader tokenReader
	mode   Mode
}

// scan evaluates a whole token stream. The stream must hold exactly one
// additive expression followed by the End token.
func (p *parser) scan() (float64, error) {
	result, err := p.scanAdditive()
	if err != nil {
		return 0, err
	}

	_, err = p.requireToken(tokenTypeEnd)
	if err != nil {
		return 0, err
	}
	return result, nil
}

// additive := multiplicative ( ('+' | '-') multiplicative )*
func (p *parser) scanAdditive() (float64, error) {
	left, err := p.scanMultiplicative()
	if err != nil {
		return 0, err
	}

	for {
		opToken, done, err := p.reader.Peek()
		if err != nil {
			return 0, err
		}
		if done {
			break
		}
		if opToken.tokType != tokenTypePlus && opToken.tokType != tokenTypeMinus {
			break
		}

		err = p.advance()
		if err != nil {
			return 0, err
		}

		right, err := p.scanMultiplicative()
		if err != nil {
			return 0, err
		}

		if opToken.tokType == tokenTypePlus {
			left += right
		} else {
			left -= right
		}
		left, err = checkRange(left, opToken)
		if err != nil {
			return 0, err
		}
	}

	return left, nil
}

// multiplicative := number ( ('*' | '/') number )*
func (p *parser) scanMultiplicative() (float64, error) {
	left, err := p.scanNumber()
	if err != nil {
		return 0, err
	}

	for {
		opToken, done, err := p.reader.Peek()
		if err != nil {
			return 0, err
		}
		if done {
			break
		}
		if opToken.tokType != tokenTypeAsterisk && opToken.tokType != tokenTypeSlash {
			break
		}

		err = p.advance()
		if err != nil {
			return 0, err
		}

		rightToken, err := p.requireToken(tokenTypeNumber)
		if err != nil {
			return 0, err
		}

		if opToken.tokType == tokenTypeAsterisk {
			left *= rightToken.value
		} else {
			left, err = p.divide(left, rightToken)
			if err != nil {
				return 0, err
			}
		}
		left, err = checkRange(left, opToken)
		if err != nil {
			return 0, err
		}
	}

	return left, nil
}

func (p *parser) scanNumber() (float64, error) {
	tok, err := p.requireToken(tokenTypeNumber)
	if err != nil {
		return 0, err
	}
	return tok.value, nil
}

func (p *parser) divide(left float64, divisor token) (float64, error) {
	if divisor.value == 0 {
		return 0, &Error{
			Kind: DivisionByZero,
			Pos:  divisor.pos,
			Msg:  fmt.Sprintf("cannot divide %v by <%s>", left, tokenString(divisor)),
		}
	}
	if p.mode == ModeInteger {
		return math.Trunc(left / divisor.value), nil
	}
	return left / divisor.value, nil
}

// checkRange rejects a step whose result no longer fits in a float64.
func checkRange(value float64, op token) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, malformedf(op.pos, "result of <%s> is out of range", tokenString(op))
	}
	return value, nil
}

func (p *parser) requireToken(tokType tokenType) (token, error) {
	next, done, err := p.reader.Next()
	if err != nil {
		return token{}, err
	}
	if done {
		return token{}, malformedf(-1,
			"Expected %s but got EOF",
			tokenTypeName(tokType))
	}
	if next.tokType != tokType {
		return token{}, malformedf(next.pos,
			"Expected %s but got <%s>",
			tokenTypeName(tokType),
			tokenString(next))
	}
	return next, nil
}

func (p *parser) advance() error {
	_, _, err := p.reader.Next()
	return err
}

func tokenString(tok token) string {
	return fmt.Sprintf("%d -> %s", tok.pos+1, tokenValueString(tok))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeNumber:
		return string(tok.text)
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeSlash:
		return "/"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeEnd:
		return "end of expression"
	default:
		return "?"
	}
}

func tokenTypeName(tokType tokenType) string {
	switch tokType {
	case tokenTypeNumber:
		return "number"
	case tokenTypeEnd:
		return "end of expression"
	default:
		return fmt.Sprintf("'%s'", tokenValueString(token{tokType: tokType}))
	}
}
