package lib

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypePlus
	tokenTypeMinus
	tokenTypeSlash
	tokenTypeAsterisk
	tokenTypeEnd
)

type token struct {
	tokType tokenType
	value   float64
	text    []rune
	pos     int
}

func isOperator(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
