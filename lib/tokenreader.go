package lib

// tokenReader feeds the parser. done is only reported after the reader has
// handed out its last token, which for a lexed expression is always End.
type tokenReader interface {
	Next() (tok token, done bool, err error)
	Peek() (tok token, done bool, err error)
}
