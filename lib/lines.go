package lib

import (
	"bufio"
	"io"
	"strings"
)

// LineReader hands out input one line at a time with no limit on line
// length. The trailing "\n" or "\r\n" is dropped.
type LineReader struct {
	reader *bufio.Reader
	done   bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// Next returns the next line. more is false once the input is exhausted; a
// final line without a newline is still returned.
func (lr *LineReader) Next() (line string, more bool, err error) {
	if lr.done {
		return "", false, nil
	}

	line, err = lr.reader.ReadString('\n')
	if err == io.EOF {
		lr.done = true
		if line == "" {
			return "", false, nil
		}
	} else if err != nil {
		return "", false, err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
