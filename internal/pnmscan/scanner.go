// Package pnmscan tokenizes the textual netpbm formats.
//
// Tokens are runs of non-whitespace bytes. A '#' starts a comment that runs to
// the end of the line; comments are skipped wherever a token may begin.
package pnmscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxTokenLen bounds a single token. Any valid header or channel value is far
// shorter; longer runs are rejected instead of buffered.
const maxTokenLen = 32

// ErrTokenTooLong is returned for tokens longer than the scanner accepts.
var ErrTokenTooLong = errors.New("pnmscan: token too long")

// SyntaxError reports a token that is not a decimal integer.
type SyntaxError struct {
	Token string
	Line  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pnmscan: line %d: %q is not a decimal integer", e.Line, e.Token)
}

// Scanner reads whitespace-separated tokens from a textual bitmap stream.
type Scanner struct {
	r       *bufio.Reader
	line    int
	tokLine int
	tok     []byte
}

// New returns a Scanner reading from r. r is wrapped in a bufio.Reader
// unless it already is one.
func New(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br, line: 1, tok: make([]byte, 0, maxTokenLen)}
}

// Line returns the 1-based line number of the scanner position.
func (s *Scanner) Line() int {
	return s.line
}

// Token returns the next token. It returns io.EOF when the stream holds no
// further tokens. The returned string does not alias scanner memory.
func (s *Scanner) Token() (string, error) {
	tok, err := s.next()
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

// Int returns the next token as a decimal integer. A leading sign is
// accepted. It returns io.EOF when the stream holds no further tokens and a
// *SyntaxError when the token is not a number.
func (s *Scanner) Int() (int, error) {
	tok, err := s.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, &SyntaxError{Token: string(tok), Line: s.tokLine}
	}
	return v, nil
}

func (s *Scanner) next() ([]byte, error) {
	if err := s.skipSpace(); err != nil {
		return nil, err
	}
	s.tokLine = s.line
	s.tok = s.tok[:0]
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			return s.tok, nil
		}
		if err != nil {
			return nil, err
		}
		if isSpace(c) || c == '#' {
			// Leave the delimiter for the next call so line counting and
			// comment skipping stay in one place.
			if err := s.r.UnreadByte(); err != nil {
				return nil, err
			}
			return s.tok, nil
		}
		if len(s.tok) == maxTokenLen {
			return nil, fmt.Errorf("%w: line %d", ErrTokenTooLong, s.line)
		}
		s.tok = append(s.tok, c)
	}
}

// skipSpace consumes whitespace and comments up to the next token byte.
func (s *Scanner) skipSpace() error {
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case c == '\n':
			s.line++
		case c == '#':
			if err := s.skipComment(); err != nil {
				return err
			}
		case isSpace(c):
		default:
			return s.r.UnreadByte()
		}
	}
}

func (s *Scanner) skipComment() error {
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if c == '\n' {
			s.line++
			return nil
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
