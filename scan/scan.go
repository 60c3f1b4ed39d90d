// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan // import "keisan.io/keisan/scan"

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"keisan.io/keisan/config"
)

type Pos int // Byte position.

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Pos  Pos    // The starting position, in bytes, of this item in the input.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // zero value so closed channel delivers EOF
	Error             // error occurred; value is text of error
	Newline
	Number     // run of digits and dots; the parser validates it
	Identifier // alphanumeric identifier starting with a letter
	Operator   // '+', '-', '*', '/'
	LeftParen  // '('
	RightParen // ')'
	Comma      // ','
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Error:
		return "Error"
	case Newline:
		return "Newline"
	case Number:
		return "Number"
	case Identifier:
		return "Identifier"
	case Operator:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case Comma:
		return "Comma"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	Tokens chan Token // channel of scanned items
	config *config.Config
	r      io.ByteReader
	done   bool
	name   string // the name of the input; used only for error reports
	buf    []byte
	input  string  // the line of text being scanned
	state  stateFn // the next lexing function to enter
	pos    Pos     // current position in the input
	start  Pos     // start position of this item
	width  Pos     // width of last rune read from input
}

// loadLine reads the next line of input and stores it in (appends it to) the input.
// (l.input may have data left over when we are called.)
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		l.buf = append(l.buf, c)
		if c == '\n' {
			break
		}
	}
	l.input = l.input[l.start:l.pos] + string(l.buf)
	l.pos -= l.start
	l.start = 0
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if !l.done && int(l.pos) == len(l.input) {
		l.loadLine()
	}
	if Pos(len(l.input)) == l.pos {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = Pos(w)
	l.pos += l.width
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.width
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) {
	s := l.input[l.start:l.pos]
	if l.config.Debug("tokens") {
		fmt.Printf("emit %s\n", Token{t, l.start, s})
	}
	l.Tokens <- Token{t, l.start, s}
	l.start = l.pos
}

// ignore skips over the pending input before this point.
func (l *Scanner) ignore() {
	l.start = l.pos
}

// errorf returns an error token and continues to scan.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.Tokens <- Token{Error, l.start, fmt.Sprintf(format, args...)}
	l.start = l.pos
	return lexAny
}

// New creates a new scanner for the input.
func New(conf *config.Config, name string, r io.ByteReader) *Scanner {
	l := &Scanner{
		r:      r,
		config: conf,
		name:   name,
		Tokens: make(chan Token),
	}
	go l.run()
	return l
}

// run runs the state machine for the Scanner.
func (l *Scanner) run() {
	for l.state = lexAny; l.state != nil; {
		l.state = l.state(l)
	}
	close(l.Tokens)
}

// lexAny scans any item.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		l.emit(Newline)
		return lexAny
	case isSpace(r):
		return lexSpace
	case r == '.' || '0' <= r && r <= '9':
		l.backup()
		return lexNumber
	case r == '+' || r == '-' || r == '*' || r == '/':
		l.emit(Operator)
		return lexAny
	case r == '(':
		l.emit(LeftParen)
		return lexAny
	case r == ')':
		l.emit(RightParen)
		return lexAny
	case r == ',':
		l.emit(Comma)
		return lexAny
	case unicode.IsLetter(r):
		return lexIdentifier
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.ignore()
	return lexAny
}

// lexIdentifier scans an alphanumeric. The first letter is already
// consumed.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	l.emit(Identifier)
	return lexAny
}

// lexNumber scans a number: a contiguous run of digits and dots.
// It isn't a number scanner proper - it accepts "1.2.3" - but when
// it's wrong the input is invalid and the parser will notice.
func lexNumber(l *Scanner) stateFn {
	for {
		r := l.peek()
		if r != '.' && (r < '0' || r > '9') {
			break
		}
		l.next()
	}
	l.emit(Number)
	return lexAny
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// isAlphaNumeric reports whether r is an alphabetic or a digit.
func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
