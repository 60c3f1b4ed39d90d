// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse implements the parser and evaluator for the
// calculator language: decimal numbers, the operators + - * /, unary
// signs, parentheses, the constant pi, and the functions ln and sqrt.
// Expressions evaluate to value.Real.
package parse // import "keisan.io/keisan/parse"

import (
	"fmt"
	"strings"

	"keisan.io/keisan/config"
	"keisan.io/keisan/scan"
	"keisan.io/keisan/value"
)

// An Expr is a parsed expression that evaluates itself to a Real.
// tol is the tolerance, in bits, used by the operations that must
// distinguish an operand from zero.
type Expr interface {
	String() string
	Eval(tol int64) value.Real
}

// numberExpr holds a numeric literal. It is re-parsed at evaluation
// time so the Real can demand any precision of it.
type numberExpr string

func (e numberExpr) String() string {
	return string(e)
}

func (e numberExpr) Eval(tol int64) value.Real {
	r, err := value.RealFromString(string(e))
	if err != nil {
		value.Errorf("bad number %q: %s", string(e), err)
	}
	return r
}

// constExpr holds a named constant.
type constExpr string

func (e constExpr) String() string {
	return string(e)
}

func (e constExpr) Eval(tol int64) value.Real {
	switch string(e) {
	case "pi":
		return value.RealPi()
	}
	value.Errorf("unknown constant %q", string(e))
	return value.Real{}
}

// callExpr holds a function call with its argument list.
type callExpr struct {
	name string
	args []Expr
}

func (e *callExpr) String() string {
	strs := make([]string, len(e.args))
	for i, a := range e.args {
		strs[i] = a.String()
	}
	return e.name + "(" + strings.Join(strs, ", ") + ")"
}

func (e *callExpr) Eval(tol int64) value.Real {
	switch e.name {
	case "ln":
		if len(e.args) != 1 {
			value.Errorf("ln takes one argument; have %d", len(e.args))
		}
		r, err := e.args[0].Eval(tol).Ln(tol)
		if err != nil {
			value.Errorf("ln: %s", err)
		}
		return r
	case "sqrt":
		if len(e.args) != 1 {
			value.Errorf("sqrt takes one argument; have %d", len(e.args))
		}
		return e.args[0].Eval(tol).Sqrt()
	}
	value.Errorf("unknown function %q", e.name)
	return value.Real{}
}

type unary struct {
	op    string
	right Expr
}

func (u *unary) String() string {
	return "(" + u.op + u.right.String() + ")"
}

func (u *unary) Eval(tol int64) value.Real {
	r := u.right.Eval(tol)
	if u.op == "-" {
		return r.Neg()
	}
	return r
}

type binary struct {
	op    string
	left  Expr
	right Expr
}

func (b *binary) String() string {
	return "(" + b.left.String() + " " + b.op + " " + b.right.String() + ")"
}

func (b *binary) Eval(tol int64) value.Real {
	l := b.left.Eval(tol)
	r := b.right.Eval(tol)
	switch b.op {
	case "+":
		return l.Add(r)
	case "-":
		return l.Sub(r)
	case "*":
		return l.Mul(r)
	case "/":
		q, err := l.Quo(r, tol)
		if err != nil {
			value.Errorf("division: %s", err)
		}
		return q
	}
	value.Errorf("unknown operator %q", b.op)
	return value.Real{}
}

// Parser stores the state for the parser.
type Parser struct {
	scanner  *scan.Scanner
	config   *config.Config
	fileName string
	peekTok  scan.Token
	curTok   scan.Token // most recent token from scanner
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(conf *config.Config, fileName string, scanner *scan.Scanner) *Parser {
	return &Parser{
		scanner:  scanner,
		config:   conf,
		fileName: fileName,
	}
}

func (p *Parser) next() scan.Token {
	tok := p.peekTok
	if tok.Type != scan.EOF {
		p.peekTok = scan.Token{Type: scan.EOF}
	} else {
		tok = <-p.scanner.Tokens
	}
	p.curTok = tok
	return tok
}

func (p *Parser) peek() scan.Token {
	if p.peekTok.Type == scan.EOF {
		p.peekTok = <-p.scanner.Tokens
	}
	return p.peekTok
}

func (p *Parser) errorf(format string, args ...interface{}) {
	panic(value.Error(fmt.Sprintf(format, args...)))
}

// Line reads and parses one line of input. It returns the parsed
// expression, nil for a blank line, and reports whether any input
// remains. A bad token stops the parse at the first error.
func (p *Parser) Line() (Expr, bool) {
	tok := p.next()
	switch tok.Type {
	case scan.EOF:
		return nil, false
	case scan.Newline:
		return nil, true
	case scan.Error:
		p.errorf("%s", tok.Text)
	}
	p.peekTok = tok
	expr := p.expr()
	if p.config.Debug("parse") {
		fmt.Println(expr)
	}
	switch end := p.next(); end.Type {
	case scan.Newline:
		return expr, true
	case scan.EOF:
		return expr, false
	case scan.Error:
		p.errorf("%s", end.Text)
	default:
		p.errorf("unexpected %s after expression", end)
	}
	return nil, false
}

// Parse parses a complete expression from the scanner; it is the
// single-expression entry point used when the input is one string.
func (p *Parser) Parse() Expr {
	expr, _ := p.Line()
	if expr == nil {
		p.errorf("empty expression")
	}
	return expr
}

// Precedence, lowest to highest: addition/subtraction,
// multiplication/division, unary sign, primary.

func (p *Parser) expr() Expr {
	return p.addition()
}

func (p *Parser) addition() Expr {
	e := p.multiplication()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator || (tok.Text != "+" && tok.Text != "-") {
			return e
		}
		p.next()
		e = &binary{op: tok.Text, left: e, right: p.multiplication()}
	}
}

func (p *Parser) multiplication() Expr {
	e := p.unary()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator || (tok.Text != "*" && tok.Text != "/") {
			return e
		}
		p.next()
		e = &binary{op: tok.Text, left: e, right: p.unary()}
	}
}

func (p *Parser) unary() Expr {
	tok := p.peek()
	if tok.Type == scan.Operator && (tok.Text == "+" || tok.Text == "-") {
		p.next()
		return &unary{op: tok.Text, right: p.unary()}
	}
	return p.primary()
}

func (p *Parser) primary() Expr {
	tok := p.next()
	switch tok.Type {
	case scan.Number:
		return numberExpr(tok.Text)
	case scan.Identifier:
		name := tok.Text
		if p.peek().Type != scan.LeftParen {
			return constExpr(name)
		}
		p.next()
		var args []Expr
		if p.peek().Type != scan.RightParen {
			for {
				args = append(args, p.expr())
				if p.peek().Type != scan.Comma {
					break
				}
				p.next()
			}
		}
		if t := p.next(); t.Type != scan.RightParen {
			p.errorf("expected ')', found %s", t)
		}
		return &callExpr{name: name, args: args}
	case scan.LeftParen:
		e := p.expr()
		if t := p.next(); t.Type != scan.RightParen {
			p.errorf("expected ')', found %s", t)
		}
		return e
	case scan.Error:
		p.errorf("%s", tok.Text)
	case scan.EOF, scan.Newline:
		p.errorf("unexpected end of input")
	}
	p.errorf("unexpected %s", tok)
	return nil
}
