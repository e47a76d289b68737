// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

// Package parser provides a parser and an Abstract Syntax Tree (AST)
// for S-expressions made of parenthesized prefix function calls over alphanumeric terms:
//
//	(ADD X (DIV (IF 3 1 3) 2) (MULT 1 4 1))
//
// Parsing reads directly from the source string; there is no separate token stream.
// Nesting is handled by recursion, so callers parsing untrusted input
// should bound its size before calling [Parse].
package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

type parser struct {
	source string
}

// Parse parses a single expression at the beginning of source:
// either a term or a parenthesized function call.
// On success, rest holds the part of source that was not consumed.
// Parse does not require the whole source to be consumed.
//
// Errors returned by Parse are of type [*Error].
func Parse(source string) (node Node, rest string, err error) {
	p := &parser{source: source}
	node, end, err := p.expr(0)
	if err != nil {
		return nil, "", err
	}
	return node, source[end:], nil
}

// expr parses a term or, failing that, a parenthesized function call.
func (p *parser) expr(pos int) (Node, int, error) {
	if p.startsTerm(pos) {
		return p.term(pos)
	}
	return p.subExpr(pos)
}

func (p *parser) term(pos int) (*Term, int, error) {
	span, err := p.alnumRun(pos)
	if err != nil {
		return nil, pos, err
	}
	return &Term{
		Text:     span.Text(p.source),
		TextSpan: span,
	}, span.End, nil
}

// subExpr parses a function call surrounded by parentheses.
func (p *parser) subExpr(pos int) (*Func, int, error) {
	lparen := p.skipSpace(pos)
	if !p.byteAt(lparen, '(') {
		return nil, pos, p.errorAt(ExpectedIdentifier, lparen)
	}
	call, end, err := p.funcCall(lparen + 1)
	if err != nil {
		return nil, pos, err
	}
	rparen := p.skipSpace(end)
	if !p.byteAt(rparen, ')') {
		return nil, pos, p.errorAt(ExpectedClosingDelimiter, rparen)
	}
	call.Lparen = newSpan(lparen, lparen+1)
	call.Rparen = newSpan(rparen, rparen+1)
	return call, rparen + 1, nil
}

// funcCall parses a function name followed by its arguments.
// The opening parenthesis has already been consumed.
func (p *parser) funcCall(pos int) (*Func, int, error) {
	name, err := p.alnumRun(pos)
	if err != nil {
		return nil, pos, err
	}
	args, end, err := p.args(name.End)
	if err != nil {
		return nil, pos, err
	}
	return &Func{
		Name:     name.Text(p.source),
		NameSpan: name,
		Lparen:   nullSpan(),
		Args:     args,
		Rparen:   nullSpan(),
	}, end, nil
}

// args parses one or more arguments.
// Once at least one argument has been parsed,
// the first argument that fails to parse ends the list
// and leaves pos just after the last good argument.
func (p *parser) args(pos int) ([]Node, int, error) {
	var args []Node
	for {
		var arg Node
		var end int
		var err error
		if p.startsTerm(pos) {
			arg, end, err = p.term(pos)
		} else {
			arg, end, err = p.subExpr(pos)
		}
		if err != nil {
			if len(args) == 0 {
				return nil, pos, err
			}
			return args, pos, nil
		}
		args = append(args, arg)
		pos = end
	}
}

// ErrorKind classifies what the parser expected when it stopped.
type ErrorKind int

// Error kinds.
const (
	// ExpectedIdentifier indicates that a term, a function name,
	// or the opening parenthesis of a function call was expected.
	ExpectedIdentifier ErrorKind = 1 + iota
	// ExpectedClosingDelimiter indicates that a function call's arguments
	// were not followed by a ')'.
	ExpectedClosingDelimiter
)

func (kind ErrorKind) String() string {
	switch kind {
	case ExpectedIdentifier:
		return "ExpectedIdentifier"
	case ExpectedClosingDelimiter:
		return "ExpectedClosingDelimiter"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
}

// Sentinel errors matched by [errors.Is] against an [*Error] of the corresponding kind.
var (
	ErrExpectedIdentifier       = errors.New("expected identifier")
	ErrExpectedClosingDelimiter = errors.New("expected ')'")
)

func (kind ErrorKind) sentinel() error {
	switch kind {
	case ExpectedIdentifier:
		return ErrExpectedIdentifier
	case ExpectedClosingDelimiter:
		return ErrExpectedClosingDelimiter
	default:
		return errors.New(kind.String())
	}
}

// Error is the error returned by [Parse].
type Error struct {
	Kind ErrorKind
	// Pos is the byte offset in the source where parsing stopped.
	Pos int

	source string
}

func (p *parser) errorAt(kind ErrorKind, pos int) *Error {
	return &Error{
		Kind:   kind,
		Pos:    pos,
		source: p.source,
	}
}

func (e *Error) Error() string {
	line, col := LineCol(e.source, e.Pos)
	return fmt.Sprintf("%d:%d: %v, got %s", line, col, e.Kind.sentinel(), formatNext(e.source, e.Pos))
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Span returns the zero-length span at which parsing stopped.
func (e *Error) Span() Span {
	return indexSpan(e.Pos)
}

// Rest returns the unconsumed source starting at the error position.
func (e *Error) Rest() string {
	if e.Pos < 0 || e.Pos > len(e.source) {
		return ""
	}
	return e.source[e.Pos:]
}

// formatNext describes the character at pos for an error message.
func formatNext(source string, pos int) string {
	if pos >= len(source) {
		return "EOF"
	}
	c, _ := utf8.DecodeRuneInString(source[pos:])
	return fmt.Sprintf("%q", c)
}

// LineCol converts a byte offset in source into 1-based line and column numbers.
// Tabs advance the column to the next multiple of 8.
func LineCol(source string, pos int) (line, col int) {
	line, col = 1, 1
	if pos > len(source) {
		pos = len(source)
	}
	for _, c := range source[:max(pos, 0)] {
		switch c {
		case '\n':
			line++
			col = 1
		case '\t':
			const tabWidth = 8
			tabLoc := (col - 1) % tabWidth
			col += tabWidth - tabLoc
		default:
			col++
		}
	}
	return
}
