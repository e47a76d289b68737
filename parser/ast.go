// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strconv"
	"strings"
)

// Node is the interface implemented by all AST node types.
// It is implemented by exactly [*Term] and [*Func].
type Node interface {
	Span() Span
	String() string
	node()
}

func nodeSpan(n Node) Span {
	if n == nil {
		return nullSpan()
	}
	return n.Span()
}

func nodeSliceSpan(nodes []Node) Span {
	spans := make([]Span, 0, len(nodes))
	for _, n := range nodes {
		if span := nodeSpan(n); span.IsValid() {
			spans = append(spans, span)
		}
	}
	return unionSpans(spans...)
}

// A Term node is a leaf holding a run of ASCII letters and digits.
type Term struct {
	// Text is the run exactly as it appears in the source.
	Text     string
	TextSpan Span
}

func (t *Term) Span() Span {
	if t == nil {
		return nullSpan()
	}
	return t.TextSpan
}

// String formats the term as Term("X").
func (t *Term) String() string {
	sb := new(strings.Builder)
	writeNode(sb, t)
	return sb.String()
}

func (t *Term) node() {}

// A Func node represents a parenthesized function call:
// a bare name followed by one or more arguments.
type Func struct {
	Name     string
	NameSpan Span
	Lparen   Span
	// Args always has at least one element.
	Args   []Node
	Rparen Span
}

func (f *Func) Span() Span {
	if f == nil {
		return nullSpan()
	}
	return unionSpans(f.Lparen, f.NameSpan, nodeSliceSpan(f.Args), f.Rparen)
}

// String formats the call as Func("ADD", [Term("X"), Term("Y")]).
func (f *Func) String() string {
	sb := new(strings.Builder)
	writeNode(sb, f)
	return sb.String()
}

func (f *Func) node() {}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Term:
		sb.WriteString("Term(")
		sb.WriteString(strconv.Quote(n.Text))
		sb.WriteString(")")
	case *Func:
		sb.WriteString("Func(")
		sb.WriteString(strconv.Quote(n.Name))
		sb.WriteString(", [")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, arg)
		}
		sb.WriteString("])")
	default:
		sb.WriteString("<nil>")
	}
}

// Walk traverses the tree rooted at n in depth-first order,
// calling visit for each node before its arguments.
// If visit returns false, the arguments of that node are skipped.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	if f, ok := n.(*Func); ok {
		for _, arg := range f.Args {
			Walk(arg, visit)
		}
	}
}
