// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

// Package sexpr parses S-expressions made of parenthesized prefix function calls
// over alphanumeric terms, such as "(ADD X (MULT 2 Y))".
// The grammar and tree types live in the [parser] package.
package sexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runreveal/sexpr/parser"
)

// ErrTrailingText is reported by [Parse] when the source continues
// after a complete expression.
var ErrTrailingText = errors.New("unexpected trailing text")

// Parse parses source as exactly one expression.
// Unlike [parser.Parse], anything other than whitespace
// after the expression is an error.
func Parse(source string) (parser.Node, error) {
	node, rest, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse s-expression: %w", err)
	}
	if trailing := strings.TrimLeft(rest, parser.Whitespace); trailing != "" {
		line, col := parser.LineCol(source, len(source)-len(trailing))
		return nil, fmt.Errorf("parse s-expression: %d:%d: %w", line, col, ErrTrailingText)
	}
	return node, nil
}
