// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

// Whitespace is the set of characters that may appear
// between terms, function names, and parentheses.
const Whitespace = " \t\r\n"

// skipSpace returns the index of the first non-whitespace byte
// at or after pos.
func (p *parser) skipSpace(pos int) int {
	for pos < len(p.source) && isSpace(p.source[pos]) {
		pos++
	}
	return pos
}

// alnumRun skips whitespace at pos and then consumes
// the maximal non-empty run of ASCII letters and digits.
func (p *parser) alnumRun(pos int) (Span, error) {
	start := p.skipSpace(pos)
	end := start
	for end < len(p.source) && isAlnum(p.source[end]) {
		end++
	}
	if end == start {
		return nullSpan(), p.errorAt(ExpectedIdentifier, start)
	}
	return newSpan(start, end), nil
}

// startsTerm reports whether the first significant byte at or after pos
// begins a term.
func (p *parser) startsTerm(pos int) bool {
	pos = p.skipSpace(pos)
	return pos < len(p.source) && isAlnum(p.source[pos])
}

// byteAt reports whether the byte at pos is c.
func (p *parser) byteAt(pos int, c byte) bool {
	return pos < len(p.source) && p.source[pos] == c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isAlnum operates on bytes: multi-byte UTF-8 sequences never match.
func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
