// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

import "fmt"

// A Span is a contiguous sequence of bytes in an S-expression source.
type Span struct {
	// Start is the index of the first byte of the span,
	// relative to the beginning of the source.
	Start int
	// End is the end index of the span (exclusive),
	// relative to the beginning of the source.
	End int
}

func newSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// indexSpan returns the zero-length span at i.
func indexSpan(i int) Span {
	return Span{Start: i, End: i}
}

func nullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span has a non-negative length
// and non-negative indices.
func (span Span) IsValid() bool {
	return span.Start >= 0 && span.End >= 0 && span.Start <= span.End
}

// Len returns the length of the span
// or zero if the span is invalid.
func (span Span) Len() int {
	if !span.IsValid() {
		return 0
	}
	return span.End - span.Start
}

// String formats the span indices as a mathematical range like "[12,34)".
func (span Span) String() string {
	return fmt.Sprintf("[%d,%d)", span.Start, span.End)
}

// Text returns the bytes of source covered by the span.
// It returns the empty string if the span is invalid
// or does not fit inside source.
func (span Span) Text(source string) string {
	if !span.IsValid() || span.End > len(source) {
		return ""
	}
	return source[span.Start:span.End]
}

// unionSpans returns the smallest span covering every valid span given.
func unionSpans(spans ...Span) Span {
	u := nullSpan()
	for _, span := range spans {
		if !span.IsValid() {
			continue
		}
		if u.IsValid() {
			u = newSpan(min(u.Start, span.Start), max(u.End, span.End))
		} else {
			u = span
		}
	}
	return u
}
