// Copyright 2024 RunReveal Inc.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeSpan(t *testing.T) {
	tests := []struct {
		source string
		want   Span
	}{
		{"X", newSpan(0, 1)},
		{"  X ", newSpan(2, 3)},
		{"(ADD X Y)", newSpan(0, 9)},
		{" ( ADD (F 1) ) rest", newSpan(1, 14)},
	}
	for _, test := range tests {
		n, _, err := Parse(test.source)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.source, err)
			continue
		}
		if got := n.Span(); got != test.want {
			t.Errorf("Parse(%q).Span() = %v; want %v", test.source, got, test.want)
		}
	}

	var nilTerm *Term
	if got := nilTerm.Span(); got.IsValid() {
		t.Errorf("(*Term)(nil).Span() = %v; want invalid span", got)
	}
	var nilFunc *Func
	if got := nilFunc.Span(); got.IsValid() {
		t.Errorf("(*Func)(nil).Span() = %v; want invalid span", got)
	}
}

func TestWalk(t *testing.T) {
	const source = "(ADD X (DIV (IF 3 1 3) 2) (MULT 1 4 1))"
	root, _, err := Parse(source)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("All", func(t *testing.T) {
		var got []string
		Walk(root, func(n Node) bool {
			switch n := n.(type) {
			case *Term:
				got = append(got, n.Text)
			case *Func:
				got = append(got, n.Name+"()")
			}
			return true
		})
		want := []string{"ADD()", "X", "DIV()", "IF()", "3", "1", "3", "2", "MULT()", "1", "4", "1"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("visited (-want +got):\n%s", diff)
		}
	})

	t.Run("SkipArguments", func(t *testing.T) {
		var got []string
		Walk(root, func(n Node) bool {
			f, ok := n.(*Func)
			if !ok {
				return false
			}
			got = append(got, f.Name)
			return f.Name != "DIV"
		})
		want := []string{"ADD", "DIV", "MULT"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("visited (-want +got):\n%s", diff)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		Walk(nil, func(Node) bool {
			t.Error("visit called for nil node")
			return true
		})
	})
}

func TestNodeTextIsSourceText(t *testing.T) {
	const source = "( Add x9 (Mul 7 Y) )"
	root, _, err := Parse(source)
	if err != nil {
		t.Fatal(err)
	}
	Walk(root, func(n Node) bool {
		switch n := n.(type) {
		case *Term:
			if got := n.TextSpan.Text(source); got != n.Text {
				t.Errorf("term %q has span %v covering %q", n.Text, n.TextSpan, got)
			}
		case *Func:
			if got := n.NameSpan.Text(source); got != n.Name {
				t.Errorf("call %q has name span %v covering %q", n.Name, n.NameSpan, got)
			}
			if got := n.Lparen.Text(source); got != "(" {
				t.Errorf("call %q has Lparen %v covering %q", n.Name, n.Lparen, got)
			}
			if got := n.Rparen.Text(source); got != ")" {
				t.Errorf("call %q has Rparen %v covering %q", n.Name, n.Rparen, got)
			}
		}
		return true
	})
}
