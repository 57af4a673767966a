// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"math/big"

	"github.com/consensys/go-mm0/pkg/util"
	"github.com/consensys/go-mm0/pkg/util/source"
)

// Atom distinguishes the different kinds of atomic S-expression.  Only IDENT
// atoms take their text from the source; the others have a fixed rendering.
type Atom uint8

// IDENT is an identifier, whose text is given by its span.
const IDENT Atom = 0

// QUOTE is the "quote" keyword, arising from the ' prefix.
const QUOTE Atom = 1

// UNQUOTE is the "unquote" keyword, arising from the , prefix.
const UNQUOTE Atom = 2

// NFX is the marker inserted at the front of a curly list whose operator
// positions do not all hold the same operator.  Such lists are resolved later
// using the precedences of declared notations.
const NFX Atom = 3

// SExpr is an S-expression of the lisp sublanguage, together with its span in
// the original text.  Each node exclusively owns its children.
type SExpr struct {
	Span source.Span
	Kind SExprKind
}

// SExprKind is the payload of an S-expression node.  It is one of Atom, List,
// DottedList, Number, String, Bool or Formula.
type SExprKind interface {
	isSExprKind()
}

// List is a proper list of S-expressions.
type List []SExpr

// DottedList is a list of one or more S-expressions ending in an explicit
// tail, as in "(a b . c)".  The tail is never itself a List or DottedList,
// since NewDottedList flattens those into the enclosing list.
type DottedList struct {
	Elements []SExpr
	Tail     *SExpr
}

// Number is an arbitrary precision natural number literal.
type Number struct {
	Value *big.Int
}

// String is a string literal (after escapes have been processed).
type String string

// Bool is a boolean literal, written #t or #f.
type Bool bool

func (Atom) isSExprKind()       {}
func (List) isSExprKind()       {}
func (DottedList) isSExprKind() {}
func (Number) isSExprKind()     {}
func (String) isSExprKind()     {}
func (Bool) isSExprKind()       {}
func (Formula) isSExprKind()    {}

// NewAtom constructs an atomic S-expression.
func NewAtom(span source.Span, atom Atom) SExpr {
	return SExpr{span, atom}
}

// NewList constructs a proper list.
func NewList(span source.Span, elements []SExpr) SExpr {
	return SExpr{span, List(elements)}
}

// NewNumber constructs a number literal.
func NewNumber(span source.Span, value *big.Int) SExpr {
	return SExpr{span, Number{value}}
}

// NewString constructs a string literal.
func NewString(span source.Span, value string) SExpr {
	return SExpr{span, String(value)}
}

// NewBool constructs a boolean literal.
func NewBool(span source.Span, value bool) SExpr {
	return SExpr{span, Bool(value)}
}

// NewFormulaExpr constructs an S-expression holding a formula.
func NewFormulaExpr(fmla Formula) SExpr {
	return SExpr{fmla.Span(), fmla}
}

// NewDottedList constructs a list with an optional dotted tail.  Nested tails
// are flattened eagerly: a dotted list tail has its elements and tail spliced
// into the result, and a proper list tail has its elements spliced in,
// producing a proper list.  Thus "(a b . (c . d))" becomes "(a b c . d)" and
// "(a . (b c))" becomes "(a b c)".
func NewDottedList(span source.Span, elements []SExpr, dot util.Option[SExpr]) SExpr {
	tail, ok := dot.Get()
	//
	if !ok {
		return NewList(span, elements)
	}
	//
	switch kind := tail.Kind.(type) {
	case DottedList:
		return SExpr{span, DottedList{append(elements, kind.Elements...), kind.Tail}}
	case List:
		return NewList(span, append(elements, kind...))
	default:
		return SExpr{span, DottedList{elements, &tail}}
	}
}

// NewCurlyList constructs a list which was written with curly braces (when
// curly holds), by first applying the curly-infix transformation and then
// constructing the (possibly dotted) list.  The equality function decides
// whether two operator positions hold the same operator.  A list not written
// with curly braces is constructed unchanged.
func NewCurlyList(span source.Span, curly bool, elements []SExpr, dot util.Option[SExpr],
	eq func(SExpr, SExpr) bool) SExpr {
	//
	if curly {
		nfx := func() SExpr {
			return NewAtom(source.NewSpan(span.Start(), min(span.Start()+1, span.End())), NFX)
		}
		elements = CurlyTransform(elements, dot.IsEmpty(), eq, nfx)
	}
	//
	return NewDottedList(span, elements, dot)
}

// CurlyTransform desugars the elements of a curly list.  Lists of at most two
// elements are returned unchanged.  When there is no dotted tail, the list
// has odd length, and every odd position holds the same operator (according
// to eq), the operator is hoisted to the front and the duplicates dropped, so
// that {a + b + c} becomes (+ a b c).  Otherwise, the nfx marker is inserted
// at the front, so that {a + b * c} becomes (:nfx a + b * c).
//
// The given slice may be reused (and modified) to hold the result.
func CurlyTransform[T any](elements []T, noDot bool, eq func(T, T) bool, nfx func() T) []T {
	n := len(elements)
	//
	if n <= 2 {
		return elements
	}
	// Check all operator positions hold the same operator
	uniform := noDot && n%2 == 1
	//
	for i := 3; uniform && i < n; i += 2 {
		uniform = eq(elements[i], elements[1])
	}
	//
	if !uniform {
		return append([]T{nfx()}, elements...)
	}
	// Hoist operator, then compact operands over the redundant operators.
	elements[0], elements[1] = elements[1], elements[0]
	to := 3
	//
	for from := 4; from < n; from += 2 {
		elements[from], elements[to] = elements[to], elements[from]
		to++
	}
	//
	return elements[:to]
}

// SameAtom returns an equality suitable for curly lists, under which two
// S-expressions are equal when they are both atoms rendering to the same
// text.  Positions are irrelevant, only text matters.
func SameAtom(env FormatEnv) func(SExpr, SExpr) bool {
	return func(lhs SExpr, rhs SExpr) bool {
		l, lok := lhs.Kind.(Atom)
		r, rok := rhs.Kind.(Atom)
		//
		return lok && rok && env.SpanAtom(lhs.Span, l) == env.SpanAtom(rhs.Span, r)
	}
}

// IsAtom checks whether this S-expression is an atom of the given kind.
func (e *SExpr) IsAtom(atom Atom) bool {
	a, ok := e.Kind.(Atom)
	return ok && a == atom
}

// Equivalent checks whether two S-expressions have the same structure and
// text, where each is interpreted within its own environment.  Spans
// themselves are ignored.  Formulas are compared by their text.
func Equivalent(lenv FormatEnv, lhs *SExpr, renv FormatEnv, rhs *SExpr) bool {
	switch l := lhs.Kind.(type) {
	case Atom:
		r, ok := rhs.Kind.(Atom)
		return ok && lenv.SpanAtom(lhs.Span, l) == renv.SpanAtom(rhs.Span, r)
	case List:
		r, ok := rhs.Kind.(List)
		return ok && equivalentAll(lenv, l, renv, r)
	case DottedList:
		r, ok := rhs.Kind.(DottedList)
		return ok && equivalentAll(lenv, l.Elements, renv, r.Elements) && Equivalent(lenv, l.Tail, renv, r.Tail)
	case Number:
		r, ok := rhs.Kind.(Number)
		return ok && l.Value.Cmp(r.Value) == 0
	case String:
		r, ok := rhs.Kind.(String)
		return ok && l == r
	case Bool:
		r, ok := rhs.Kind.(Bool)
		return ok && l == r
	case Formula:
		r, ok := rhs.Kind.(Formula)
		return ok && lenv.Text(l.Span()) == renv.Text(r.Span())
	default:
		return false
	}
}

func equivalentAll(lenv FormatEnv, lhs []SExpr, renv FormatEnv, rhs []SExpr) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !Equivalent(lenv, &lhs[i], renv, &rhs[i]) {
			return false
		}
	}
	//
	return true
}
