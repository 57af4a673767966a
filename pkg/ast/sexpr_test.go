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
	"strings"
	"testing"

	"github.com/consensys/go-mm0/pkg/util"
	"github.com/consensys/go-mm0/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Curly transform
// ============================================================================

func Test_Curly_00(t *testing.T) {
	checkCurly(t, true, "a + b + c", "+ a b c")
}

func Test_Curly_01(t *testing.T) {
	checkCurly(t, true, "a + b * c", ":nfx a + b * c")
}

func Test_Curly_02(t *testing.T) {
	checkCurly(t, true, "a + b + c + d", "+ a b c d")
}

func Test_Curly_03(t *testing.T) {
	checkCurly(t, true, "a + b", "+ a b")
	checkCurly(t, true, "a", "a")
	checkCurly(t, true, "", "")
}

func Test_Curly_04(t *testing.T) {
	// Even length
	checkCurly(t, true, "a + b +", ":nfx a + b +")
	// Dotted tail
	checkCurly(t, false, "a + b", ":nfx a + b")
}

func Test_Curly_05(t *testing.T) {
	checkCurly(t, true, "x = y", "= x y")
	checkCurly(t, true, "a b c d e", ":nfx a b c d e")
}

func checkCurly(t *testing.T, noDot bool, input string, expected string) {
	es := strings.Fields(input)
	eq := func(l, r string) bool { return l == r }
	nfx := func() string { return ":nfx" }
	//
	actual := CurlyTransform(es, noDot, eq, nfx)
	//
	assert.Equal(t, strings.Fields(expected), actual)
}

// ============================================================================
// Construction
// ============================================================================

// Source used by the construction tests:
//
//	a b c d $ x $ (e f)
//	0 2 4 6 8     14
const exampleText = "a b c d $ x $ (e f)"

func exampleEnv() FormatEnv {
	return NewFormatEnv(source.NewSourceFile("test.mm1", []byte(exampleText)))
}

func ident(start int) SExpr {
	return NewAtom(source.NewSpan(start, start+1), IDENT)
}

func Test_SExpr_00(t *testing.T) {
	env := exampleEnv()
	// (a b . (c . d)) ==> (a b c . d)
	inner := NewDottedList(source.NewSpan(4, 7), []SExpr{ident(4)}, util.Some(ident(6)))
	outer := NewDottedList(source.NewSpan(0, 7), []SExpr{ident(0), ident(2)}, util.Some(inner))
	//
	assert.Equal(t, "(a b c . d)", Render(env, &outer))
	assert.IsType(t, DottedList{}, outer.Kind)
	assert.Len(t, outer.Kind.(DottedList).Elements, 3)
}

func Test_SExpr_01(t *testing.T) {
	env := exampleEnv()
	// (a . (b c)) ==> (a b c)
	inner := NewList(source.NewSpan(2, 5), []SExpr{ident(2), ident(4)})
	outer := NewDottedList(source.NewSpan(0, 5), []SExpr{ident(0)}, util.Some(inner))
	//
	assert.Equal(t, "(a b c)", Render(env, &outer))
	assert.IsType(t, List{}, outer.Kind)
}

func Test_SExpr_02(t *testing.T) {
	env := exampleEnv()
	// (a . b) stays dotted
	e := NewDottedList(source.NewSpan(0, 3), []SExpr{ident(0)}, util.Some(ident(2)))
	//
	assert.Equal(t, "(a . b)", Render(env, &e))
	// No tail
	e = NewDottedList(source.NewSpan(0, 3), []SExpr{ident(0), ident(2)}, util.None[SExpr]())
	assert.Equal(t, "(a b)", Render(env, &e))
	// Empty
	e = NewList(source.NewSpan(0, 0), nil)
	assert.Equal(t, "()", Render(env, &e))
}

func Test_SExpr_03(t *testing.T) {
	env := exampleEnv()
	span := source.NewSpan(0, 7)
	// {a b c} has the single operator b
	e := NewCurlyList(span, true, []SExpr{ident(0), ident(2), ident(4)}, util.None[SExpr](), SameAtom(env))
	assert.Equal(t, "(b a c)", Render(env, &e))
	// {a b c d e} has distinct operators b and d
	e = NewCurlyList(span, true, []SExpr{ident(0), ident(2), ident(4), ident(6), ident(0)}, util.None[SExpr](),
		SameAtom(env))
	assert.Equal(t, "(:nfx a b c d a)", Render(env, &e))
	assert.True(t, e.Kind.(List)[0].IsAtom(NFX))
	// Not curly
	e = NewCurlyList(span, false, []SExpr{ident(0), ident(2), ident(4)}, util.None[SExpr](), SameAtom(env))
	assert.Equal(t, "(a b c)", Render(env, &e))
}

func Test_SExpr_04(t *testing.T) {
	env := exampleEnv()
	// Same text at different positions counts as the same operator.
	eq := SameAtom(env)
	assert.True(t, eq(ident(0), ident(0)))
	assert.False(t, eq(ident(0), ident(2)))
	assert.True(t, eq(NewAtom(source.NewSpan(0, 1), QUOTE), NewAtom(source.NewSpan(4, 5), QUOTE)))
	assert.False(t, eq(NewNumber(source.NewSpan(0, 1), big.NewInt(1)), NewNumber(source.NewSpan(0, 1), big.NewInt(1))))
}

// ============================================================================
// Rendering
// ============================================================================

func Test_Render_00(t *testing.T) {
	env := exampleEnv()
	span := source.NewSpan(0, 0)
	fmla := NewFormulaExpr(NewFormula(source.NewSpan(8, 13)))
	e := NewList(span, []SExpr{
		NewAtom(span, QUOTE),
		NewAtom(span, UNQUOTE),
		NewBool(span, true),
		NewBool(span, false),
		NewString(span, "x\"y\n"),
		NewNumber(span, big.NewInt(1234)),
		fmla,
	})
	//
	assert.Equal(t, `(quote unquote #t #f "x\"y\n" 1234 $ x $)`, Render(env, &e))
}

func Test_Render_01(t *testing.T) {
	env := exampleEnv()
	span := source.NewSpan(0, 0)
	n, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	e := NewNumber(span, n)
	//
	assert.Equal(t, "123456789012345678901234567890", Render(env, &e))
}

func Test_Render_02(t *testing.T) {
	env := exampleEnv()
	// (. a) has a tail but no elements
	e := NewDottedList(source.NewSpan(0, 1), nil, util.Some(ident(0)))
	//
	assert.IsType(t, DottedList{}, e.Kind)
	assert.Equal(t, "(. a)", Render(env, &e))
	assert.Equal(t, "(. a)\n", Pretty(env, &e, 80))
}

func Test_Formula_00(t *testing.T) {
	env := exampleEnv()
	fmla := NewFormula(source.NewSpan(8, 13))
	//
	assert.Equal(t, source.NewSpan(9, 12), fmla.Inner())
	assert.Equal(t, " x ", env.Text(fmla.Inner()))
	// Spans too short to hold both delimiters are returned unchanged
	assert.Equal(t, source.NewSpan(8, 9), NewFormula(source.NewSpan(8, 9)).Inner())
	assert.Equal(t, source.NewSpan(8, 8), NewFormula(source.NewSpan(8, 8)).Inner())
	// Exactly two delimiters leaves an empty inner span
	assert.Equal(t, source.NewSpan(9, 9), NewFormula(source.NewSpan(8, 10)).Inner())
}

func Test_DepType_00(t *testing.T) {
	dep := DepType{source.NewSpan(0, 1), []source.Span{source.NewSpan(2, 3), source.NewSpan(4, 5)}}
	//
	assert.Equal(t, source.NewSpan(0, 5), dep.Span())
	assert.Equal(t, source.NewSpan(0, 1), DepType{Sort: source.NewSpan(0, 1)}.Span())
}

func Test_Pretty_00(t *testing.T) {
	src := source.NewSourceFile("test.mm1", []byte("def x + 1 2"))
	env := NewFormatEnv(src)
	span := source.NewSpan(0, src.Len())
	at := func(s, e int) SExpr { return NewAtom(source.NewSpan(s, e), IDENT) }
	// (def x (+ 1 2))
	e := NewList(span, []SExpr{at(0, 3), at(4, 5), NewList(span, []SExpr{at(6, 7), at(8, 9), at(10, 11)})})
	//
	assert.Equal(t, "(def x (+ 1 2))\n", Pretty(env, &e, 80))
	assert.Equal(t, "(def x\n  (+ 1 2))\n", Pretty(env, &e, 10))
}

func Test_Equivalent_00(t *testing.T) {
	lenv := exampleEnv()
	renv := NewFormatEnv(source.NewSourceFile("other.mm1", []byte("    a b $ x $")))
	//
	lhs := NewDottedList(source.NewSpan(0, 3), []SExpr{ident(0), NewNumber(source.NewSpan(0, 0), big.NewInt(7))},
		util.Some(NewFormulaExpr(NewFormula(source.NewSpan(8, 13)))))
	rhs := NewDottedList(source.NewSpan(0, 3), []SExpr{ident(4), NewNumber(source.NewSpan(0, 0), big.NewInt(7))},
		util.Some(NewFormulaExpr(NewFormula(source.NewSpan(8, 13)))))
	other := NewList(source.NewSpan(0, 3), []SExpr{ident(6)})
	//
	assert.True(t, Equivalent(lenv, &lhs, renv, &rhs))
	assert.False(t, Equivalent(lenv, &lhs, renv, &other))
}
