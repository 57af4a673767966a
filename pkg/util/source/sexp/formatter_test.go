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
package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SExp_00(t *testing.T) {
	list := NewList([]SExp{NewSymbol("a"), NewSymbol("b c")})
	//
	assert.Equal(t, "(a b c)", list.String(false))
	assert.Equal(t, `(a "b c")`, list.String(true))
}

func Test_SExp_01(t *testing.T) {
	list := NewDottedList([]SExp{NewSymbol("a"), NewSymbol("b")}, NewSymbol("c"))
	//
	assert.True(t, list.IsDotted())
	assert.Equal(t, "(a b . c)", list.String(false))
	assert.Equal(t, "()", NewList(nil).String(false))
}

func Test_SExp_02(t *testing.T) {
	list := NewDottedList(nil, NewSymbol("x"))
	//
	assert.Equal(t, "(. x)", list.String(false))
	checkFormat(t, 80, "(. x)\n", list)
}

func Test_Formatter_00(t *testing.T) {
	checkFormat(t, 80, "(def x (+ 1 2))\n", defExample())
}

func Test_Formatter_01(t *testing.T) {
	checkFormat(t, 10, "(def\n  x\n  (+ 1 2))\n", defExample())
}

func Test_Formatter_02(t *testing.T) {
	// Dotted lists are never split by rules
	list := NewDottedList([]SExp{NewSymbol("def"), NewSymbol("x")}, NewSymbol("y"))
	checkFormat(t, 4, "(def x . y)\n", list)
}

func Test_Formatter_03(t *testing.T) {
	var text FormattedText
	//
	text.WriteString("(a")
	text.Indent(2)
	text.NewLine()
	text.WriteString("b)")
	//
	assert.Equal(t, "(a\n    b)\n", text.String())
	assert.Equal(t, uint(6), text.MaxWidth())
	assert.Equal(t, uint(6), text.LineWidth())
}

// ===================================================================
// Test Helpers
// ===================================================================

func defExample() SExp {
	sum := NewList([]SExp{NewSymbol("+"), NewSymbol("1"), NewSymbol("2")})
	return NewList([]SExp{NewSymbol("def"), NewSymbol("x"), sum})
}

func checkFormat(t *testing.T, width uint, expected string, sexp SExp) {
	formatter := NewFormatter(width, &LFormatter{Head: "def", Priority: 1})
	//
	assert.Equal(t, expected, formatter.Format(sexp))
}
