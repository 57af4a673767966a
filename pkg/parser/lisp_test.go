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
package parser

import (
	"strings"
	"testing"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lisp_00(t *testing.T) {
	checkLisp(t, "{a + b + c}", "(+ a b c)")
	checkLisp(t, "{a + b * c}", "(:nfx a + b * c)")
	checkLisp(t, "{a + b}", "(+ a b)")
	checkLisp(t, "{x = y}", "(= x y)")
	checkLisp(t, "{a + b + c + d}", "(+ a b c d)")
}

func Test_Lisp_01(t *testing.T) {
	checkLisp(t, "(x . (y . z))", "(x y . z)")
	checkLisp(t, "(x . (y z))", "(x y z)")
	checkLisp(t, "[a b]", "(a b)")
	checkLisp(t, "()", "()")
	checkLisp(t, "{a + . b}", "(a + . b)")
	checkLisp(t, "{a + b + . c}", "(:nfx a + b + . c)")
}

func Test_Lisp_02(t *testing.T) {
	checkLisp(t, `'(1 0x1f "s\n" #t #f $ f $)`, `(quote (1 31 "s\n" #t #f $ f $))`)
	checkLisp(t, ",x", "(unquote x)")
	checkLisp(t, "(fn (x) {x -> ...})", "(fn (x) (-> x ...))")
	checkLisp(t, "(:nfx a.b c@!? -- comment\n)", "(:nfx a.b c@!?)")
}

func Test_Lisp_03(t *testing.T) {
	checkLisp(t, "123456789012345678901234567890", "123456789012345678901234567890")
	checkLisp(t, "0xffffffffffffffffffff", "1208925819614629174706175")
}

func Test_Lisp_Errors(t *testing.T) {
	checkLispError(t, "(a b", "unclosed list")
	checkLispError(t, "(a b]", "mismatched bracket")
	checkLispError(t, "(. a)", "unexpected dot")
	checkLispError(t, "(a . b c)", "expected closing bracket")
	checkLispError(t, ")", "unexpected token")
	checkLispError(t, "'", "unexpected end of file")
	checkLispError(t, `"\q"`, "invalid string")
}

// Rendering a desugared expression and then reading it back produces an
// equivalent expression.
func Test_Lisp_RoundTrip(t *testing.T) {
	inputs := []string{
		"{a + b + c}",
		"{a + b * c}",
		"(x . (y . z))",
		`'(1 0x1f "s\n\t\"q\"" #t #f $ f $)`,
		",{f x . y}",
		"(def (foo x) (begin (display {x + 1}) [let ((y 2)) {x * y * y}]))",
	}
	//
	for _, input := range inputs {
		exprs, env := readLisp(t, input)
		//
		for i := range exprs {
			rendered := ast.Render(env, &exprs[i])
			again, renv := readLisp(t, rendered)
			//
			require.Len(t, again, 1, rendered)
			assert.True(t, ast.Equivalent(env, &exprs[i], renv, &again[0]), rendered)
			assert.Equal(t, rendered, ast.Render(renv, &again[0]))
		}
	}
}

func Test_Lisp_Pretty(t *testing.T) {
	exprs, env := readLisp(t, "(def foo (fn (x) {x + 1}))")
	//
	require.Len(t, exprs, 1)
	assert.Equal(t, "(def foo (fn (x) (+ x 1)))\n", ast.Pretty(env, &exprs[0], 80))
	assert.Equal(t, "(def foo\n  (fn (x)\n    (+ x 1)))\n", ast.Pretty(env, &exprs[0], 16))
}

func Test_Lex_00(t *testing.T) {
	tokens := Lex([]byte("sort a; -- x\n$ b $"), false)
	kinds := make([]uint, len(tokens))
	//
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	//
	assert.Equal(t, []uint{IDENTIFIER, IDENTIFIER, SEMICOLON, FORMULA, END_OF}, kinds)
}

func Test_Lex_01(t *testing.T) {
	// ">" is punctuation for statements, but an identifier for lisp.
	assert.Equal(t, GREATER_THAN, Lex([]byte(">"), false)[0].Kind)
	assert.Equal(t, IDENTIFIER, Lex([]byte(">"), true)[0].Kind)
	assert.Equal(t, UNKNOWN, Lex([]byte("+"), false)[0].Kind)
	assert.Equal(t, IDENTIFIER, Lex([]byte("+"), true)[0].Kind)
}

func readLisp(t *testing.T, input string) ([]ast.SExpr, ast.FormatEnv) {
	srcfile := source.NewSourceFile("test.mm1", []byte(input))
	exprs, errs := ReadLisp(srcfile)
	//
	for _, err := range errs {
		t.Errorf("unexpected error %s", err.Error())
	}
	//
	return exprs, ast.NewFormatEnv(srcfile)
}

func checkLisp(t *testing.T, input string, expected string) {
	exprs, env := readLisp(t, input)
	rendered := make([]string, len(exprs))
	//
	for i := range exprs {
		rendered[i] = ast.Render(env, &exprs[i])
	}
	//
	assert.Equal(t, expected, strings.Join(rendered, " "), input)
}

func checkLispError(t *testing.T, input string, msg string) {
	_, errs := ReadLisp(source.NewSourceFile("test.mm1", []byte(input)))
	//
	require.NotEmpty(t, errs, input)
	assert.Equal(t, msg, errs[0].Message(), input)
}
