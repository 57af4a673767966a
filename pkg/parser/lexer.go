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
	"github.com/consensys/go-mm0/pkg/util/source"
	"github.com/consensys/go-mm0/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "-- ... \n"
const COMMENT uint = 2

// LBRACE signals "("
const LBRACE uint = 3

// RBRACE signals ")"
const RBRACE uint = 4

// LCURLY signals "{"
const LCURLY uint = 5

// RCURLY signals "}"
const RCURLY uint = 6

// LSQUARE signals "["
const LSQUARE uint = 7

// RSQUARE signals "]"
const RSQUARE uint = 8

// COLON signals ":"
const COLON uint = 9

// SEMICOLON signals ";"
const SEMICOLON uint = 10

// DOT signals "."
const DOT uint = 11

// EQUALS signals "="
const EQUALS uint = 12

// GREATER_THAN signals ">"
const GREATER_THAN uint = 13

// AT signals "@"
const AT uint = 14

// QUOTE signals "'"
const QUOTE uint = 15

// COMMA signals ","
const COMMA uint = 16

// NUMBER signals a natural number
const NUMBER uint = 20

// STRING signals a quoted string
const STRING uint = 21

// FORMULA signals "$ ... $"
const FORMULA uint = 22

// BOOLEAN signals "#t" or "#f"
const BOOLEAN uint = 23

// IDENTIFIER signals an identifier (which may also be a keyword)
const IDENTIFIER uint = 24

// UNKNOWN signals a character which is not matched by any rule.
const UNKNOWN uint = 99

// Rule for describing whitespace
var whitespace lex.Scanner[byte] = lex.Many(lex.OneOf[byte](' ', '\t', '\r', '\n'))

// Comments start with "--" and continue until a newline or EOF.
var comment lex.Scanner[byte] = lex.SequenceNullableLast(lex.String("--"), lex.Until[byte]('\n'))

// Rule for describing numbers.  A number is either a hexadecimal or decimal
// one.
var (
	decimalDigit = lex.Within[byte]('0', '9')
	hexDigit     = lex.Or(
		lex.Within[byte]('0', '9'),
		lex.Within[byte]('A', 'F'),
		lex.Within[byte]('a', 'f'),
	)
	hexStart = lex.Sequence(lex.String("0x"), hexDigit)

	number = lex.Or(
		lex.SequenceNullableLast(hexStart, lex.Many(hexDigit)),
		lex.SequenceNullableLast(decimalDigit, lex.Many(decimalDigit)),
	)
)

// Rule for describing strings in quotes, where a backslash escapes the
// following character.
var strung lex.Scanner[byte] = lex.Or(
	lex.Unit[byte]('"', '"'),
	lex.Sequence(lex.Unit[byte]('"'),
		lex.Many(lex.Or(lex.Sequence(lex.Unit[byte]('\\'), lex.Not[byte]()), lex.Not[byte]('"', '\\'))),
		lex.Unit[byte]('"')),
)

// Rule for describing formulas (math strings) between dollar signs.
var formula lex.Scanner[byte] = lex.Or(
	lex.Unit[byte]('$', '$'),
	lex.Sequence(lex.Unit[byte]('$'), lex.Many(lex.Not[byte]('$')), lex.Unit[byte]('$')),
)

var boolean lex.Scanner[byte] = lex.Or(lex.String("#t"), lex.String("#f"))

var letter lex.Scanner[byte] = lex.Or(lex.Within[byte]('a', 'z'), lex.Within[byte]('A', 'Z'))

// Statement identifiers
var identifier lex.Scanner[byte] = lex.SequenceNullableLast(
	lex.Or(letter, lex.Unit[byte]('_')),
	lex.Many(lex.Or(letter, decimalDigit, lex.Unit[byte]('_'))))

// Lisp identifiers permit a much wider range of characters.
var (
	lispInitial = lex.Or(letter, lex.OneOf([]byte("!%&*/:<=>?^_~")...))
	lispRest    = lex.Many(lex.Or(lispInitial, decimalDigit, lex.OneOf[byte]('.', '@', '+', '-')))

	lispIdentifier = lex.Or(
		lex.SequenceNullableLast(lispInitial, lispRest),
		lex.SequenceNullableLast(lex.String("->"), lispRest),
		lex.String("..."),
		lex.OneOf[byte]('+', '-'),
	)
)

// lexing rules for the statement language.
var statementRules []lex.LexRule[byte] = []lex.LexRule[byte]{
	lex.Rule(comment, COMMENT),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Unit[byte]('('), LBRACE),
	lex.Rule(lex.Unit[byte](')'), RBRACE),
	lex.Rule(lex.Unit[byte]('{'), LCURLY),
	lex.Rule(lex.Unit[byte]('}'), RCURLY),
	lex.Rule(lex.Unit[byte](':'), COLON),
	lex.Rule(lex.Unit[byte](';'), SEMICOLON),
	lex.Rule(lex.Unit[byte]('.'), DOT),
	lex.Rule(lex.Unit[byte]('='), EQUALS),
	lex.Rule(lex.Unit[byte]('>'), GREATER_THAN),
	lex.Rule(lex.Unit[byte]('@'), AT),
	lex.Rule(number, NUMBER),
	lex.Rule(strung, STRING),
	lex.Rule(formula, FORMULA),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[byte](), END_OF),
}

// lexing rules for the lisp language.
var lispRules []lex.LexRule[byte] = []lex.LexRule[byte]{
	lex.Rule(comment, COMMENT),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Unit[byte]('('), LBRACE),
	lex.Rule(lex.Unit[byte](')'), RBRACE),
	lex.Rule(lex.Unit[byte]('{'), LCURLY),
	lex.Rule(lex.Unit[byte]('}'), RCURLY),
	lex.Rule(lex.Unit[byte]('['), LSQUARE),
	lex.Rule(lex.Unit[byte](']'), RSQUARE),
	lex.Rule(lex.Unit[byte]('\''), QUOTE),
	lex.Rule(lex.Unit[byte](','), COMMA),
	lex.Rule(lispIdentifier, IDENTIFIER),
	lex.Rule(lex.Unit[byte]('.'), DOT),
	lex.Rule(number, NUMBER),
	lex.Rule(strung, STRING),
	lex.Rule(formula, FORMULA),
	lex.Rule(boolean, BOOLEAN),
	lex.Rule(lex.Eof[byte](), END_OF),
}

// Lex a given text into a sequence of zero or more tokens (excluding
// whitespace and comments) using either the statement or lisp rules.  Any
// character not matched by a rule produces an UNKNOWN token.  The final token
// is always END_OF.
func Lex(text []byte, lisp bool) []lex.Token {
	var (
		tokens []lex.Token
		index  int
	)
	//
	for {
		token := scan(text, index, lisp)
		index = token.Span.End()
		//
		tokens = append(tokens, token)
		//
		if token.Kind == END_OF {
			return tokens
		}
	}
}

// Scan the next significant token starting at a given offset.  Whitespace and
// comments are skipped.
func scan(text []byte, offset int, lisp bool) lex.Token {
	var rules = statementRules
	//
	if lisp {
		rules = lispRules
	}
	// Anything beyond the end is the end
	offset = min(offset, len(text))
	//
	for {
		token, ok := lex.Scan(text, offset, rules...)
		//
		switch {
		case !ok:
			return lex.Token{Kind: UNKNOWN, Span: source.NewSpan(offset, offset+1)}
		case token.Kind == WHITESPACE || token.Kind == COMMENT:
			offset = token.Span.End()
		default:
			return token
		}
	}
}
