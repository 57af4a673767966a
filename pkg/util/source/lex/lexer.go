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
package lex

import "github.com/consensys/go-mm0/pkg/util/source"

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Scan applies a set of rules to the items starting at a given offset, and
// returns the token produced by the first matching rule.  The token's span is
// positioned relative to the start of items (not the offset).  Scan is
// stateless, which allows a parser to switch between rule sets as it goes.
func Scan[T any](items []T, offset int, rules ...LexRule[T]) (Token, bool) {
	if offset > len(items) {
		return Token{}, false
	}
	//
	for _, r := range rules {
		if n := r.scanner(items[offset:]); n > 0 {
			end := min(len(items), offset+int(n))
			//
			return Token{r.tag, source.NewSpan(offset, end)}, true
		}
	}
	// no rule matched
	return Token{}, false
}
