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
	"github.com/consensys/go-mm0/pkg/util"
	"github.com/consensys/go-mm0/pkg/util/source"
)

// Formula is a math string, i.e. source text delimited by "$" characters.
// The span includes both delimiters.
type Formula struct {
	span source.Span
}

// NewFormula constructs a formula covering the given span (including its
// delimiters).
func NewFormula(span source.Span) Formula {
	return Formula{span}
}

// Span returns the span of this formula, including its delimiters.
func (p Formula) Span() source.Span {
	return p.span
}

// Inner returns the span of this formula without its "$" delimiters.
func (p Formula) Inner() source.Span {
	if p.span.Length() < 2 {
		return p.span
	}
	//
	return source.NewSpan(p.span.Start()+1, p.span.End()-1)
}

// Const is a notation constant, such as "$+$".  The trimmed span identifies
// the constant token itself, without delimiters or surrounding whitespace.
type Const struct {
	Fmla Formula
	Trim source.Span
}

// Delimiter records the characters declared by a delimiter statement.  When
// Right is empty, the Left characters delimit tokens on both sides.
// Otherwise, Left characters delimit on the left and Right characters on the
// right.
type Delimiter struct {
	Left  []byte
	Right util.Option[[]byte]
}

// BothDelimiter constructs a delimiter statement of the form "delimiter $ ... $;".
func BothDelimiter(chars []byte) Delimiter {
	return Delimiter{chars, util.None[[]byte]()}
}

// LeftRightDelimiter constructs a delimiter statement of the form "delimiter
// $ ... $ $ ... $;".
func LeftRightDelimiter(left []byte, right []byte) Delimiter {
	return Delimiter{left, util.Some(right)}
}

// IsBoth checks whether this delimiter applies the same characters on both
// sides.
func (p Delimiter) IsBoth() bool {
	return p.Right.IsEmpty()
}

// Type is the type of a binder or a declaration.  This is either a dependent
// sort type or a formula.
type Type interface {
	// Span returns the span of this type in the original text.
	Span() source.Span
	isType()
}

// DepType is a sort together with the bound variables it depends on, as in "wff x
// y".
type DepType struct {
	Sort source.Span
	Deps []source.Span
}

// Span covers the sort and every dependency.
func (p DepType) Span() source.Span {
	if n := len(p.Deps); n > 0 {
		return p.Sort.Union(p.Deps[n-1])
	}
	//
	return p.Sort
}

func (p DepType) isType() {}

func (p Formula) isType() {}

// Binder introduces a variable (or hypothesis) into the scope of a
// declaration.  A binder without a local name is anonymous, e.g. "_" or a
// hypothesis arising from an arrow type.
type Binder struct {
	Span  source.Span
	Local util.Option[source.Span]
	Kind  LocalKind
	Type  util.Option[Type]
}
