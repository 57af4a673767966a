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
	"cmp"
	"slices"

	"github.com/consensys/go-mm0/pkg/util/source"
	"go.uber.org/multierr"
)

// AST is the result of parsing a single file.  It owns the source text, and
// every statement refers into that text by spans.  Statements are stored in
// order of their (strictly increasing) end positions, which is what permits
// checkpoint search by binary search.
type AST struct {
	// Source file from which this tree was parsed.
	Source *source.File
	// Imports in order of occurrence.
	Imports []Import
	// Statements in order of occurrence.
	Stmts []Stmt
	// Errors arising during parsing, in order of occurrence.
	Errors []*source.SyntaxError
}

// Text returns the source text covered by a given span.
func (p *AST) Text(span source.Span) string {
	return p.Source.Text(span)
}

// Span is a synonym for Text.
func (p *AST) Span(span source.Span) string {
	return p.Text(span)
}

// SpanAtom returns the text of an atom at a given span.  Identifiers take
// their text from the source, whilst the remaining atoms have a fixed
// rendering.
func (p *AST) SpanAtom(span source.Span, atom Atom) string {
	return spanAtom(p, span, atom)
}

// LastCheckpoint determines where re-parsing can resume following an edit at
// the given position.  This returns the number of statements which remain
// valid, along with the offset at which parsing should resume.  A statement
// whose end is exactly the edit position remains valid.
func (p *AST) LastCheckpoint(pos int) (int, int) {
	i, found := slices.BinarySearchFunc(p.Stmts, pos, func(s Stmt, pos int) int {
		return cmp.Compare(s.Span.End(), pos)
	})
	//
	switch {
	case found:
		return i + 1, pos
	case i == 0:
		return 0, 0
	default:
		return i, p.Stmts[i-1].Span.End()
	}
}

// StmtAt returns the index of the statement containing the given position,
// if there is one.
func (p *AST) StmtAt(pos int) (int, bool) {
	i, _ := slices.BinarySearchFunc(p.Stmts, pos, func(s Stmt, pos int) int {
		if s.Span.End() <= pos {
			return -1
		}
		//
		return 1
	})
	//
	if i < len(p.Stmts) && p.Stmts[i].Span.Contains(pos) {
		return i, true
	}
	//
	return 0, false
}

// Err combines all errors encountered during parsing into a single error, or
// returns nil if there were none.
func (p *AST) Err() error {
	var err error
	//
	for _, e := range p.Errors {
		err = multierr.Append(err, e)
	}
	//
	return err
}
