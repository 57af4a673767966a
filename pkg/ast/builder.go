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
	"fmt"

	"github.com/consensys/go-mm0/pkg/util/source"
)

// Builder constructs an AST incrementally, one statement at a time.
// Statements must be added in order, and must not overlap.
type Builder struct {
	ast AST
}

// NewBuilder constructs a builder for an empty AST over a given source file.
func NewBuilder(file *source.File) *Builder {
	return &Builder{AST{Source: file}}
}

// ResumeBuilder constructs a builder which retains the first n statements of
// an existing AST (along with any imports and errors ending at or before the
// given offset), but over a new source file.  This is used for incremental
// re-parsing, where everything before the last checkpoint is unaffected by an
// edit.  The existing AST is not modified.
func ResumeBuilder(old *AST, file *source.File, n int, offset int) *Builder {
	var builder = NewBuilder(file)
	//
	builder.ast.Stmts = append(builder.ast.Stmts, old.Stmts[:n]...)
	//
	for _, imp := range old.Imports {
		if imp.Span.End() <= offset {
			builder.ast.Imports = append(builder.ast.Imports, imp)
		}
	}
	//
	for _, err := range old.Errors {
		if err.Span().End() <= offset {
			// Rebind to the new source file
			builder.ast.Errors = append(builder.ast.Errors, file.SyntaxError(err.Span(), err.Message()))
		}
	}
	//
	return builder
}

// AddStmt appends a statement.  This panics if the statement does not begin
// at or after the end of the previous statement, or is empty.
func (p *Builder) AddStmt(stmt Stmt) {
	if n := len(p.ast.Stmts); n > 0 {
		last := p.ast.Stmts[n-1].Span
		//
		if stmt.Span.Start() < last.End() || stmt.Span.End() <= last.End() {
			panic(fmt.Sprintf("statement %s out of order (follows %s)", stmt.Span.String(), last.String()))
		}
	}
	//
	if stmt.Span.IsEmpty() {
		panic(fmt.Sprintf("empty statement %s", stmt.Span.String()))
	}
	//
	p.ast.Stmts = append(p.ast.Stmts, stmt)
}

// AddImport records an import.
func (p *Builder) AddImport(imp Import) {
	p.ast.Imports = append(p.ast.Imports, imp)
}

// AddErrors records zero or more syntax errors.
func (p *Builder) AddErrors(errs ...*source.SyntaxError) {
	p.ast.Errors = append(p.ast.Errors, errs...)
}

// Finish returns the constructed AST.  The builder should not be used
// afterwards.
func (p *Builder) Finish() *AST {
	ast := p.ast
	return &ast
}
