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

// Decl is a term, axiom, theorem or definition.
type Decl struct {
	Mods    Modifiers
	Kind    DeclKind
	Id      source.Span
	Binders []Binder
	// Return type, absent for a definition whose type is inferred.
	Type util.Option[Type]
	// Value of a definition or proof of a theorem.
	Value util.Option[SExpr]
}

// SimpleNotaKind distinguishes prefix and infix notations.
type SimpleNotaKind uint8

// PREFIX is a prefix notation, as in "prefix neg: $~$ prec 40;".
const PREFIX SimpleNotaKind = 0

// INFIXL is a left associative infix notation.
const INFIXL SimpleNotaKind = 1

// INFIXR is a right associative infix notation.
const INFIXR SimpleNotaKind = 2

// Keyword returns the keyword introducing notations of this kind.
func (k SimpleNotaKind) Keyword() string {
	switch k {
	case PREFIX:
		return "prefix"
	case INFIXL:
		return "infixl"
	default:
		return "infixr"
	}
}

// IsInfix checks whether this is an infix notation.
func (k SimpleNotaKind) IsInfix() bool {
	return k != PREFIX
}

// IsRight checks whether this is a right associative infix notation.
func (k SimpleNotaKind) IsRight() bool {
	return k == INFIXR
}

// SimpleNota is a prefix or infix notation for a term constructor.
type SimpleNota struct {
	Kind  SimpleNotaKind
	Id    source.Span
	Const Const
	Prec  Prec
}

// Literal is an element of a general notation.  This is either a constant
// with a precedence (ConstLiteral) or a variable reference (VarLiteral).
type Literal interface {
	// Span returns the span of this literal in the original text.
	Span() source.Span
}

// ConstLiteral is a constant token within a general notation, written
// "($c$:p)".
type ConstLiteral struct {
	Const Const
	Prec  Prec
}

// Span of a constant literal is that of its formula.
func (p ConstLiteral) Span() source.Span {
	return p.Const.Fmla.Span()
}

// VarLiteral refers to one of the binders of a general notation.
type VarLiteral struct {
	Var source.Span
}

// Span of a variable literal is that of its identifier.
func (p VarLiteral) Span() source.Span {
	return p.Var
}

// NotaPrec is the optional trailing precedence of a general notation, together
// with its associativity.
type NotaPrec struct {
	Prec  Prec
	Right bool
}

// GenNota is a general notation, which maps a sequence of constants and
// variables onto a term constructor.
type GenNota struct {
	Id      source.Span
	Binders []Binder
	Type    util.Option[Type]
	Lits    []Literal
	Prec    util.Option[NotaPrec]
}

// StmtKind is the payload of a statement.  This is one of SortStmt, DeclStmt,
// DelimiterStmt, SimpleNotaStmt, CoercionStmt, NotationStmt, InoutStmt,
// AnnotStmt, DoStmt or ImportStmt.
type StmtKind interface {
	// Keyword returns the keyword which introduces statements of this kind.
	Keyword() string
}

// SortStmt declares a sort.
type SortStmt struct {
	Id   source.Span
	Mods Modifiers
}

// DeclStmt is a declaration.
type DeclStmt struct {
	Decl
}

// DelimiterStmt declares delimiter characters.
type DelimiterStmt struct {
	Delimiter
}

// SimpleNotaStmt declares a prefix or infix notation.
type SimpleNotaStmt struct {
	SimpleNota
}

// CoercionStmt declares a coercion from one sort to another.
type CoercionStmt struct {
	Id   source.Span
	From source.Span
	To   source.Span
}

// NotationStmt declares a general notation.
type NotationStmt struct {
	GenNota
}

// InoutStmt is an input or output statement, which has a kind and a sequence
// of S-expressions (identifiers or formulas).
type InoutStmt struct {
	Out   bool
	Kind  source.Span
	Exprs []SExpr
}

// AnnotStmt annotates a statement with a lisp expression.
type AnnotStmt struct {
	Annot SExpr
	Stmt  *Stmt
}

// DoStmt is a block of lisp expressions to be evaluated.
type DoStmt struct {
	Exprs []SExpr
}

// ImportStmt imports another file.
type ImportStmt struct {
	Import
}

// Import records the span of an import statement, along with the (unquoted)
// target file name.
type Import struct {
	Span   source.Span
	Target string
}

// Keyword implementation for StmtKind interface.
func (SortStmt) Keyword() string { return "sort" }

// Keyword implementation for StmtKind interface.
func (p DeclStmt) Keyword() string { return p.Kind.Keyword() }

// Keyword implementation for StmtKind interface.
func (DelimiterStmt) Keyword() string { return "delimiter" }

// Keyword implementation for StmtKind interface.
func (p SimpleNotaStmt) Keyword() string { return p.Kind.Keyword() }

// Keyword implementation for StmtKind interface.
func (CoercionStmt) Keyword() string { return "coercion" }

// Keyword implementation for StmtKind interface.
func (NotationStmt) Keyword() string { return "notation" }

// Keyword implementation for StmtKind interface.
func (p InoutStmt) Keyword() string {
	if p.Out {
		return "output"
	}
	//
	return "input"
}

// Keyword implementation for StmtKind interface.
func (AnnotStmt) Keyword() string { return "@" }

// Keyword implementation for StmtKind interface.
func (DoStmt) Keyword() string { return "do" }

// Keyword implementation for StmtKind interface.
func (ImportStmt) Keyword() string { return "import" }

// Stmt is a top-level statement together with its span.  The span runs from
// the start of the first modifier (or keyword) up to and including the
// terminating semicolon.
type Stmt struct {
	Span source.Span
	Kind StmtKind
}

// Name returns the span of the identifier declared by this statement, if it
// declares one.  An annotated statement declares whatever its inner statement
// declares.
func (p *Stmt) Name() util.Option[source.Span] {
	switch k := p.Kind.(type) {
	case SortStmt:
		return util.Some(k.Id)
	case DeclStmt:
		return util.Some(k.Id)
	case SimpleNotaStmt:
		return util.Some(k.Id)
	case CoercionStmt:
		return util.Some(k.Id)
	case NotationStmt:
		return util.Some(k.Id)
	case AnnotStmt:
		return k.Stmt.Name()
	default:
		return util.None[source.Span]()
	}
}
