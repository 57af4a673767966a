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
	"strconv"
	"strings"

	"github.com/consensys/go-mm0/pkg/util/source"
	"github.com/consensys/go-mm0/pkg/util/source/sexp"
)

// FormatEnv provides the text needed to render S-expressions, since nodes only
// record spans into the original source.
type FormatEnv interface {
	// Text returns the source text covered by a span.
	Text(span source.Span) string
	// SpanAtom returns the text of an atom at a given span.
	SpanAtom(span source.Span, atom Atom) string
}

// NewFormatEnv constructs a formatting environment over a given source file.
func NewFormatEnv(file *source.File) FormatEnv {
	return fileEnv{file}
}

type fileEnv struct {
	file *source.File
}

func (p fileEnv) Text(span source.Span) string {
	return p.file.Text(span)
}

func (p fileEnv) SpanAtom(span source.Span, atom Atom) string {
	return spanAtom(p, span, atom)
}

// Shared implementation of FormatEnv.SpanAtom.
func spanAtom(env FormatEnv, span source.Span, atom Atom) string {
	switch atom {
	case QUOTE:
		return "quote"
	case UNQUOTE:
		return "unquote"
	case NFX:
		return ":nfx"
	default:
		return env.Text(span)
	}
}

// Render an S-expression in its canonical lisp form.  Lists render as "(a b)",
// dotted lists as "(a b . c)", booleans as #t or #f, strings quoted with
// escapes, numbers in decimal and formulas as their source text (including
// delimiters).
func Render(env FormatEnv, e *SExpr) string {
	var builder strings.Builder
	//
	render(env, e, &builder)
	//
	return builder.String()
}

func render(env FormatEnv, e *SExpr, out *strings.Builder) {
	switch k := e.Kind.(type) {
	case Atom:
		out.WriteString(env.SpanAtom(e.Span, k))
	case List:
		out.WriteString("(")
		renderAll(env, k, out)
		out.WriteString(")")
	case DottedList:
		out.WriteString("(")
		renderAll(env, k.Elements, out)
		//
		if len(k.Elements) > 0 {
			out.WriteString(" ")
		}
		//
		out.WriteString(". ")
		render(env, k.Tail, out)
		out.WriteString(")")
	case Number:
		out.WriteString(k.Value.String())
	case String:
		out.WriteString(strconv.Quote(string(k)))
	case Bool:
		if k {
			out.WriteString("#t")
		} else {
			out.WriteString("#f")
		}
	case Formula:
		out.WriteString(env.Text(k.Span()))
	}
}

func renderAll(env FormatEnv, es []SExpr, out *strings.Builder) {
	for i := range es {
		if i != 0 {
			out.WriteString(" ")
		}
		//
		render(env, &es[i], out)
	}
}

// Lisp converts an S-expression into a generic symbolic expression, suitable
// for pretty printing.  Every leaf becomes a symbol holding its canonical
// rendering.
func Lisp(env FormatEnv, e *SExpr) sexp.SExp {
	switch k := e.Kind.(type) {
	case List:
		return sexp.NewList(lispAll(env, k))
	case DottedList:
		return sexp.NewDottedList(lispAll(env, k.Elements), Lisp(env, k.Tail))
	default:
		return sexp.NewSymbol(Render(env, e))
	}
}

func lispAll(env FormatEnv, es []SExpr) []sexp.SExp {
	elements := make([]sexp.SExp, len(es))
	//
	for i := range es {
		elements[i] = Lisp(env, &es[i])
	}
	//
	return elements
}

// Pretty renders an S-expression across multiple lines (where necessary) so as
// to fit within a given width.  The result is terminated by a newline.
func Pretty(env FormatEnv, e *SExpr, width uint) string {
	formatter := sexp.NewFormatter(width)
	//
	for _, head := range []string{"def", "fn", "let", "letrec", "have", "match", "if"} {
		formatter.Add(&sexp.SFormatter{Head: head, Priority: 1})
	}
	//
	for _, head := range []string{"begin", "focus"} {
		formatter.Add(&sexp.LFormatter{Head: head, Priority: 1})
	}
	//
	return formatter.Format(Lisp(env, e))
}
