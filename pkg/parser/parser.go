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
	"slices"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/util/source"
	"github.com/consensys/go-mm0/pkg/util/source/lex"
	log "github.com/sirupsen/logrus"
)

// Parse a given source file into an AST.  Parsing never fails outright.
// Instead, syntax errors are recorded in the AST and parsing resumes after
// the next semicolon.
func Parse(srcfile *source.File) *ast.AST {
	parser := NewParser(srcfile, ast.NewBuilder(srcfile), 0)
	//
	return parser.Parse()
}

// Reparse a source file following an edit at a given position, reusing every
// statement of the old AST which ends before the edit.  Statements from the
// last checkpoint onwards are parsed afresh from the new source file.
func Reparse(old *ast.AST, srcfile *source.File, pos int) *ast.AST {
	n, offset := old.LastCheckpoint(min(pos, srcfile.Len()))
	//
	log.Debugf("reparsing %s from offset %d (keeping %d of %d statements)", srcfile.Filename(), offset, n,
		len(old.Stmts))
	//
	parser := NewParser(srcfile, ast.ResumeBuilder(old, srcfile, n, offset), offset)
	//
	return parser.Parse()
}

// ReadLisp reads a source file consisting entirely of lisp expressions.
// Curly lists are desugared as they are read.
func ReadLisp(srcfile *source.File) ([]ast.SExpr, []*source.SyntaxError) {
	var (
		parser = NewParser(srcfile, nil, 0)
		exprs  []ast.SExpr
		errors []*source.SyntaxError
	)
	//
	parser.lisp = true
	//
	for !parser.follows(END_OF) {
		if e, errs := parser.parseSExpr(); len(errs) > 0 {
			errors = append(errors, errs...)
		} else {
			exprs = append(exprs, e)
		}
	}
	//
	return exprs, errors
}

// ============================================================================
// Parser
// ============================================================================

// Parser is a recursive descent parser for the statement language and its
// embedded lisp language.  Tokens are scanned on demand, using whichever rules
// are appropriate for the current mode.
type Parser struct {
	srcfile *source.File
	text    []byte
	env     ast.FormatEnv
	builder *ast.Builder
	// Position within the text
	index int
	// Whether scanning lisp tokens (or statement tokens)
	lisp bool
}

// NewParser constructs a new parser for a given source file, which starts at
// a given offset and adds statements to a given builder.
func NewParser(srcfile *source.File, builder *ast.Builder, offset int) *Parser {
	return &Parser{srcfile, []byte(srcfile.Contents()), ast.NewFormatEnv(srcfile), builder, offset, false}
}

// Parse all remaining statements and return the completed AST.
func (p *Parser) Parse() *ast.AST {
	for p.lisp = false; !p.follows(END_OF); p.lisp = false {
		stmt, errs := p.parseStatement()
		//
		p.builder.AddErrors(errs...)
		//
		if stmt != nil {
			p.builder.AddStmt(*stmt)
		} else {
			p.recover()
		}
	}
	//
	result := p.builder.Finish()
	//
	log.Debugf("parsed %s: %d statements, %d errors", p.srcfile.Filename(), len(result.Stmts), len(result.Errors))
	//
	return result
}

// Skip everything up to and including the next semicolon (or the end of
// file).
func (p *Parser) recover() {
	p.lisp = false
	//
	for {
		switch p.next().Kind {
		case END_OF, SEMICOLON:
			return
		}
	}
}

// Lookahead returns the next token without consuming it.
func (p *Parser) lookahead() lex.Token {
	return scan(p.text, p.index, p.lisp)
}

// Next consumes and returns the next token.
func (p *Parser) next() lex.Token {
	token := p.lookahead()
	p.index = token.Span.End()
	//
	return token
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint, expected string) (lex.Token, []*source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.syntaxErrors(lookahead, "expected "+expected)
	}
	//
	p.index = lookahead.Span.End()
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if lookahead := p.lookahead(); lookahead.Kind == kind {
		p.index = lookahead.Span.End()
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Check whether the next token is the given keyword.
func (p *Parser) followsKeyword(keyword string) bool {
	lookahead := p.lookahead()
	//
	return lookahead.Kind == IDENTIFIER && p.string(lookahead) == keyword
}

func (p *Parser) expectKeyword(keyword string) []*source.SyntaxError {
	if !p.followsKeyword(keyword) {
		return p.syntaxErrors(p.lookahead(), "expected "+keyword)
	}
	//
	p.next()
	//
	return nil
}

func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []*source.SyntaxError {
	return []*source.SyntaxError{p.srcfile.SyntaxError(token.Span, msg)}
}
