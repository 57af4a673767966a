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
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/util"
	"github.com/consensys/go-mm0/pkg/util/source"
	"github.com/consensys/go-mm0/pkg/util/source/lex"
)

// Parse a single lisp expression embedded within a statement, after which the
// parser returns to scanning statement tokens.
func (p *Parser) parseLisp() (ast.SExpr, []*source.SyntaxError) {
	p.lisp = true
	e, errs := p.parseSExpr()
	p.lisp = false
	//
	return e, errs
}

// Parse a lisp expression.  This assumes the parser is scanning lisp tokens.
func (p *Parser) parseSExpr() (ast.SExpr, []*source.SyntaxError) {
	token := p.next()
	//
	switch token.Kind {
	case LBRACE, LSQUARE, LCURLY:
		return p.parseList(token)
	case QUOTE:
		return p.parseQuoted(token, ast.QUOTE)
	case COMMA:
		return p.parseQuoted(token, ast.UNQUOTE)
	case IDENTIFIER:
		return ast.NewAtom(token.Span, ast.IDENT), nil
	case NUMBER:
		return p.number(token)
	case STRING:
		str, err := strconv.Unquote(p.string(token))
		//
		if err != nil {
			return ast.SExpr{}, p.syntaxErrors(token, "invalid string")
		}
		//
		return ast.NewString(token.Span, str), nil
	case BOOLEAN:
		return ast.NewBool(token.Span, p.string(token) == "#t"), nil
	case FORMULA:
		return ast.NewFormulaExpr(ast.NewFormula(token.Span)), nil
	case END_OF:
		return ast.SExpr{}, p.syntaxErrors(token, "unexpected end of file")
	default:
		return ast.SExpr{}, p.syntaxErrors(token, "unexpected token")
	}
}

// Parse "'e" or ",e" into "(quote e)" or "(unquote e)".
func (p *Parser) parseQuoted(token lex.Token, atom ast.Atom) (ast.SExpr, []*source.SyntaxError) {
	e, errs := p.parseSExpr()
	//
	if len(errs) > 0 {
		return e, errs
	}
	//
	span := source.NewSpan(token.Span.Start(), e.Span.End())
	//
	return ast.NewList(span, []ast.SExpr{ast.NewAtom(token.Span, atom), e}), nil
}

// Parse the remainder of a list whose opening bracket has been consumed.
// Curly lists are desugared into prefix form.
func (p *Parser) parseList(open lex.Token) (ast.SExpr, []*source.SyntaxError) {
	var (
		closer   = closingBracket(open.Kind)
		elements []ast.SExpr
		dot      = util.None[ast.SExpr]()
	)
	//
	for {
		token := p.lookahead()
		//
		switch token.Kind {
		case closer:
			p.next()
			//
			span := source.NewSpan(open.Span.Start(), token.Span.End())
			//
			return ast.NewCurlyList(span, open.Kind == LCURLY, elements, dot, ast.SameAtom(p.env)), nil
		case RBRACE, RSQUARE, RCURLY:
			return ast.SExpr{}, p.syntaxErrors(token, "mismatched bracket")
		case END_OF:
			return ast.SExpr{}, p.syntaxErrors(open, "unclosed list")
		case DOT:
			if len(elements) == 0 || dot.HasValue() {
				return ast.SExpr{}, p.syntaxErrors(token, "unexpected dot")
			}
			//
			p.next()
			//
			tail, errs := p.parseSExpr()
			if len(errs) > 0 {
				return tail, errs
			}
			//
			dot = util.Some(tail)
			// Tail must be last
			if !p.follows(closer) {
				return ast.SExpr{}, p.syntaxErrors(p.lookahead(), "expected closing bracket")
			}
		default:
			e, errs := p.parseSExpr()
			if len(errs) > 0 {
				return e, errs
			}
			//
			elements = append(elements, e)
		}
	}
}

func closingBracket(open uint) uint {
	switch open {
	case LSQUARE:
		return RSQUARE
	case LCURLY:
		return RCURLY
	default:
		return RBRACE
	}
}

// Parse a decimal or hexadecimal natural number.
func (p *Parser) number(token lex.Token) (ast.SExpr, []*source.SyntaxError) {
	var (
		text  = p.string(token)
		value = new(big.Int)
		ok    bool
	)
	//
	if hex, found := strings.CutPrefix(text, "0x"); found {
		_, ok = value.SetString(hex, 16)
	} else {
		_, ok = value.SetString(text, 10)
	}
	//
	if !ok {
		return ast.SExpr{}, p.syntaxErrors(token, "invalid number")
	}
	//
	return ast.NewNumber(token.Span, value), nil
}
