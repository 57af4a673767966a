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
	"strconv"
	"strings"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/util"
	"github.com/consensys/go-mm0/pkg/util/source"
)

var declKinds = map[string]ast.DeclKind{
	"term":    ast.TERM,
	"axiom":   ast.AXIOM,
	"theorem": ast.THEOREM,
	"def":     ast.DEF,
}

var simpleNotaKinds = map[string]ast.SimpleNotaKind{
	"prefix": ast.PREFIX,
	"infixl": ast.INFIXL,
	"infixr": ast.INFIXR,
}

// Parse a single statement, including any modifiers or annotations.  A nil
// statement indicates the statement could not be parsed, and the parser must
// recover.  Otherwise, any errors returned were not fatal.
func (p *Parser) parseStatement() (*ast.Stmt, []*source.SyntaxError) {
	var (
		start = p.lookahead()
		kind  ast.StmtKind
		errs  []*source.SyntaxError
	)
	//
	if start.Kind == AT {
		return p.parseAnnotation()
	}
	//
	mods, modErrs := p.parseModifiers()
	keyword := p.lookahead()
	//
	if keyword.Kind != IDENTIFIER {
		return nil, append(modErrs, p.syntaxErrors(keyword, "expected statement")...)
	}
	// Determine type of statement
	switch text := p.string(keyword); text {
	case "sort":
		if !mods.IsSubsetOf(ast.SortData()) {
			modErrs = append(modErrs, p.syntaxErrors(keyword, "invalid modifiers for sort")...)
		}
		//
		kind, errs = p.parseSort(mods)
	case "term", "axiom", "theorem", "def":
		if !mods.AllowedVisibility(declKinds[text]) {
			modErrs = append(modErrs, p.syntaxErrors(keyword, "invalid modifiers for "+text)...)
		}
		//
		kind, errs = p.parseDecl(mods)
	default:
		if !mods.IsEmpty() {
			modErrs = append(modErrs, p.syntaxErrors(keyword, "unexpected modifiers")...)
		}
		//
		kind, errs = p.parseUnmodifiedStatement(text)
	}
	// Combine errors
	errs = append(modErrs, errs...)
	//
	if kind == nil {
		return nil, errs
	}
	//
	span := source.NewSpan(start.Span.Start(), p.index)
	// Record imports
	if imp, ok := kind.(ast.ImportStmt); ok {
		imp.Span = span
		kind = imp
		//
		p.builder.AddImport(imp.Import)
	}
	//
	return &ast.Stmt{Span: span, Kind: kind}, errs
}

func (p *Parser) parseUnmodifiedStatement(keyword string) (ast.StmtKind, []*source.SyntaxError) {
	switch keyword {
	case "delimiter":
		return p.parseDelimiter()
	case "prefix", "infixl", "infixr":
		return p.parseSimpleNotation()
	case "coercion":
		return p.parseCoercion()
	case "notation":
		return p.parseNotation()
	case "input", "output":
		return p.parseInout()
	case "do":
		return p.parseDo()
	case "import":
		return p.parseImport()
	default:
		return nil, p.syntaxErrors(p.lookahead(), "unknown statement")
	}
}

// Parse an annotated statement "@ sexpr stmt".
func (p *Parser) parseAnnotation() (*ast.Stmt, []*source.SyntaxError) {
	at := p.next()
	//
	p.lisp = true
	annot, errs := p.parseSExpr()
	p.lisp = false
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	inner, errs := p.parseStatement()
	//
	if inner == nil {
		return nil, errs
	}
	//
	span := source.NewSpan(at.Span.Start(), inner.Span.End())
	//
	return &ast.Stmt{Span: span, Kind: ast.AnnotStmt{Annot: annot, Stmt: inner}}, errs
}

// Parse zero or more modifiers.  Duplicate modifiers are reported, but are
// not fatal.
func (p *Parser) parseModifiers() (ast.Modifiers, []*source.SyntaxError) {
	var (
		mods = ast.NoModifiers()
		errs []*source.SyntaxError
	)
	//
	for lookahead := p.lookahead(); lookahead.Kind == IDENTIFIER; lookahead = p.lookahead() {
		m, ok := ast.ModifierFromName(p.string(lookahead))
		//
		if !ok {
			break
		} else if mods.Contains(m) {
			errs = append(errs, p.syntaxErrors(lookahead, "duplicate modifier")...)
		}
		//
		p.next()
		mods = mods.Union(ast.NewModifiers(m))
	}
	//
	return mods, errs
}

// Parse "sort x;"
func (p *Parser) parseSort(mods ast.Modifiers) (ast.StmtKind, []*source.SyntaxError) {
	p.next()
	//
	if id, errs := p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs := p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	} else {
		return ast.SortStmt{Id: id, Mods: mods}, nil
	}
}

// Parse "kind x binders* (: type (> type)*)? (= sexpr)? ;"
func (p *Parser) parseDecl(mods ast.Modifiers) (ast.StmtKind, []*source.SyntaxError) {
	var (
		decl = ast.Decl{Mods: mods, Kind: declKinds[p.string(p.next())]}
		errs []*source.SyntaxError
	)
	//
	if decl.Id, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if decl.Binders, errs = p.parseBinders(); len(errs) > 0 {
		return nil, errs
	}
	// Parse (optional) arrow type
	if p.match(COLON) {
		types, errs := p.parseArrowType()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		// All but the last type become anonymous hypotheses
		for _, t := range types[:len(types)-1] {
			decl.Binders = append(decl.Binders,
				ast.Binder{Span: t.Span(), Local: util.None[source.Span](), Kind: ast.ANON, Type: util.Some(t)})
		}
		//
		decl.Type = util.Some(types[len(types)-1])
	}
	// Parse (optional) value
	if p.match(EQUALS) {
		value, errs := p.parseLisp()
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		decl.Value = util.Some(value)
	}
	//
	if _, errs = p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.DeclStmt{Decl: decl}, nil
}

// Parse "delimiter $ ... $ ($ ... $)? ;"
func (p *Parser) parseDelimiter() (ast.StmtKind, []*source.SyntaxError) {
	var delimiter ast.Delimiter
	//
	p.next()
	//
	left, errs := p.parseDelimiterChars()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(FORMULA) {
		right, errs := p.parseDelimiterChars()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		delimiter = ast.LeftRightDelimiter(left, right)
	} else {
		delimiter = ast.BothDelimiter(left)
	}
	//
	if _, errs := p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.DelimiterStmt{Delimiter: delimiter}, nil
}

// Parse a formula containing whitespace-separated characters.
func (p *Parser) parseDelimiterChars() ([]byte, []*source.SyntaxError) {
	var chars []byte
	//
	token, errs := p.expect(FORMULA, "formula")
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for _, field := range strings.Fields(p.srcfile.Text(ast.NewFormula(token.Span).Inner())) {
		if len(field) != 1 {
			return nil, p.syntaxErrors(token, "delimiters must be single characters")
		}
		//
		chars = append(chars, field[0])
	}
	//
	return chars, nil
}

// Parse "(prefix|infixl|infixr) x : $c$ prec p ;"
func (p *Parser) parseSimpleNotation() (ast.StmtKind, []*source.SyntaxError) {
	var (
		nota = ast.SimpleNota{Kind: simpleNotaKinds[p.string(p.next())]}
		errs []*source.SyntaxError
	)
	//
	if nota.Id, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(COLON, ":"); len(errs) > 0 {
		return nil, errs
	} else if nota.Const, errs = p.parseConst(); len(errs) > 0 {
		return nil, errs
	} else if errs = p.expectKeyword("prec"); len(errs) > 0 {
		return nil, errs
	} else if nota.Prec, errs = p.parsePrec(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.SimpleNotaStmt{SimpleNota: nota}, nil
}

// Parse "coercion x : s1 > s2 ;"
func (p *Parser) parseCoercion() (ast.StmtKind, []*source.SyntaxError) {
	var (
		stmt ast.CoercionStmt
		errs []*source.SyntaxError
	)
	//
	p.next()
	//
	if stmt.Id, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(COLON, ":"); len(errs) > 0 {
		return nil, errs
	} else if stmt.From, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(GREATER_THAN, ">"); len(errs) > 0 {
		return nil, errs
	} else if stmt.To, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	}
	//
	return stmt, nil
}

// Parse "notation x binders* (: type)? = lit+ (: prec (lassoc|rassoc))? ;".
// A notation which does not begin with a constant is reported, but is not
// fatal.
func (p *Parser) parseNotation() (ast.StmtKind, []*source.SyntaxError) {
	var (
		nota    ast.GenNota
		errs    []*source.SyntaxError
		warning []*source.SyntaxError
	)
	//
	p.next()
	//
	if nota.Id, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if nota.Binders, errs = p.parseBinders(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.match(COLON) {
		t, errs := p.parseType()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		nota.Type = util.Some(t)
	}
	//
	if _, errs = p.expect(EQUALS, "="); len(errs) > 0 {
		return nil, errs
	}
	// Literals
	for p.follows(LBRACE, IDENTIFIER) {
		lit, errs := p.parseLiteral()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		nota.Lits = append(nota.Lits, lit)
	}
	//
	if len(nota.Lits) == 0 {
		return nil, p.syntaxErrors(p.lookahead(), "expected notation literal")
	} else if _, ok := nota.Lits[0].(ast.VarLiteral); ok {
		warning = []*source.SyntaxError{p.srcfile.SyntaxError(nota.Lits[0].Span(), "notation must begin with a constant")}
	}
	// Trailing precedence
	if p.match(COLON) {
		prec, errs := p.parseNotaPrec()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		nota.Prec = util.Some(prec)
	}
	//
	if _, errs = p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.NotationStmt{GenNota: nota}, warning
}

// Parse "($c$ : prec)" or "x".
func (p *Parser) parseLiteral() (ast.Literal, []*source.SyntaxError) {
	if p.follows(IDENTIFIER) {
		return ast.VarLiteral{Var: p.next().Span}, nil
	}
	//
	var (
		lit  ast.ConstLiteral
		errs []*source.SyntaxError
	)
	//
	p.next()
	//
	if lit.Const, errs = p.parseConst(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(COLON, ":"); len(errs) > 0 {
		return nil, errs
	} else if lit.Prec, errs = p.parsePrec(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(RBRACE, ")"); len(errs) > 0 {
		return nil, errs
	}
	//
	return lit, nil
}

// Parse "prec (lassoc|rassoc)"
func (p *Parser) parseNotaPrec() (ast.NotaPrec, []*source.SyntaxError) {
	prec, errs := p.parsePrec()
	//
	if len(errs) > 0 {
		return ast.NotaPrec{}, errs
	}
	//
	switch {
	case p.followsKeyword("lassoc"):
		p.next()
		return ast.NotaPrec{Prec: prec, Right: false}, nil
	case p.followsKeyword("rassoc"):
		p.next()
		return ast.NotaPrec{Prec: prec, Right: true}, nil
	default:
		return ast.NotaPrec{}, p.syntaxErrors(p.lookahead(), "expected lassoc or rassoc")
	}
}

// Parse "(input|output) kind : (x | $...$)* ;"
func (p *Parser) parseInout() (ast.StmtKind, []*source.SyntaxError) {
	var (
		stmt = ast.InoutStmt{Out: p.string(p.next()) == "output"}
		errs []*source.SyntaxError
	)
	//
	if stmt.Kind, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(COLON, ":"); len(errs) > 0 {
		return nil, errs
	}
	//
	for p.follows(IDENTIFIER, FORMULA) {
		token := p.next()
		//
		if token.Kind == IDENTIFIER {
			stmt.Exprs = append(stmt.Exprs, ast.NewAtom(token.Span, ast.IDENT))
		} else {
			stmt.Exprs = append(stmt.Exprs, ast.NewFormulaExpr(ast.NewFormula(token.Span)))
		}
	}
	//
	if _, errs = p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	}
	//
	return stmt, nil
}

// Parse "do { sexpr* }" with an optional trailing semicolon.
func (p *Parser) parseDo() (ast.StmtKind, []*source.SyntaxError) {
	var stmt ast.DoStmt
	//
	p.next()
	//
	if _, errs := p.expect(LCURLY, "{"); len(errs) > 0 {
		return nil, errs
	}
	//
	p.lisp = true
	//
	for !p.follows(RCURLY, END_OF) {
		e, errs := p.parseSExpr()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		stmt.Exprs = append(stmt.Exprs, e)
	}
	//
	if _, errs := p.expect(RCURLY, "}"); len(errs) > 0 {
		return nil, errs
	}
	//
	p.lisp = false
	p.match(SEMICOLON)
	//
	return stmt, nil
}

// Parse "import "file";"
func (p *Parser) parseImport() (ast.StmtKind, []*source.SyntaxError) {
	p.next()
	//
	token, errs := p.expect(STRING, "string")
	if len(errs) > 0 {
		return nil, errs
	}
	//
	target, err := strconv.Unquote(p.string(token))
	if err != nil {
		return nil, p.syntaxErrors(token, "invalid string")
	}
	//
	if _, errs := p.expect(SEMICOLON, ";"); len(errs) > 0 {
		return nil, errs
	}
	// NOTE: span is filled in by caller.
	return ast.ImportStmt{Import: ast.Import{Target: target}}, nil
}

// ============================================================================
// Binders and types
// ============================================================================

// A local variable within a binder group, prior to its type being known.
type local struct {
	span source.Span
	name util.Option[source.Span]
	kind ast.LocalKind
}

// Parse zero or more binder groups, such as "(x y: wff)" or "{.z: set}".
func (p *Parser) parseBinders() ([]ast.Binder, []*source.SyntaxError) {
	var binders []ast.Binder
	//
	for p.follows(LBRACE, LCURLY) {
		var (
			open   = p.next()
			closer = RBRACE
			kind   = ast.REG
			locals []local
			typ    = util.None[ast.Type]()
		)
		//
		if open.Kind == LCURLY {
			closer, kind = RCURLY, ast.BOUND
		}
		// Locals
		for !p.follows(COLON, closer) {
			l, errs := p.parseLocal(kind)
			if len(errs) > 0 {
				return nil, errs
			}
			//
			locals = append(locals, l)
		}
		//
		if len(locals) == 0 {
			return nil, p.syntaxErrors(p.lookahead(), "expected binder")
		}
		// Type (optional)
		if p.match(COLON) {
			t, errs := p.parseType()
			if len(errs) > 0 {
				return nil, errs
			}
			//
			typ = util.Some(t)
		}
		//
		if _, errs := p.expect(closer, "closing bracket"); len(errs) > 0 {
			return nil, errs
		}
		//
		for _, l := range locals {
			binders = append(binders, ast.Binder{Span: l.span, Local: l.name, Kind: l.kind, Type: typ})
		}
	}
	//
	return binders, nil
}

// Parse "x", ".x" or "_"
func (p *Parser) parseLocal(kind ast.LocalKind) (local, []*source.SyntaxError) {
	token := p.next()
	//
	switch {
	case token.Kind == DOT:
		id, errs := p.parseIdentifier()
		if len(errs) > 0 {
			return local{}, errs
		}
		//
		return local{source.NewSpan(token.Span.Start(), id.End()), util.Some(id), ast.DUMMY}, nil
	case token.Kind == IDENTIFIER && p.string(token) == "_":
		return local{token.Span, util.None[source.Span](), kind}, nil
	case token.Kind == IDENTIFIER:
		return local{token.Span, util.Some(token.Span), kind}, nil
	default:
		return local{}, p.syntaxErrors(token, "expected binder")
	}
}

// Parse "type (> type)*"
func (p *Parser) parseArrowType() ([]ast.Type, []*source.SyntaxError) {
	var types []ast.Type
	//
	for {
		t, errs := p.parseType()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		types = append(types, t)
		//
		if !p.match(GREATER_THAN) {
			return types, nil
		}
	}
}

// Parse "sort dep*" or a formula.
func (p *Parser) parseType() (ast.Type, []*source.SyntaxError) {
	token := p.next()
	//
	switch token.Kind {
	case FORMULA:
		return ast.NewFormula(token.Span), nil
	case IDENTIFIER:
		var deps []source.Span
		//
		for p.follows(IDENTIFIER) {
			deps = append(deps, p.next().Span)
		}
		//
		return ast.DepType{Sort: token.Span, Deps: deps}, nil
	default:
		return nil, p.syntaxErrors(token, "expected type")
	}
}

// ============================================================================
// Constants, precedences and identifiers
// ============================================================================

// Parse a notation constant, such as "$ + $".
func (p *Parser) parseConst() (ast.Const, []*source.SyntaxError) {
	token, errs := p.expect(FORMULA, "constant")
	if len(errs) > 0 {
		return ast.Const{}, errs
	}
	//
	var (
		fmla  = ast.NewFormula(token.Span)
		inner = fmla.Inner()
		text  = p.srcfile.Text(inner)
		start = inner.Start() + len(text) - len(strings.TrimLeft(text, " \t\r\n"))
		end   = inner.Start() + len(strings.TrimRight(text, " \t\r\n"))
	)
	//
	if start >= end {
		return ast.Const{}, p.syntaxErrors(token, "empty constant")
	} else if strings.ContainsAny(p.srcfile.Text(source.NewSpan(start, end)), " \t\r\n") {
		return ast.Const{}, p.syntaxErrors(token, "constant contains whitespace")
	}
	//
	return ast.Const{Fmla: fmla, Trim: source.NewSpan(start, end)}, nil
}

// Parse a precedence, which is either a number or "max".
func (p *Parser) parsePrec() (ast.Prec, []*source.SyntaxError) {
	token := p.next()
	//
	switch {
	case token.Kind == IDENTIFIER && p.string(token) == "max":
		return ast.MaxPrec(), nil
	case token.Kind == NUMBER:
		n, err := strconv.ParseUint(p.string(token), 10, 32)
		//
		if err != nil {
			return ast.Prec{}, p.syntaxErrors(token, "invalid precedence")
		}
		//
		return ast.NewPrec(uint32(n)), nil
	default:
		return ast.Prec{}, p.syntaxErrors(token, "expected precedence")
	}
}

func (p *Parser) parseIdentifier() (source.Span, []*source.SyntaxError) {
	token, errs := p.expect(IDENTIFIER, "identifier")
	//
	return token.Span, errs
}
