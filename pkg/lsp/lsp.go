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
package lsp

import (
	"github.com/consensys/go-mm0/pkg/ast"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// DIAGNOSTIC_SOURCE identifies diagnostics produced by this package.
const DIAGNOSTIC_SOURCE = "mm0"

// Diagnostics converts the syntax errors of an AST into editor diagnostics.
func Diagnostics(tree *ast.AST) []protocol.Diagnostic {
	var (
		conv        = NewConverter(tree.Source)
		diagnostics = make([]protocol.Diagnostic, len(tree.Errors))
	)
	//
	for i, err := range tree.Errors {
		diagnostics[i] = protocol.Diagnostic{
			Range:    conv.Range(err.Span()),
			Severity: protocol.DiagnosticSeverityError,
			Source:   DIAGNOSTIC_SOURCE,
			Message:  err.Message(),
		}
	}
	//
	return diagnostics
}

// PublishDiagnostics constructs the notification parameters reporting all
// syntax errors of an AST against its source file.
func PublishDiagnostics(tree *ast.AST) protocol.PublishDiagnosticsParams {
	return protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri.File(tree.Source.Filename())),
		Diagnostics: Diagnostics(tree),
	}
}

// DocumentSymbols returns one symbol for each statement which declares a
// name.  An annotated statement contributes the symbol of its inner statement,
// though its range covers the annotation.
func DocumentSymbols(tree *ast.AST) []protocol.DocumentSymbol {
	var (
		conv    = NewConverter(tree.Source)
		symbols []protocol.DocumentSymbol
	)
	//
	for i := range tree.Stmts {
		stmt := &tree.Stmts[i]
		name, ok := stmt.Name().Get()
		//
		if !ok {
			continue
		}
		//
		inner := innerStatement(stmt)
		//
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           tree.Text(name),
			Detail:         inner.Kind.Keyword(),
			Kind:           symbolKind(inner.Kind),
			Range:          conv.Range(stmt.Span),
			SelectionRange: conv.Range(name),
		})
	}
	//
	return symbols
}

// StatementAt returns the index of the statement enclosing a given editor
// position (if any).
func StatementAt(tree *ast.AST, pos protocol.Position) (int, bool) {
	return tree.StmtAt(NewConverter(tree.Source).Offset(pos))
}

func innerStatement(stmt *ast.Stmt) *ast.Stmt {
	for {
		annot, ok := stmt.Kind.(ast.AnnotStmt)
		//
		if !ok {
			return stmt
		}
		//
		stmt = annot.Stmt
	}
}

func symbolKind(kind ast.StmtKind) protocol.SymbolKind {
	switch kind := kind.(type) {
	case ast.SortStmt:
		return protocol.SymbolKindClass
	case ast.DeclStmt:
		switch kind.Kind {
		case ast.TERM:
			return protocol.SymbolKindConstructor
		case ast.AXIOM, ast.THEOREM:
			return protocol.SymbolKindMethod
		default:
			return protocol.SymbolKindFunction
		}
	case ast.CoercionStmt:
		return protocol.SymbolKindTypeParameter
	default:
		return protocol.SymbolKindOperator
	}
}
