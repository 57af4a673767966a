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
	"testing"

	"github.com/consensys/go-mm0/pkg/parser"
	"github.com/consensys/go-mm0/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func Test_Converter_00(t *testing.T) {
	// "é" is two bytes but one UTF-16 unit, "𝔸" is four bytes and two units.
	srcfile := source.NewSourceFile("test.mm0", []byte("ab\né𝔸x\n"))
	conv := NewConverter(srcfile)
	//
	assert.Equal(t, protocol.Position{Line: 0, Character: 1}, conv.Position(1))
	assert.Equal(t, protocol.Position{Line: 1, Character: 0}, conv.Position(3))
	assert.Equal(t, protocol.Position{Line: 1, Character: 1}, conv.Position(5))
	assert.Equal(t, protocol.Position{Line: 1, Character: 3}, conv.Position(9))
	assert.Equal(t, protocol.Position{Line: 2, Character: 0}, conv.Position(11))
}

func Test_Converter_01(t *testing.T) {
	srcfile := source.NewSourceFile("test.mm0", []byte("ab\né𝔸x\n"))
	conv := NewConverter(srcfile)
	//
	for _, offset := range []int{0, 1, 2, 3, 5, 9, 10, 11} {
		assert.Equal(t, offset, conv.Offset(conv.Position(offset)), "offset %d", offset)
	}
	// Clamping
	assert.Equal(t, 2, conv.Offset(protocol.Position{Line: 0, Character: 100}))
	assert.Equal(t, 11, conv.Offset(protocol.Position{Line: 7, Character: 0}))
}

func Test_Diagnostics_00(t *testing.T) {
	tree := parser.Parse(source.NewSourceFile("/tmp/test.mm0", []byte("sort a;\nsort ;\n")))
	params := PublishDiagnostics(tree)
	//
	assert.Equal(t, protocol.DocumentURI(uri.File("/tmp/test.mm0")), params.URI)
	require.Len(t, params.Diagnostics, 1)
	//
	diag := params.Diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, diag.Severity)
	assert.Equal(t, "mm0", diag.Source)
	assert.Equal(t, "expected identifier", diag.Message)
	assert.Equal(t, protocol.Position{Line: 1, Character: 5}, diag.Range.Start)
}

const symbolExample = `sort wff;
term im (a b: wff): wff;
infixr im: $->$ prec 25;
axiom ax_1 (a b: wff): $ a -> b -> a $;
@(attr) theorem id (a: wff): $ a -> a $;
do { (display "hi") };
def d: wff;
`

func Test_DocumentSymbols_00(t *testing.T) {
	tree := parser.Parse(source.NewSourceFile("test.mm1", []byte(symbolExample)))
	require.Empty(t, tree.Errors)
	//
	symbols := DocumentSymbols(tree)
	require.Len(t, symbols, 6)
	//
	expected := []struct {
		name string
		kind protocol.SymbolKind
	}{
		{"wff", protocol.SymbolKindClass},
		{"im", protocol.SymbolKindConstructor},
		{"im", protocol.SymbolKindOperator},
		{"ax_1", protocol.SymbolKindMethod},
		{"id", protocol.SymbolKindMethod},
		{"d", protocol.SymbolKindFunction},
	}
	//
	for i, e := range expected {
		assert.Equal(t, e.name, symbols[i].Name)
		assert.Equal(t, e.kind, symbols[i].Kind)
	}
	// Annotated statement covers annotation
	assert.Equal(t, protocol.Position{Line: 4, Character: 0}, symbols[4].Range.Start)
	assert.Equal(t, protocol.Position{Line: 4, Character: 16}, symbols[4].SelectionRange.Start)
	assert.Equal(t, "theorem", symbols[4].Detail)
}

func Test_StatementAt_00(t *testing.T) {
	tree := parser.Parse(source.NewSourceFile("test.mm1", []byte(symbolExample)))
	//
	i, ok := StatementAt(tree, protocol.Position{Line: 1, Character: 3})
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	// Trailing newline is not part of any statement
	_, ok = StatementAt(tree, protocol.Position{Line: 0, Character: 9})
	assert.False(t, ok)
}
