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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/lsp"
	"github.com/consensys/go-mm0/pkg/parser"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.lsp.dev/protocol"
)

// Outline is the machine readable form of the outline of a source file.
type Outline struct {
	Symbols     []protocol.DocumentSymbol         `json:"symbols"`
	Diagnostics protocol.PublishDiagnosticsParams `json:"diagnostics"`
}

// outlineCmd represents the outline command
var outlineCmd = &cobra.Command{
	Use:   "outline [flags] file.mm1",
	Short: "print the outline of an MM0 / MM1 file.",
	Long: `Print the symbols declared in an MM0 / MM1 file, along with any
	diagnostics, using editor positions.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		tree := readAndParse(args[0])
		//
		if GetFlag(cmd, "json") {
			if err := writeOutlineJson(os.Stdout, tree); err != nil {
				log.Error(err)
				os.Exit(2)
			}
		} else {
			writeOutline(os.Stdout, tree)
		}
		// Diagnostics are part of the outline, so only the status reflects them
		if err := tree.Err(); err != nil {
			log.Debug(err)
			os.Exit(4)
		}
	},
}

// NewOutline constructs the outline of a given AST.
func NewOutline(tree *ast.AST) Outline {
	return Outline{lsp.DocumentSymbols(tree), lsp.PublishDiagnostics(tree)}
}

func writeOutlineJson(out io.Writer, tree *ast.AST) error {
	bytes, err := json.MarshalIndent(NewOutline(tree), "", "  ")
	if err != nil {
		return err
	}
	//
	_, err = fmt.Fprintln(out, string(bytes))
	//
	return err
}

func writeOutline(out io.Writer, tree *ast.AST) {
	outline := NewOutline(tree)
	//
	for _, sym := range outline.Symbols {
		fmt.Fprintf(out, "%s %s %s\n", sym.Detail, sym.Name, formatPosition(sym.SelectionRange.Start))
	}
	//
	for _, diag := range outline.Diagnostics.Diagnostics {
		fmt.Fprintf(out, "error %s %s\n", formatPosition(diag.Range.Start), diag.Message)
	}
}

// Editor positions count from zero, but are reported from one.
func formatPosition(pos protocol.Position) string {
	return fmt.Sprintf("%d:%d", pos.Line+1, pos.Character+1)
}

// Read and parse a single source file, exiting if it cannot be read.
func readAndParse(filename string) *ast.AST {
	srcfile := readSourceFiles([]string{filename})[0]
	tree := parser.Parse(srcfile)
	log.Debugf("parsed %d statements (%d errors) from %s", len(tree.Stmts), len(tree.Errors), filename)
	//
	return tree
}

func init() {
	rootCmd.AddCommand(outlineCmd)
	outlineCmd.Flags().Bool("json", false, "emit symbols and diagnostics as JSON")
}
