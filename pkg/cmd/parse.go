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
	"github.com/consensys/go-mm0/pkg/parser"
	"github.com/consensys/go-mm0/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [flags] file1.mm0 file2.mm1 ...",
	Short: "parse one or more MM0 / MM1 files.",
	Long: `Parse one or more MM0 / MM1 files, reporting any syntax errors and
	printing a summary of each statement parsed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			width   = GetUint(cmd, "textwidth")
			raw     = GetFlag(cmd, "raw")
			quiet   = GetFlag(cmd, "quiet")
			failure = false
		)
		//
		for _, srcfile := range readSourceFiles(args) {
			tree := parser.Parse(srcfile)
			log.Debugf("parsed %d statements (%d errors) from %s", len(tree.Stmts), len(tree.Errors),
				srcfile.Filename())
			//
			if reportErrors(os.Stdout, tree.Err()) {
				failure = true
			}
			//
			if !quiet {
				writeSummary(os.Stdout, tree, width, raw)
			}
		}
		//
		if failure {
			os.Exit(4)
		}
	},
}

// Write one line per statement giving its keyword, name and span.  The values
// of definitions, proofs and do blocks are printed beneath, as are the
// precedence and fixity of simple notations.
func writeSummary(out io.Writer, tree *ast.AST, width uint, raw bool) {
	for i := range tree.Stmts {
		var (
			stmt = &tree.Stmts[i]
			name = util.Map(stmt.Name(), tree.Text).UnwrapOr("_")
		)
		//
		inner := stmt
		for annot, ok := inner.Kind.(ast.AnnotStmt); ok; annot, ok = inner.Kind.(ast.AnnotStmt) {
			writeExpr(out, tree, &annot.Annot, width, raw)
			inner = annot.Stmt
		}
		//
		fmt.Fprintf(out, "%s %s %s\n", inner.Kind.Keyword(), name, stmt.Span.String())
		//
		switch kind := inner.Kind.(type) {
		case ast.DeclStmt:
			if value, ok := kind.Value.Get(); ok {
				writeExpr(out, tree, &value, width, raw)
			}
		case ast.DoStmt:
			for j := range kind.Exprs {
				writeExpr(out, tree, &kind.Exprs[j], width, raw)
			}
		case ast.SimpleNotaStmt:
			fmt.Fprintf(out, "%s prec %s %s\n", tree.Text(kind.Const.Trim), kind.Prec.String(), fixity(kind.Kind))
		}
	}
}

func fixity(kind ast.SimpleNotaKind) string {
	switch {
	case !kind.IsInfix():
		return "prefix"
	case kind.IsRight():
		return "right"
	default:
		return "left"
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("quiet", "q", false, "only report syntax errors")
}
