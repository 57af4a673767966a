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
	"strconv"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/parser"
	"github.com/spf13/cobra"
)

// checkpointCmd represents the checkpoint command
var checkpointCmd = &cobra.Command{
	Use:   "checkpoint [flags] file.mm1 offset",
	Short: "report where reparsing resumes after an edit.",
	Long: `Report the last statement checkpoint at or before a given byte offset
	in an MM0 / MM1 file.  This is the number of statements which an incremental
	reparse would keep, along with the offset at which parsing resumes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		offset, err := strconv.Atoi(args[1])
		if err != nil || offset < 0 {
			fmt.Printf("invalid offset \"%s\"\n", args[1])
			os.Exit(2)
		}
		//
		tree := readAndParse(args[0])
		//
		writeCheckpoint(os.Stdout, tree, min(offset, tree.Source.Len()), GetFlag(cmd, "reparse"))
		//
		if reportErrors(os.Stdout, tree.Err()) {
			os.Exit(4)
		}
	},
}

// Write the checkpoint for a given offset, and optionally the outcome of
// reparsing from it.
func writeCheckpoint(out io.Writer, tree *ast.AST, offset int, reparse bool) {
	index, resume := tree.LastCheckpoint(offset)
	fmt.Fprintf(out, "%d %d\n", index, resume)
	//
	if reparse {
		again := parser.Reparse(tree, tree.Source, offset)
		fmt.Fprintf(out, "%d statements, %d errors\n", len(again.Stmts), len(again.Errors))
	}
}

func init() {
	rootCmd.AddCommand(checkpointCmd)
	checkpointCmd.Flags().Bool("reparse", false, "reparse the file from the checkpoint")
}
