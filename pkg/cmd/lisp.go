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
	"os"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/parser"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// lispCmd represents the lisp command
var lispCmd = &cobra.Command{
	Use:   "lisp [flags] file1 file2 ...",
	Short: "read and pretty print lisp expressions.",
	Long: `Read one or more files consisting entirely of lisp expressions, desugar
	any curly lists and pretty print the result.`,
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
			failure = false
		)
		//
		for _, srcfile := range readSourceFiles(args) {
			exprs, errs := parser.ReadLisp(srcfile)
			log.Debugf("read %d expressions from %s", len(exprs), srcfile.Filename())
			//
			if reportErrors(os.Stdout, combineErrors(errs)) {
				failure = true
			}
			//
			env := ast.NewFormatEnv(srcfile)
			//
			for i := range exprs {
				writeExpr(os.Stdout, env, &exprs[i], width, raw)
			}
		}
		//
		if failure {
			os.Exit(4)
		}
	},
}

func init() {
	rootCmd.AddCommand(lispCmd)
}
