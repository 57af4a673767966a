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
	"strings"

	"github.com/consensys/go-mm0/pkg/ast"
	"github.com/consensys/go-mm0/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/term"
)

// Width used for pretty printing when output is not a terminal.
const fallbackTextWidth = 80

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the width of the terminal attached to stdout (if any).
func defaultTextWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return fallbackTextWidth
}

// Set logging level based on the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Read the given source files, or exit if any cannot be read.
func readSourceFiles(filenames []string) []*source.File {
	for _, n := range filenames {
		log.Debugf("reading source file %s", n)
	}
	//
	srcfiles, err := source.ReadFiles(filenames...)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return srcfiles
}

// Write an expression either on one line (raw) or through the pretty printer
// for a given text width.
func writeExpr(out io.Writer, env ast.FormatEnv, e *ast.SExpr, width uint, raw bool) {
	if raw {
		fmt.Fprintln(out, ast.Render(env, e))
	} else {
		fmt.Fprint(out, ast.Pretty(env, e, width))
	}
}

// Combine zero or more syntax errors into a single error, or nil if there are
// none.
func combineErrors(errs []*source.SyntaxError) error {
	var err error
	//
	for _, e := range errs {
		err = multierr.Append(err, e)
	}
	//
	return err
}

// Report every error combined within a given error (if any), returning true
// when there was at least one.
func reportErrors(out io.Writer, err error) bool {
	if err == nil {
		return false
	}
	//
	log.Debug(err)
	//
	for _, e := range multierr.Errors(err) {
		if serr, ok := e.(*source.SyntaxError); ok {
			writeSyntaxError(out, serr)
		} else {
			fmt.Fprintln(out, e)
		}
	}
	//
	return true
}

// Write a syntax error with appropriate highlighting.
func writeSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := max(0, span.Start()-line.Start())
	// Calculate length (ensures don't overflow line, but always highlight
	// something)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", length))
}
