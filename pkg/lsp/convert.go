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
	"unicode/utf16"
	"unicode/utf8"

	"github.com/consensys/go-mm0/pkg/util/source"
	"go.lsp.dev/protocol"
)

// Converter translates between byte offsets within a source file and editor
// positions, whose characters are counted in UTF-16 code units.
type Converter struct {
	srcfile *source.File
}

// NewConverter constructs a converter for a given source file.
func NewConverter(srcfile *source.File) Converter {
	return Converter{srcfile}
}

// Position converts a byte offset into an editor position.
func (p Converter) Position(offset int) protocol.Position {
	var (
		pos  = p.srcfile.Position(offset)
		line = p.srcfile.Line(pos.Line + 1)
		text = line.String()
	)
	//
	return protocol.Position{Line: uint32(pos.Line), Character: uint32(utf16Len(text[:pos.Column]))}
}

// Range converts a span into an editor range.
func (p Converter) Range(span source.Span) protocol.Range {
	return protocol.Range{Start: p.Position(span.Start()), End: p.Position(span.End())}
}

// Offset converts an editor position into a byte offset.  Positions beyond
// the end of a line are clamped to the end of that line, and positions which
// fall in the middle of a surrogate pair are rounded up.
func (p Converter) Offset(pos protocol.Position) int {
	var (
		line   = int(pos.Line)
		column = 0
	)
	// Count bytes up to the given character within the line (if it exists)
	if line < p.srcfile.LineCount() {
		ln := p.srcfile.Line(line + 1)
		text := ln.String()
		//
		for units := 0; column < len(text) && units < int(pos.Character); {
			r, size := utf8.DecodeRuneInString(text[column:])
			units += max(1, utf16.RuneLen(r))
			column += size
		}
	}
	//
	return p.srcfile.Offset(source.Position{Line: line, Column: column})
}

// Number of UTF-16 code units needed to encode a string.  Invalid bytes count
// as one unit each.
func utf16Len(text string) int {
	n := 0
	//
	for _, r := range text {
		n += max(1, utf16.RuneLen(r))
	}
	//
	return n
}
