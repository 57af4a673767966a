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
package source

import (
	"fmt"
	"os"
	"sort"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]*File, error) {
	files := make([]*File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line provides information about a given line within the original text.
// This includes the line number (counting from 1), and the span of the line
// within the original text.
type Line struct {
	// Original text
	text string
	// Span within original text of this line (excluding the newline).
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return p.text[p.span.start:p.span.end]
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of bytes in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// Position identifies a byte offset by its (zero-based) line and the
// (zero-based) byte column within that line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// File represents a given source file (typically stored on disk).  The
// contents of a file never change once it has been constructed, hence a
// single file is safely shared by every structure holding spans into it.
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents string
	// Offset of the first byte of each line.  The first entry is always 0.
	lines []int
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	contents := string(bytes)
	lines := []int{0}
	//
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	//
	return &File{filename, contents, lines}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() string {
	return s.contents
}

// Len returns the number of bytes in this source file.
func (s *File) Len() int {
	return len(s.contents)
}

// LineCount returns the number of physical lines in this file.  An empty file
// has exactly one (empty) line.
func (s *File) LineCount() int {
	return len(s.lines)
}

// Text returns the text covered by a given span.  Spans are only ever produced
// over the same text, hence a span which is out of bounds indicates a
// programming error.
func (s *File) Text(span Span) string {
	if span.end > len(s.contents) {
		panic(fmt.Sprintf("span %s out of bounds (%d bytes)", span.String(), len(s.contents)))
	}
	//
	return s.contents[span.start:span.end]
}

// Position determines the line and column of a given byte offset.  Offsets
// beyond the end of the file are clamped to the end.
func (s *File) Position(offset int) Position {
	offset = max(0, min(offset, len(s.contents)))
	// Find last line starting at or before offset
	line := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
	//
	return Position{line, offset - s.lines[line]}
}

// Offset converts a line and column back into a byte offset, clamping both the
// line and the column to the file.
func (s *File) Offset(pos Position) int {
	if pos.Line < 0 {
		return 0
	} else if pos.Line >= len(s.lines) {
		return len(s.contents)
	}
	//
	line := s.Line(pos.Line + 1)
	//
	return line.Start() + max(0, min(pos.Column, line.Length()))
}

// Line returns the line with the given number (counting from 1).
func (s *File) Line(number int) Line {
	if number < 1 || number > len(s.lines) {
		panic(fmt.Sprintf("invalid line number %d", number))
	}
	//
	start := s.lines[number-1]
	end := findEndOfLine(start, s.contents)
	//
	return Line{s.contents, Span{start, end}, number}
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.  Also,
// the returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	pos := s.Position(span.start)
	//
	return s.Line(pos.Line + 1)
}

// SyntaxError is a structured error which retains the index into the original
// string where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Byte span in the text being parsed where error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated. Observe that, if the position is beyond the bounds
// of the source file then the last physical line is returned.  Also, the
// returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Find the end of the enclosing line
func findEndOfLine(index int, text string) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
