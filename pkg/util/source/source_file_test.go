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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Span_00(t *testing.T) {
	span := NewSpan(3, 7)
	assert.Equal(t, 3, span.Start())
	assert.Equal(t, 7, span.End())
	assert.Equal(t, 4, span.Length())
	assert.True(t, span.Contains(3))
	assert.False(t, span.Contains(7))
	assert.Equal(t, "[3,7)", span.String())
}

func Test_Span_01(t *testing.T) {
	assert.Panics(t, func() { NewSpan(5, 4) })
}

func Test_Span_02(t *testing.T) {
	assert.Equal(t, NewSpan(1, 9), NewSpan(4, 9).Union(NewSpan(1, 2)))
	assert.True(t, NewSpan(2, 2).IsEmpty())
}

func Test_SourceFile_00(t *testing.T) {
	file := NewSourceFile("test.mm0", []byte("sort wff;\nterm imp: wff > wff > wff;\n"))
	//
	assert.Equal(t, 3, file.LineCount())
	assert.Equal(t, "wff", file.Text(NewSpan(5, 8)))
	assert.Equal(t, Position{0, 5}, file.Position(5))
	assert.Equal(t, Position{1, 0}, file.Position(10))
	assert.Equal(t, Position{1, 5}, file.Position(15))
	assert.Equal(t, Position{2, 0}, file.Position(1000))
}

func Test_SourceFile_01(t *testing.T) {
	file := NewSourceFile("test.mm0", []byte("ab\ncd"))
	//
	assert.Panics(t, func() { file.Text(NewSpan(2, 6)) })
}

func Test_SourceFile_02(t *testing.T) {
	file := NewSourceFile("test.mm0", []byte("first\nsecond line\nthird"))
	line := file.FindFirstEnclosingLine(NewSpan(8, 10))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "second line", line.String())
	assert.Equal(t, 6, line.Start())
	assert.Equal(t, 11, line.Length())
}

func Test_SourceFile_03(t *testing.T) {
	file := NewSourceFile("test.mm0", []byte("ab\ncde\nf"))
	//
	for offset := 0; offset <= file.Len(); offset++ {
		assert.Equal(t, offset, file.Offset(file.Position(offset)))
	}
	// Columns beyond the end of a line clamp to the line end
	assert.Equal(t, 6, file.Offset(Position{1, 42}))
}

func Test_SyntaxError_00(t *testing.T) {
	file := NewSourceFile("test.mm0", []byte("sort;\n"))
	err := file.SyntaxError(NewSpan(4, 5), "expected identifier")
	//
	assert.Equal(t, "4:5:expected identifier", err.Error())
	assert.Equal(t, file, err.SourceFile())
	line := err.FirstEnclosingLine()
	assert.Equal(t, 1, line.Number())
}
