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
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Modifiers_00(t *testing.T) {
	mods := NewModifiers(PURE, PROVABLE)
	//
	assert.True(t, mods.Contains(PURE))
	assert.True(t, mods.Contains(PROVABLE))
	assert.False(t, mods.Contains(STRICT))
	assert.Equal(t, uint(2), mods.Len())
	assert.Equal(t, "pure provable ", mods.String())
	assert.Equal(t, []Modifier{PURE, PROVABLE}, mods.Flags())
}

func Test_Modifiers_01(t *testing.T) {
	assert.True(t, NoModifiers().IsEmpty())
	assert.True(t, NewModifiers().IsEmpty())
	assert.True(t, NoModifiers().Equal(NewModifiers()))
	assert.Equal(t, "", NoModifiers().String())
	assert.Equal(t, "pure strict provable free ", SortData().String())
}

func Test_Modifiers_02(t *testing.T) {
	lhs := NewModifiers(PURE, STRICT, PUB)
	rhs := NewModifiers(STRICT, LOCAL)
	//
	assert.True(t, lhs.Union(rhs).Equal(NewModifiers(PURE, STRICT, PUB, LOCAL)))
	assert.True(t, lhs.Intersect(rhs).Equal(NewModifiers(STRICT)))
	assert.True(t, lhs.Difference(rhs).Equal(NewModifiers(PURE, PUB)))
	assert.True(t, NewModifiers(PURE).IsSubsetOf(lhs))
	assert.True(t, NoModifiers().IsSubsetOf(lhs))
	assert.False(t, rhs.IsSubsetOf(lhs))
	assert.True(t, NewModifiers(FREE, PURE).IsSubsetOf(SortData()))
	// Operands are not modified
	assert.Equal(t, "pure strict pub ", lhs.String())
}

func Test_Modifiers_03(t *testing.T) {
	for i, name := range []string{"pure", "strict", "provable", "free", "pub", "abstract", "local"} {
		m, ok := ModifierFromName(name)
		//
		assert.True(t, ok)
		assert.Equal(t, Modifier(i), m)
		assert.Equal(t, name, m.String())
	}
	//
	_, ok := ModifierFromName("sort")
	assert.False(t, ok)
}

// Check every subset of modifiers against every declaration kind.
func Test_Modifiers_Visibility(t *testing.T) {
	for bits := 0; bits < 1<<NUM_MODIFIERS; bits++ {
		mods := modifiersOf(bits)
		//
		for _, kind := range []DeclKind{TERM, AXIOM, THEOREM, DEF} {
			expected := expectedVisibility(bits, kind)
			assert.Equal(t, expected, mods.AllowedVisibility(kind), "%s %s", mods.String(), kind.String())
		}
	}
}

func modifiersOf(bits int) Modifiers {
	var flags []Modifier
	//
	for m := Modifier(0); m < NUM_MODIFIERS; m++ {
		if bits&(1<<m) != 0 {
			flags = append(flags, m)
		}
	}
	//
	return NewModifiers(flags...)
}

func expectedVisibility(bits int, kind DeclKind) bool {
	switch kind {
	case TERM, AXIOM:
		return bits == 0
	case DEF:
		return bits == 0 || bits == 1<<ABSTRACT || bits == 1<<LOCAL
	default:
		return bits == 0 || bits == 1<<PUB
	}
}
