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
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Modifier identifies one of the keywords which can prefix a statement.
type Modifier uint

// PURE marks a sort whose terms cannot be built from definitions.
const PURE Modifier = 0

// STRICT marks a sort which cannot be used as a bound variable target.
const STRICT Modifier = 1

// PROVABLE marks a sort whose expressions can be the subject of theorems.
const PROVABLE Modifier = 2

// FREE marks a sort whose variables cannot be dependencies of other variables.
const FREE Modifier = 3

// PUB marks a theorem as exported.
const PUB Modifier = 4

// ABSTRACT marks a definition whose body is not exported.
const ABSTRACT Modifier = 5

// LOCAL marks a definition which is not exported at all.
const LOCAL Modifier = 6

// NUM_MODIFIERS is the number of distinct modifiers.
const NUM_MODIFIERS = 7

var modifierNames = [NUM_MODIFIERS]string{"pure", "strict", "provable", "free", "pub", "abstract", "local"}

func (m Modifier) String() string {
	if m < NUM_MODIFIERS {
		return modifierNames[m]
	}
	//
	return "???"
}

// ModifierFromName returns the modifier with the given keyword, if there is
// one.
func ModifierFromName(name string) (Modifier, bool) {
	for i, n := range modifierNames {
		if n == name {
			return Modifier(i), true
		}
	}
	//
	return 0, false
}

// Modifiers is a set of modifiers.  Any subset of the modifiers is
// representable; whether a given set is legal depends on the statement it
// prefixes (see AllowedVisibility and SortData).  A set is never mutated once
// constructed, so sets can be freely copied.
type Modifiers struct {
	bits bitset.BitSet
}

// NoModifiers returns the empty set of modifiers.
func NoModifiers() Modifiers {
	return Modifiers{}
}

// NewModifiers constructs the set containing exactly the given modifiers.
func NewModifiers(mods ...Modifier) Modifiers {
	bits := bitset.New(NUM_MODIFIERS)
	//
	for _, m := range mods {
		bits.Set(uint(m))
	}
	//
	return Modifiers{*bits}
}

// SortData returns the modifiers which are meaningful on a sort declaration.
func SortData() Modifiers {
	return NewModifiers(PURE, STRICT, PROVABLE, FREE)
}

// Contains checks whether a given modifier is in this set.
func (p Modifiers) Contains(m Modifier) bool {
	return p.bits.Test(uint(m))
}

// IsEmpty checks whether this set contains no modifiers.
func (p Modifiers) IsEmpty() bool {
	return p.bits.None()
}

// Len returns the number of modifiers in this set.
func (p Modifiers) Len() uint {
	return p.bits.Count()
}

// Union returns the set of modifiers in either this set or the other.
func (p Modifiers) Union(other Modifiers) Modifiers {
	return Modifiers{*p.bits.Union(&other.bits)}
}

// Intersect returns the set of modifiers in both this set and the other.
func (p Modifiers) Intersect(other Modifiers) Modifiers {
	return Modifiers{*p.bits.Intersection(&other.bits)}
}

// Difference returns the set of modifiers in this set but not the other.
func (p Modifiers) Difference(other Modifiers) Modifiers {
	return Modifiers{*p.bits.Difference(&other.bits)}
}

// Equal checks whether two sets contain exactly the same modifiers.
func (p Modifiers) Equal(other Modifiers) bool {
	return p.bits.SymmetricDifferenceCardinality(&other.bits) == 0
}

// IsSubsetOf checks whether every modifier in this set is also in the other.
func (p Modifiers) IsSubsetOf(other Modifiers) bool {
	return other.bits.IsSuperSet(&p.bits)
}

// Flags returns the modifiers in this set, in canonical order.
func (p Modifiers) Flags() []Modifier {
	var flags []Modifier
	//
	for m := Modifier(0); m < NUM_MODIFIERS; m++ {
		if p.Contains(m) {
			flags = append(flags, m)
		}
	}
	//
	return flags
}

// AllowedVisibility determines whether this set of modifiers may prefix a
// declaration of the given kind.  Terms and axioms take no modifiers;
// definitions may be "abstract" or "local" (but not both); theorems may be
// "pub".  This is a pure predicate: reporting an illegal combination is left
// to the caller.
func (p Modifiers) AllowedVisibility(kind DeclKind) bool {
	switch kind {
	case TERM, AXIOM:
		return p.IsEmpty()
	case DEF:
		return p.IsEmpty() || p.Equal(NewModifiers(ABSTRACT)) || p.Equal(NewModifiers(LOCAL))
	case THEOREM:
		return p.IsEmpty() || p.Equal(NewModifiers(PUB))
	default:
		return false
	}
}

// String renders each modifier followed by a space, in canonical order, such
// that it can be written directly before the statement keyword.
func (p Modifiers) String() string {
	var builder strings.Builder
	//
	for _, m := range p.Flags() {
		builder.WriteString(m.String())
		builder.WriteString(" ")
	}
	//
	return builder.String()
}
