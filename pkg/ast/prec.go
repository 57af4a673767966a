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
	"cmp"
	"strconv"
)

// Prec is the precedence of a notation.  This is either a numeric level or
// the distinguished "max" level, which binds tighter than every numeric level.
// Precedences are comparable with ==.
type Prec struct {
	level uint32
	max   bool
}

// NewPrec constructs a numeric precedence.
func NewPrec(level uint32) Prec {
	return Prec{level, false}
}

// MaxPrec returns the "max" precedence.
func MaxPrec() Prec {
	return Prec{0, true}
}

// IsMax checks whether this is the "max" precedence.
func (p Prec) IsMax() bool {
	return p.max
}

// Level returns the numeric level of this precedence.  This is meaningless for
// the "max" precedence.
func (p Prec) Level() uint32 {
	return p.level
}

// Cmp compares two precedences, returning -1, 0 or +1.
func (p Prec) Cmp(other Prec) int {
	switch {
	case p.max && other.max:
		return 0
	case p.max:
		return 1
	case other.max:
		return -1
	default:
		return cmp.Compare(p.level, other.level)
	}
}

// Less checks whether this precedence binds more loosely than the other.
func (p Prec) Less(other Prec) bool {
	return p.Cmp(other) < 0
}

func (p Prec) String() string {
	if p.max {
		return "max"
	}
	//
	return strconv.FormatUint(uint64(p.level), 10)
}
