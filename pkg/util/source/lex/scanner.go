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
package lex

import (
	"cmp"
	"slices"
)

// Scanner is a function which accepts a given item or not.  It returns the
// number of items matched, where 0 signals failure.
type Scanner[T any] func(item []T) uint

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe, however, that there is an implicit
// left-to-right order of evaluation.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of characters.  That is, for this scanner to
// match, it must match all the given characters (one after the other) in their
// given order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) >= len(chars) && slices.Equal(items[:len(chars)], chars) {
			return uint(len(chars))
		}
		// fail
		return 0
	}
}

// OneOf accepts any single character from the given set.
func OneOf[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && slices.Contains(chars, items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// Not accepts any single character except those given.
func Not[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && !slices.Contains(chars, items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// String expects a given string s.  It is equivalent to [Unit](s[0], s[1], ...)
func String(s string) Scanner[byte] {
	return Unit([]byte(s)...)
}

// Within accepts any character within a given range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches zero or more of a given item.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := acceptor(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Until matches everything until a particular item is matched (or the input
// is exhausted).
func Until[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) && items[index] != item {
			index = index + 1
		}
		// done
		return index
	}
}

// Eof matches the end of the input stream.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}

// Sequence matches all the scanners in order.  Each scanner consumes the input
// right after the previous one ends, and every scanner must match something.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for _, scanner := range scanners {
			m := scanner(items[n:])
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// SequenceNullableLast matches all the scanners in order.  Each scanner
// consumes the input right after the previous one ends.  Only the final
// scanner is allowed a match length of 0.
func SequenceNullableLast[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for i, scanner := range scanners {
			m := scanner(items[n:])
			//
			if m == 0 && i != len(scanners)-1 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}
