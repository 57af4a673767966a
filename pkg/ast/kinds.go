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

// DeclKind distinguishes the four kinds of declaration.  The kind determines
// which modifiers are legal, and whether a value is meaningful.
type DeclKind uint8

// TERM declares a primitive term constructor.
const TERM DeclKind = 0

// AXIOM declares an assumed theorem.
const AXIOM DeclKind = 1

// THEOREM declares a theorem (with a proof in .mm1 files).
const THEOREM DeclKind = 2

// DEF declares a definition, which may carry a value.
const DEF DeclKind = 3

// Keyword returns the keyword which introduces declarations of this kind.
func (k DeclKind) Keyword() string {
	switch k {
	case TERM:
		return "term"
	case AXIOM:
		return "axiom"
	case THEOREM:
		return "theorem"
	case DEF:
		return "def"
	default:
		return "???"
	}
}

func (k DeclKind) String() string {
	return k.Keyword()
}

// LocalKind classifies the variable introduced by a binder.
type LocalKind uint8

// BOUND is a bound variable, written {x: s}.
const BOUND LocalKind = 0

// REG is a regular variable, written (x: s).
const REG LocalKind = 1

// DUMMY is a dummy variable of a definition, written .x.
const DUMMY LocalKind = 2

// ANON is an anonymous hypothesis arising from an arrow type such as a > b.
const ANON LocalKind = 3

// IsBound checks whether variables of this kind are binding, i.e. whether they
// may appear in the dependency list of a type.
func (k LocalKind) IsBound() bool {
	return k == BOUND || k == DUMMY
}

func (k LocalKind) String() string {
	switch k {
	case BOUND:
		return "bound"
	case REG:
		return "reg"
	case DUMMY:
		return "dummy"
	case ANON:
		return "anon"
	default:
		return "???"
	}
}
