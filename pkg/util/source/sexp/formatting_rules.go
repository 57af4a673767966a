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
package sexp

import "math"

// FormattingRule provides a generic mechanism for writing custom formatting
// rules.  Whenever a list is encountered during formatting, the formatting
// rules will be given the opportunity to direct formatting of the list.  That
// is, whether to start a new line and indent the list as whole and/or any of
// its children.  A formatting rule should return nil for the formatting chunks
// when it doesn't handle the given list.
type FormattingRule interface {
	Split(*List) ([]FormattingChunk, uint)
}

// LFormatter is a formatting rule for lists which should be laid out thusly:
//
//	(head
//	  child1
//	  child2
//	  ...
//	  childn)
//
// That is, the head starts on a newly indented line, and each child is indented
// one more position.
type LFormatter struct {
	// Head symbol to match
	Head string
	// Priority to give for matching.
	Priority uint
}

// Split a list matching the given head into its formatting chunks.
func (p *LFormatter) Split(list *List) ([]FormattingChunk, uint) {
	if !matchHead(list, p.Head) {
		return nil, 0
	}
	//
	return splitAfter(list, 1, p.Priority), 1
}

// SFormatter is a formatting rule for lists which keep their first child on
// the same line as their head, thusly:
//
//	(head child1
//	  child2
//	  ...
//	  childn)
//
// That is, the head starts on a newly indented line, and each remaining child
// is indented one more position.
type SFormatter struct {
	// Head symbol to match
	Head string
	// Priority to give for matching.
	Priority uint
}

// Split a list matching the given head into its formatting chunks.
func (p *SFormatter) Split(list *List) ([]FormattingChunk, uint) {
	if !matchHead(list, p.Head) {
		return nil, 0
	}
	//
	return splitAfter(list, 2, p.Priority), 1
}

// Check whether a list starts with a symbol matching the given head.
func matchHead(list *List, head string) bool {
	if list.Len() == 0 {
		return false
	} else if sym := list.Get(0).AsSymbol(); sym != nil {
		return sym.Value == head
	}
	//
	return false
}

// Split the children of a list into chunks, such that the first n children
// never break onto a new line whilst the remainder break at the given priority.
func splitAfter(list *List, n int, priority uint) []FormattingChunk {
	var chunks = make([]FormattingChunk, list.Len())
	//
	for i := 0; i < list.Len(); i++ {
		chunks[i].Contents = list.Get(i)
		//
		if i < n {
			chunks[i].Priority = math.MaxUint
		} else {
			chunks[i].Priority = priority
			chunks[i].Indent = 1
		}
	}
	//
	return chunks
}
