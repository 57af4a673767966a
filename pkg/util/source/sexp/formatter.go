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

import (
	"math"
)

// maxPriority bounds how many times the formatter will lower its threshold
// before giving up on fitting the text within the desired width.
const maxPriority = 10

// FormattingChunk represents a chunk of a lisp expression which is to be
// indented at a given priority level.
type FormattingChunk struct {
	Priority uint
	Indent   uint
	Contents SExp
}

// Formatter encapsulates and applies a given set of rules.
type Formatter struct {
	// Maximum desired width
	maxWidth uint
	// Rules to be used for formatting
	rules []FormattingRule
}

// NewFormatter constructs a new formatter which aims to fit its output within a
// given width.
func NewFormatter(width uint, rules ...FormattingRule) *Formatter {
	return &Formatter{width, rules}
}

// Add a new formatting rule to this formatter.
func (p *Formatter) Add(rule FormattingRule) {
	p.rules = append(p.rules, rule)
}

// Format a given S-Expression using the rules embedded within this formatter.
// The result is terminated by a newline.
func (p *Formatter) Format(sexp SExp) string {
	var (
		priority uint = 0
		changed       = true
		text     FormattedText
	)
	// Keep going whilst things are still changing.
	for changed {
		changed = false
		text = format(priority, p.maxWidth, sexp, p.rules)
		//
		if w := text.MaxWidth(); w > p.maxWidth && priority < maxPriority {
			changed = true
			priority++
		}
	}
	//
	return text.String()
}

func format(priority, maxWidth uint, sexp SExp, rules []FormattingRule) FormattedText {
	var text FormattedText
	//
	formatInner(priority, maxWidth, false, sexp, rules, &text)
	// Done
	return text
}

func formatInner(priority, maxWidth uint, newline bool, sexp SExp, rules []FormattingRule, text *FormattedText) {
	switch sexp := sexp.(type) {
	case *Symbol:
		text.WriteString(sexp.String(false))
	case *List:
		// Override priority?
		if text.LineWidth()+uint(len(sexp.String(false))) <= maxWidth {
			priority = 0
		}
		//
		if !sexp.IsDotted() {
			for _, rule := range rules {
				if chunks, indent := rule.Split(sexp); chunks != nil {
					formatWith(priority, maxWidth, newline, chunks, indent, rules, text)
					return
				}
			}
		}
		// default rule
		formatDefault(priority, maxWidth, sexp, rules, text)
	default:
		panic("unreachable")
	}
}

func formatWith(priority, maxWidth uint, newline bool, chunks []FormattingChunk, indent uint,
	rules []FormattingRule, text *FormattedText) {
	// A list only moves onto its own line when something precedes it.
	var broken = indent != math.MaxUint && !newline && text.LineWidth() > 0
	//
	if broken {
		text.Indent(int(indent))
		text.NewLine()
	}
	//
	text.WriteString("(")
	//
	for i, chunk := range chunks {
		var nl bool
		//
		if chunk.Priority <= priority {
			text.Indent(int(chunk.Indent))
			text.NewLine()
			// Request newline
			nl = true
		} else if i != 0 {
			text.WriteString(" ")
		}
		//
		formatInner(priority, maxWidth, nl, chunk.Contents, rules, text)
		//
		if chunk.Priority <= priority {
			text.Indent(-int(chunk.Indent))
		}
	}
	//
	text.WriteString(")")
	//
	if broken {
		text.Indent(-int(indent))
	}
}

func formatDefault(priority, maxWidth uint, sexp *List, rules []FormattingRule, text *FormattedText) {
	//
	text.WriteString("(")
	//
	for i := 0; i < sexp.Len(); i++ {
		if i != 0 {
			text.WriteString(" ")
		}

		formatInner(priority, maxWidth, false, sexp.Get(i), rules, text)
	}
	//
	if sexp.Tail != nil {
		if sexp.Len() > 0 {
			text.WriteString(" ")
		}
		//
		text.WriteString(". ")
		formatInner(priority, maxWidth, false, sexp.Tail, rules, text)
	}
	//
	text.WriteString(")")
}
