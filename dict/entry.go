// Copyright 2025 The Steno Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dict parses and holds the steno dictionary: the mapping from a
// stroke sequence to the sequence of typed actions it plays back.
package dict

import "strings"

// EntryPart is one typed instruction within a dictionary entry. The
// concrete types below are the only implementations; callers switch on
// the concrete type to dispatch.
type EntryPart interface {
	isEntryPart()
}

// Verbatim is a word body. It receives the current caps/space treatment.
type Verbatim string

func (Verbatim) isEntryPart() {}

// Suffix attaches to the immediately preceding emission, subject to
// orthography rules (see the orthography package).
type Suffix string

func (Suffix) isEntryPart() {}

// Glue concatenates without a space when the previous emission was also
// Glue; otherwise it behaves like Verbatim.
type Glue string

func (Glue) isEntryPart() {}

// SpecialPunct is one of the punctuation marks with engine-specific
// spacing/caps behavior.
type SpecialPunct rune

const (
	Period   SpecialPunct = '.'
	Comma    SpecialPunct = ','
	Colon    SpecialPunct = ':'
	Semi     SpecialPunct = ';'
	Bang     SpecialPunct = '!'
	Question SpecialPunct = '?'
)

func (SpecialPunct) isEntryPart() {}

// IsSentenceEnd reports whether p should set caps-next.
func (p SpecialPunct) IsSentenceEnd() bool {
	switch p {
	case Period, Bang, Question:
		return true
	default:
		return false
	}
}

func (p SpecialPunct) String() string {
	return string(rune(p))
}

func parseSpecialPunct(s string) (SpecialPunct, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch SpecialPunct(s[0]) {
	case Period, Comma, Colon, Semi, Bang, Question:
		return SpecialPunct(s[0]), true
	default:
		return 0, false
	}
}

// SetCaps assigns the caps flag without emitting text.
type SetCaps bool

func (SetCaps) isEntryPart() {}

// SetSpace assigns the space flag without emitting text.
type SetSpace bool

func (SetSpace) isEntryPart() {}

// CarryToNext defers clearing caps/space past exactly one subsequent
// Verbatim emission.
type CarryToNext struct{}

func (CarryToNext) isEntryPart() {}

// PloverCommand names a meta-command: backspace-and-retype, quit the
// engine, or reset all state.
type PloverCommand int

const (
	Backspace PloverCommand = iota
	Quit
	Reset
)

func (PloverCommand) isEntryPart() {}

func parsePloverCommand(name string) (PloverCommand, bool) {
	switch strings.ToLower(name) {
	case "backspace":
		return Backspace, true
	case "quit":
		return Quit, true
	case "reset":
		return Reset, true
	default:
		return 0, false
	}
}

// Entry is an immutable, cheaply shared dictionary value: the ordered
// list of parts a single stroke sequence plays back. A Go slice already
// shares its backing array across copies, so Entry needs no reference
// wrapper to satisfy the "cheap to share" requirement.
type Entry []EntryPart
