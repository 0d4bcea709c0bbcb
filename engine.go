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

// Package steno turns a stream of steno chords into an edit script: it
// looks up (possibly multi-stroke) entries in a dictionary, retroactively
// re-translates earlier strokes when a later one completes a longer entry,
// fuses suffixes onto the preceding word with English orthography rules,
// and tracks the small amount of state (capitalization, spacing, glue) that
// carries over between words.
package steno

import (
	"github.com/nthand/steno/chord"
	"github.com/nthand/steno/dict"
)

// Dictionary looks up an entry for an exact stroke sequence and reports the
// longest entry key it holds, in strokes. *dict.Dictionary implements this.
type Dictionary interface {
	Get(strokes chord.Strokes) (dict.Entry, bool)
	MaxStrokes() int
}

// WordList reports whether a lowercased word is a known English word, used
// to decide whether a suffix should fuse onto the preceding word with
// orthography rules or simply append as typed. *wordlist.WordList
// implements this.
type WordList interface {
	Contains(word string) bool
}

// Engine holds all per-session translation state: the current InputState,
// the bounded backlog of recently emitted entries, and the output
// accumulating since the last Flush.
type Engine struct {
	dict  Dictionary
	words WordList

	state   InputState
	backlog *backlog

	outputInProgress       Output
	backlogEntryInProgress string
}

// NewEngine constructs an Engine with the default backlog depth.
func NewEngine(d Dictionary, w WordList) *Engine {
	return NewEngineWithBacklogDepth(d, w, DefaultBacklogDepth)
}

// NewEngineWithBacklogDepth is like NewEngine but with an explicit backlog
// depth, mainly so tests can exercise eviction without pushing thousands of
// strokes through.
func NewEngineWithBacklogDepth(d Dictionary, w WordList, backlogDepth int) *Engine {
	return &Engine{
		dict:    d,
		words:   w,
		state:   InitialState,
		backlog: newBacklog(backlogDepth),
	}
}

// RunKeys resolves one stroke and folds its effect into the pending Output.
// It returns ErrQuit, and nothing else, if the stroke ran a
// {PLOVER:QUIT} entry.
func (e *Engine) RunKeys(stroke chord.Chord) error {
	a := e.findAction(stroke)
	return e.runAction(a)
}

// Flush returns and clears the Output accumulated since the last Flush.
func (e *Engine) Flush() Output {
	out := e.outputInProgress
	e.outputInProgress = Output{}
	return out
}

// State returns the engine's current InputState, mainly for tests and
// debugging; frontends don't normally need it.
func (e *Engine) State() InputState {
	return e.state
}
