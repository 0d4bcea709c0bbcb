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

package steno

import (
	"github.com/nthand/steno/chord"
	"github.com/nthand/steno/dict"
)

// action is the outcome of resolving one stroke against the dictionary and
// the recent backlog: which entry to run, the full stroke history that
// produced it (for re-running after a partial undo), how many backlog
// entries it folds back over, and an optional dictionary-suffix entry
// peeled off the stroke and appended after the main entry.
type action struct {
	entry         dict.Entry
	strokes       chord.Strokes
	removedSuffix dict.Entry
	deleteBefore  int
}

func makeSimpleAction(entry dict.Entry, keys chord.Chord) action {
	return action{entry: entry, strokes: chord.Strokes{keys}}
}

func makeTextAction(text string, keys chord.Chord) action {
	return makeSimpleAction(dict.Entry{dict.Verbatim(text)}, keys)
}

func makeFallbackAction(keys chord.Chord) action {
	return makeTextAction(keys.String(), keys)
}
