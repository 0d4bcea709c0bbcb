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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nthand/steno/dict"
	"github.com/nthand/steno/orthography"
)

// deleteFullEntry pops the most recent backlog entry, if any, rewinds
// e.state to what it was before that entry ran, and queues its text for
// deletion. If the popped entry replaced the text of the entry before it
// (a Suffix fusion) and consists of a single stroke, that previous entry's
// text is re-appended: undoing the fusion falls back to the word as it
// stood before the suffix merged into it. If the backlog is empty, a whole
// word of already-flushed, pre-session text is deleted instead (the best an
// engine with no history of its own can do).
func (e *Engine) deleteFullEntry() (BacklogEvent, bool) {
	event, ok := e.backlog.popBack()
	if !ok {
		e.outputInProgress.deleteWords(1)
		return BacklogEvent{}, false
	}

	e.state = event.StateBefore
	e.outputInProgress.delete(CharsOrBytesForString(event.Text))

	if event.ReplacedPrevious && event.Strokes.NumStrokes() == 1 {
		if previous, ok := e.backlog.back(); ok {
			e.outputInProgress.appendText(previous.Text)
		}
	}

	return event, true
}

// undoStroke implements {PLOVER:BACKSPACE}: it deletes the most recent
// backlog entry entirely, then re-runs every stroke that produced it except
// the last one. This is what makes backspacing through a multi-stroke word
// remove only its last stroke's worth of text rather than the whole word.
func (e *Engine) undoStroke() error {
	event, ok := e.deleteFullEntry()
	if !ok {
		return nil
	}

	redo := event.Strokes[:len(event.Strokes)-1]
	for _, stroke := range redo {
		if err := e.RunKeys(stroke); err != nil {
			return err
		}
	}
	return nil
}

// takeInProgress removes and returns the text appended so far by the entry
// currently being run, if any, queuing it for deletion. Used when a Suffix
// part needs to fuse onto text this very entry already appended (e.g. a
// Glue part immediately followed by a Suffix in the same dictionary entry).
func (e *Engine) takeInProgress() (string, bool) {
	if e.backlogEntryInProgress == "" {
		return "", false
	}
	text := e.backlogEntryInProgress
	e.backlogEntryInProgress = ""
	e.outputInProgress.delete(CharsOrBytesForString(text))
	return text, true
}

// removePrevious removes the text a Suffix part should fuse onto: text this
// entry already appended, if any, otherwise the most recent backlog entry.
// It reports which of the two the text came from, since only fusing onto a
// backlog entry counts as "replacing" it for deleteFullEntry's purposes.
func (e *Engine) removePrevious() (text string, fromBacklog bool, ok bool) {
	if text, ok := e.takeInProgress(); ok {
		return text, false, true
	}
	if previous, ok := e.backlog.back(); ok {
		e.outputInProgress.delete(CharsOrBytesForString(previous.Text))
		return previous.Text, true, true
	}
	return "", false, false
}

// runAction runs every part of a, in order, mutating e.state and
// e.outputInProgress, and pushes a single new backlog entry covering
// everything it appended (if anything was appended at all). It returns
// ErrQuit if a {PLOVER:QUIT} part ran.
func (e *Engine) runAction(a action) error {
	if e.backlogEntryInProgress != "" {
		panic("steno: runAction called with a backlog entry already in progress")
	}

	for i := 0; i < a.deleteBefore; i++ {
		e.deleteFullEntry()
	}

	stateBefore := e.state
	replacedPrevious := false

	parts := a.entry
	if a.removedSuffix != nil {
		parts = append(append(dict.Entry(nil), a.entry...), a.removedSuffix...)
	}

	for _, part := range parts {
		switch part := part.(type) {
		case dict.Verbatim:
			e.runVerbatim(string(part))

		case dict.Suffix:
			previous, fromBacklog, ok := e.removePrevious()
			e.state.Space = false

			switch {
			case !ok:
				e.runVerbatim(string(part))

			default:
				if fromBacklog {
					replacedPrevious = true
				}

				withoutRules := asciiLower(previous + string(part))
				if !e.words.Contains(strings.TrimSpace(withoutRules)) {
					if combined, fused := orthography.Apply(previous, string(part)); fused {
						e.runVerbatim(combined)
						break
					}
				}
				e.runVerbatim(previous)
				e.appendText(string(part))
			}

		case dict.SpecialPunct:
			e.appendText(part.String())
			e.state.Space = true
			e.state.Caps = part.IsSentenceEnd()

		case dict.SetCaps:
			e.state.Caps = bool(part)

		case dict.SetSpace:
			e.state.Space = bool(part)

		case dict.CarryToNext:
			e.state.CarryToNext = true

		case dict.Glue:
			if e.state.Glue {
				e.appendText(string(part))
			} else {
				e.runVerbatim(string(part))
			}
			e.state.Glue = true

		case dict.PloverCommand:
			switch part {
			case dict.Backspace:
				if e.backlogEntryInProgress != "" {
					panic("steno: Backspace with a backlog entry already in progress")
				}
				if err := e.undoStroke(); err != nil {
					return err
				}
			case dict.Quit:
				return ErrQuit
			case dict.Reset:
				e.state = InitialState
				e.backlog.clear()
				e.backlogEntryInProgress = ""
				e.outputInProgress.reset()
			}
		}
	}

	if e.backlogEntryInProgress != "" {
		text := e.backlogEntryInProgress
		e.backlogEntryInProgress = ""
		e.backlog.push(BacklogEvent{
			Strokes:          a.strokes,
			Text:             text,
			StateBefore:      stateBefore,
			ReplacedPrevious: replacedPrevious,
		})
	}

	return nil
}

// appendText appends text to both the pending Output and the text buffer
// for the backlog entry this action will push.
func (e *Engine) appendText(text string) {
	e.outputInProgress.appendText(text)
	e.backlogEntryInProgress += text
}

// appendCapsed is like appendText but uppercases the first rune of text
// first if caps is set.
func (e *Engine) appendCapsed(text string, caps bool) {
	if caps {
		first, size := utf8.DecodeRuneInString(text)
		if size > 0 {
			text = string(unicode.ToUpper(first)) + text[size:]
		}
	}
	e.appendText(text)
}

// asciiLower lowercases only the ASCII letters of s, leaving any other byte
// untouched: the word-list membership check only cares about ASCII casing,
// not full Unicode case folding.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// runVerbatim appends text as a plain word: a leading space if e.state asks
// for one, then text itself capitalized per e.state, then resets caps/space
// to their post-word defaults unless CarryToNext asked to suppress that.
func (e *Engine) runVerbatim(text string) {
	e.state.Glue = false

	if e.state.Space {
		e.appendText(" ")
	}
	e.appendCapsed(text, e.state.Caps)

	if e.state.CarryToNext {
		e.state.CarryToNext = false
	} else {
		e.state.Caps = false
		e.state.Space = true
	}
}
