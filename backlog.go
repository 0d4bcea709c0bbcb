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

import "github.com/nthand/steno/chord"

// DefaultBacklogDepth is the number of recent entries an Engine remembers
// for retroactive re-translation (folding a later stroke's dictionary
// lookup back over entries already emitted) and for Backspace. Plover's
// own default is comparable; it is large enough to cover any realistic
// multi-stroke dictionary entry and undo run without holding unbounded
// history.
const DefaultBacklogDepth = 1000

// BacklogEvent records one already-emitted entry: the strokes that produced
// it, the text it appended, the InputState in effect before it ran, and
// whether running it replaced (consumed) the text of the entry before it.
type BacklogEvent struct {
	Strokes          chord.Strokes
	Text             string
	StateBefore      InputState
	ReplacedPrevious bool
}

// backlog is a bounded ring buffer of BacklogEvent: pushing past capacity
// silently evicts the oldest entry.
type backlog struct {
	depth  int
	events []BacklogEvent
}

func newBacklog(depth int) *backlog {
	return &backlog{depth: depth}
}

// push appends event, evicting the oldest entry first if at capacity.
func (b *backlog) push(event BacklogEvent) {
	if len(b.events) >= b.depth {
		copy(b.events, b.events[1:])
		b.events = b.events[:len(b.events)-1]
	}
	b.events = append(b.events, event)
}

// popBack removes and returns the most recently pushed event, if any.
func (b *backlog) popBack() (BacklogEvent, bool) {
	if len(b.events) == 0 {
		return BacklogEvent{}, false
	}
	event := b.events[len(b.events)-1]
	b.events = b.events[:len(b.events)-1]
	return event, true
}

// back returns the most recently pushed event without removing it.
func (b *backlog) back() (BacklogEvent, bool) {
	if len(b.events) == 0 {
		return BacklogEvent{}, false
	}
	return b.events[len(b.events)-1], true
}

func (b *backlog) clear() {
	b.events = b.events[:0]
}

func (b *backlog) len() int {
	return len(b.events)
}

// lastN returns the n most recently pushed events, oldest first. It returns
// fewer than n if the backlog doesn't hold that many yet.
func (b *backlog) lastN(n int) []BacklogEvent {
	if n > len(b.events) {
		n = len(b.events)
	}
	return b.events[len(b.events)-n:]
}
