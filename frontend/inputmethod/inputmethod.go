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

// Package inputmethod drives a steno.Engine from individual physical key
// press/release events, the shape a Wayland input-method-protocol grab
// delivers them in: one event per switch, not one event per chord. It
// accumulates a stroke across the interval where at least one key is
// down and plays it through the engine the instant every key has been
// released again.
package inputmethod

import (
	"errors"

	"github.com/nthand/steno"
	"github.com/nthand/steno/chord"
)

// Compositor is the narrow slice of an input-method-protocol session this
// package needs: delete count bytes of surrounding text, commit new
// text, and flush the pending edits as one atomic change. No Wayland
// client library is wired to it here; a real composer implements this
// interface over whatever transport it has.
type Compositor interface {
	// DeleteSurroundingText deletes count UTF-8 bytes immediately before
	// the cursor.
	DeleteSurroundingText(count int)

	// CommitString inserts s at the cursor.
	CommitString(s string)

	// Commit flushes the pending DeleteSurroundingText/CommitString
	// calls as a single atomic edit.
	Commit()
}

// App accumulates raw key press/release events into chords and plays
// them through a steno.Engine, forwarding the resulting edits to a
// Compositor. Callers feed it with KeyPressed/KeyReleased as events
// arrive from the input method; App does not itself talk to Wayland.
type App struct {
	compositor Compositor
	engine     *steno.Engine

	seen    chord.Chord
	current chord.Chord

	done bool
}

// New returns an App that plays strokes through engine and forwards
// their output to compositor.
func New(compositor Compositor, engine *steno.Engine) *App {
	return &App{compositor: compositor, engine: engine}
}

// Done reports whether a {PLOVER:QUIT} entry has run; once true, the
// caller should stop delivering events and tear down its session.
func (a *App) Done() bool {
	return a.done
}

// KeyPressed records key as down, joining it into both the in-progress
// chord and the set of keys seen at all since the last stroke resolved.
func (a *App) KeyPressed(key chord.Key) {
	a.seen = a.seen.Set(key)
	a.current = a.current.Set(key)
}

// KeyReleased records key as up. Once every key that was down has come
// back up, the accumulated chord is a complete stroke: it is run through
// the engine and the resulting edit, if any, is sent to the compositor.
func (a *App) KeyReleased(key chord.Key) error {
	a.current = a.current.Clear(key)
	if !a.current.IsEmpty() || a.seen.IsEmpty() {
		return nil
	}

	stroke := a.seen
	a.seen = chord.Empty

	if err := a.engine.RunKeys(stroke); err != nil {
		if errors.Is(err, steno.ErrQuit) {
			a.done = true
			return nil
		}
		return err
	}

	a.runOutput(a.engine.Flush())
	return nil
}

// HandleKeycode translates a raw input-method keycode into a Key via
// chord.FromCode and dispatches it as a press or release. Keycodes that
// do not map to a steno key are ignored, the same as the original
// Wayland dispatch loop silently dropping unmapped keys.
func (a *App) HandleKeycode(code uint32, pressed bool) error {
	key, ok := chord.FromCode(code)
	if !ok {
		return nil
	}
	if pressed {
		a.KeyPressed(key)
		return nil
	}
	return a.KeyReleased(key)
}

func (a *App) runOutput(output steno.Output) {
	if output.DeleteWords == 0 && output.Delete.Bytes == 0 && output.Append == "" {
		return
	}

	// An input method can only delete by surrounding-text byte count, so
	// each requested word deletion is approximated by deleting one byte.
	deleteBytes := output.DeleteWords + output.Delete.Bytes
	if deleteBytes > 0 {
		a.compositor.DeleteSurroundingText(deleteBytes)
	}
	if output.Append != "" {
		a.compositor.CommitString(output.Append)
	}
	a.compositor.Commit()
}
