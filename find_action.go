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

var numberKeys = []struct {
	key chord.Key
	ch  byte
}{
	{chord.S, '1'},
	{chord.T, '2'},
	{chord.P, '3'},
	{chord.H, '4'},
	{chord.A, '5'},
	{chord.O, '0'},
	{chord.F, '6'},
	{chord.P2, '7'},
	{chord.L, '8'},
	{chord.T2, '9'},
}

// removeIfAny clears mask from *keys and reports true if keys had any bit
// of mask set. It leaves *keys untouched if not.
func removeIfAny(keys *chord.Chord, mask chord.Chord) bool {
	if !keys.ContainsAny(mask) {
		return false
	}
	*keys = keys.Without(mask)
	return true
}

// removeIfAll clears mask from *keys and reports true only if keys had
// every bit of mask set. It leaves *keys untouched otherwise, so a caller
// can fall back to checking mask's bits individually.
func removeIfAll(keys *chord.Chord, mask chord.Chord) bool {
	if keys.Intersect(mask) != mask {
		return false
	}
	*keys = keys.Without(mask)
	return true
}

// makeNumbers decodes keys as a numeric chord per the number bar rules: the
// number-bar keys spell digits in steno order, E or U (either one) reverses
// them, D and Z together mean a round-dollar amount, D alone duplicates the
// digits, Z alone appends two zeros, and K (or B and G together) appends
// ":00" for a time. It reports false if keys has the number bar but isn't a
// well-formed number, or doesn't have the number bar at all.
func makeNumbers(keys chord.Chord) (string, bool) {
	if !keys.Contains(chord.NumberBar) {
		return "", false
	}
	keys = keys.Clear(chord.NumberBar)

	var ret []byte
	for _, nk := range numberKeys {
		if keys.Contains(nk.key) {
			ret = append(ret, nk.ch)
			keys = keys.Clear(nk.key)
		}
	}
	if len(ret) == 0 {
		return "", false
	}

	if removeIfAny(&keys, chord.Single(chord.E).Union(chord.Single(chord.U))) {
		for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
			ret[i], ret[j] = ret[j], ret[i]
		}
	}

	if removeIfAll(&keys, chord.Single(chord.D).Union(chord.Single(chord.Z))) {
		combined := make([]byte, 0, len(ret)+3)
		combined = append(combined, '$')
		combined = append(combined, ret...)
		combined = append(combined, '0', '0')
		ret = combined
	} else {
		if keys.Contains(chord.D) {
			keys = keys.Clear(chord.D)
			doubled := make([]byte, len(ret))
			copy(doubled, ret)
			ret = append(ret, doubled...)
		}
		if keys.Contains(chord.Z) {
			keys = keys.Clear(chord.Z)
			ret = append(ret, '0', '0')
		}
	}

	if keys.Contains(chord.K) {
		keys = keys.Clear(chord.K)
		ret = append(ret, ':', '0', '0')
	} else if removeIfAll(&keys, chord.Single(chord.B).Union(chord.Single(chord.G))) {
		ret = append(ret, ':', '0', '0')
	}

	if !keys.IsEmpty() {
		return "", false
	}
	return string(ret), true
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

var suffixKeys = chord.Single(chord.G).Union(chord.Single(chord.S2)).Union(chord.Single(chord.D)).Union(chord.Single(chord.Z))

// splitSuffix peels a dictionary-suffix stroke (the G/S2/D/Z keys) off
// keys, reporting the remaining keys and the peeled-off suffix keys. It
// reports false if keys has none of the suffix keys set.
func splitSuffix(keys chord.Chord) (without, suffix chord.Chord, ok bool) {
	suffix = keys.Intersect(suffixKeys)
	if suffix.IsEmpty() {
		return 0, 0, false
	}
	return keys.Without(suffixKeys), suffix, true
}

// findAction resolves thisStroke against the dictionary and the recent
// backlog. Numeric chords are decoded directly; otherwise the
// longest run of (recent backlog strokes..., thisStroke) that the
// dictionary recognizes wins, folding back over however many backlog
// entries that run covers. A dictionary entry for a stroke sequence with
// the trailing suffix keys stripped off is tried too, so a common word plus
// an attached dictionary suffix (e.g. a plural -S) can match as two
// entries. If nothing in the dictionary matches at any length, the literal
// stroke notation is emitted as a fallback.
func (e *Engine) findAction(thisStroke chord.Chord) action {
	if thisStroke.Contains(chord.NumberBar) {
		if text, ok := makeNumbers(thisStroke); ok {
			var entry dict.Entry
			if isASCIIDigits(text) {
				entry = dict.Entry{dict.Glue(text)}
			} else {
				entry = dict.Entry{dict.Verbatim(text)}
			}
			return makeSimpleAction(entry, thisStroke)
		}
	}

	maxStrokes := e.dict.MaxStrokes()
	events := e.backlog.lastN(maxStrokes)

	without, suffix, hasSuffix := splitSuffix(thisStroke)
	var suffixEntry dict.Entry
	if hasSuffix {
		suffixEntry, hasSuffix = e.dict.Get(chord.Strokes{suffix})
	}

	allStrokes := make(chord.Strokes, 0, len(events)+1)
	for _, event := range events {
		allStrokes = append(allStrokes, event.Strokes...)
	}
	allStrokes = append(allStrokes, thisStroke)

	skip := 0
	for i := 0; i <= len(events); i++ {
		theseStrokes := allStrokes[skip:]

		if entry, ok := e.dict.Get(theseStrokes); ok {
			return action{
				entry:        entry,
				strokes:      append(chord.Strokes(nil), allStrokes[skip:]...),
				deleteBefore: len(events) - i,
			}
		}

		if hasSuffix {
			last := len(theseStrokes) - 1
			saved := theseStrokes[last]
			theseStrokes[last] = without
			entry, ok := e.dict.Get(theseStrokes)
			theseStrokes[last] = saved

			if ok {
				return action{
					entry:         entry,
					strokes:       append(chord.Strokes(nil), allStrokes[skip:]...),
					removedSuffix: suffixEntry,
					deleteBefore:  len(events) - i,
				}
			}
		}

		if i < len(events) {
			skip += events[i].Strokes.NumStrokes()
		}
	}

	return makeFallbackAction(thisStroke)
}
