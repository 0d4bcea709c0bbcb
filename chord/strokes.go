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

package chord

import "strings"

// Strokes is a dictionary key: the sequence of chords that must be typed,
// in order, to produce a translation. Two Strokes with equal chords in the
// same order are the same key, regardless of how they were parsed.
type Strokes []Chord

// ParseStrokes parses a full dictionary key such as "TPH-PL/PHRO*ER/-FS", with
// "/" separating individual strokes.
func ParseStrokes(raw string) (Strokes, error) {
	parts := strings.Split(raw, "/")
	strokes := make(Strokes, len(parts))
	for i, part := range parts {
		c, err := Parse(part)
		if err != nil {
			return nil, err
		}
		strokes[i] = c
	}
	return strokes, nil
}

// NumStrokes returns the number of chords in s.
func (s Strokes) NumStrokes() int {
	return len(s)
}

func (s Strokes) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, "/")
}
