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

import (
	"fmt"
	"strings"
)

// Chord is a bitset of the keys pressed in a single stroke. It mirrors the
// bit-twiddling idiom of a terminal Style mask: individual Key values set
// and test bits, and a Chord is cheap to copy and compare by value.
type Chord uint32

// Empty is the chord with no keys set.
const Empty Chord = 0

// All is the chord with every key set.
const All Chord = (1 << numKeys) - 1

// Single returns the chord containing only k.
func Single(k Key) Chord {
	return Chord(1) << uint(k)
}

// Set returns c with k added.
func (c Chord) Set(k Key) Chord {
	return c | Single(k)
}

// Clear returns c with k removed.
func (c Chord) Clear(k Key) Chord {
	return c &^ Single(k)
}

// Contains reports whether c has k set.
func (c Chord) Contains(k Key) bool {
	return c&Single(k) != 0
}

// Union returns the keys present in either c or other.
func (c Chord) Union(other Chord) Chord {
	return c | other
}

// Intersect returns the keys present in both c and other.
func (c Chord) Intersect(other Chord) Chord {
	return c & other
}

// Without returns c with every key in other removed.
func (c Chord) Without(other Chord) Chord {
	return c &^ other
}

// IsEmpty reports whether c has no keys set.
func (c Chord) IsEmpty() bool {
	return c == Empty
}

// ContainsAny reports whether c and other share any key.
func (c Chord) ContainsAny(other Chord) bool {
	return c&other != 0
}

// Keys returns the keys set in c, in steno order.
func (c Chord) Keys() []Key {
	keys := make([]Key, 0, numKeys)
	for bits := uint32(c); bits != 0; {
		first := trailingZeros(bits)
		keys = append(keys, Key(first))
		bits &^= 1 << first
	}
	return keys
}

func trailingZeros(bits uint32) uint32 {
	n := uint32(0)
	for bits&1 == 0 {
		bits >>= 1
		n++
	}
	return n
}

// Parse parses a single stroke's worth of keys, such as "TPH-PL" or
// "1-9". It does not accept "/" separators; callers joining multiple
// strokes into a Strokes split on "/" first.
func Parse(part string) (Chord, error) {
	var ret Chord
	prevDash := false

	double := func(left, right Key) Key {
		if prevDash || uint32(ret) >= uint32(Single(left)) {
			return right
		}
		return left
	}

	for _, ch := range part {
		var new Chord

		switch ch {
		case 'S':
			new = Single(double(S, S2))
		case 'T':
			new = Single(double(T, T2))
		case 'P':
			new = Single(double(P, P2))
		case 'R':
			new = Single(double(R, R2))
		case 'H':
			new = Single(H)
		case '*':
			new = Single(Star)
		case 'F':
			new = Single(F)
		case 'L':
			new = Single(L)
		case 'D':
			new = Single(D)
		case 'K':
			new = Single(K)
		case 'W':
			new = Single(W)
		case 'B':
			new = Single(B)
		case 'G':
			new = Single(G)
		case 'Z':
			new = Single(Z)
		case 'A':
			new = Single(A)
		case 'O':
			new = Single(O)
		case 'E':
			new = Single(E)
		case 'U':
			new = Single(U)
		case '1':
			new = Single(NumberBar).Set(S)
		case '2':
			new = Single(NumberBar).Set(T)
		case '3':
			new = Single(NumberBar).Set(P)
		case '4':
			new = Single(NumberBar).Set(H)
		case '5':
			new = Single(NumberBar).Set(A)
		case '0':
			new = Single(NumberBar).Set(O)
		case '6':
			new = Single(NumberBar).Set(F)
		case '7':
			new = Single(NumberBar).Set(P2)
		case '8':
			new = Single(NumberBar).Set(L)
		case '9':
			new = Single(NumberBar).Set(T2)
		case '#':
			new = Single(NumberBar)
		case '-':
			prevDash = true
			continue
		default:
			return Empty, fmt.Errorf("%w: %q", ErrUnrecognizedChar, ch)
		}

		if overlap := ret.Intersect(new).Clear(NumberBar); !overlap.IsEmpty() {
			return Empty, fmt.Errorf("%w: %s", ErrDuplicateKey, overlap)
		}

		prevDash = false
		ret = ret.Union(new)
	}

	if prevDash {
		return Empty, ErrTrailingDash
	}

	return ret, nil
}

// String formats c using Plover-style stroke notation: keys in steno
// order, with a single "-" inserted before the first right-hand key of a
// pair (S2, T2, P2, R2) when nothing else in the chord already places it
// unambiguously on the right.
func (c Chord) String() string {
	var sb strings.Builder
	keys := c.Keys()
	for _, k := range keys {
		if needsDash(keys, k) {
			sb.WriteByte('-')
		}
		sb.WriteRune(k.Char())
	}
	return sb.String()
}

func needsDash(keys []Key, k Key) bool {
	first, ok := k.otherBefore()
	if !ok {
		return false
	}
	second := k
	for _, other := range keys {
		if other >= first && other < second {
			return false
		}
	}
	return true
}
