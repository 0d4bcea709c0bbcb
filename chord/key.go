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

// Key identifies a single key position on a steno keyboard. The constants
// are declared in steno order: the order keys are written in a chord and
// the order their bits occupy within a Chord.
type Key int

const (
	NumberBar Key = iota
	S
	T
	K
	P
	W
	H
	R
	A
	O
	Star
	E
	U
	F
	R2
	P2
	B
	L
	G
	T2
	S2
	D
	Z

	numKeys
)

// other returns the key on the opposite side of the keyboard that shares
// the same letter, if any. Only S, T, P, and R have a right-hand twin.
func (k Key) other() (Key, bool) {
	switch k {
	case S:
		return S2, true
	case S2:
		return S, true
	case T:
		return T2, true
	case T2:
		return T, true
	case P:
		return P2, true
	case P2:
		return P, true
	case R:
		return R2, true
	case R2:
		return R, true
	default:
		return 0, false
	}
}

// otherBefore returns the left-hand twin of k, if k is itself the
// right-hand twin of a pair (S2, T2, P2, or R2).
func (k Key) otherBefore() (Key, bool) {
	o, ok := k.other()
	if !ok || o >= k {
		return 0, false
	}
	return o, true
}

// Char returns the letter printed for k when formatting a Chord.
func (k Key) Char() rune {
	switch k {
	case NumberBar:
		return '#'
	case S, S2:
		return 'S'
	case T, T2:
		return 'T'
	case K:
		return 'K'
	case P, P2:
		return 'P'
	case W:
		return 'W'
	case H:
		return 'H'
	case R, R2:
		return 'R'
	case A:
		return 'A'
	case O:
		return 'O'
	case Star:
		return '*'
	case E:
		return 'E'
	case U:
		return 'U'
	case F:
		return 'F'
	case B:
		return 'B'
	case L:
		return 'L'
	case G:
		return 'G'
	case D:
		return 'D'
	case Z:
		return 'Z'
	default:
		return '?'
	}
}

func (k Key) String() string {
	return string(k.Char())
}

// codeTable maps raw input-method keycodes (Linux evdev codes of a QWERTY
// keyboard laid out for steno) to the Key they represent. Several codes
// alias to the same Key because the layout puts more than one physical
// key on a letter that has only one logical position: S (codes 16 and
// 30) and Star (codes 20 and 34) here, and NumberBar's ten number-row
// keys, which FromCode handles outside this table.
var codeTable = map[uint32]Key{
	16: S,
	17: T,
	18: P,
	19: H,
	20: Star,
	21: F,
	22: P2,
	23: L,
	24: T2,
	25: D,
	30: S,
	31: K,
	32: W,
	33: R,
	34: Star,
	35: R2,
	36: B,
	37: G,
	38: S2,
	39: Z,
	46: A,
	47: O,
	48: E,
	49: U,
}

// FromCode maps a raw input-method keycode to the Key it represents. Codes
// 2 through 11 (the number row) all map to NumberBar.
func FromCode(code uint32) (Key, bool) {
	if code >= 2 && code <= 11 {
		return NumberBar, true
	}
	k, ok := codeTable[code]
	return k, ok
}
