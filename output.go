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

import "unicode/utf8"

// CharsOrBytes counts the same span two ways at once. A frontend that edits
// by byte offset (an input-method surrounding-text delete) and one that
// edits by character (a virtual-keyboard backspace count) both need to
// consume the same Output without the engine caring which one it's talking
// to.
type CharsOrBytes struct {
	Chars int
	Bytes int
}

// CharsOrBytesForString counts the runes and bytes of s.
func CharsOrBytesForString(s string) CharsOrBytes {
	return CharsOrBytes{Chars: utf8.RuneCountInString(s), Bytes: len(s)}
}

// Add returns the sum of c and other.
func (c CharsOrBytes) Add(other CharsOrBytes) CharsOrBytes {
	return CharsOrBytes{Chars: c.Chars + other.Chars, Bytes: c.Bytes + other.Bytes}
}

// Sub returns c minus other.
func (c CharsOrBytes) Sub(other CharsOrBytes) CharsOrBytes {
	return CharsOrBytes{Chars: c.Chars - other.Chars, Bytes: c.Bytes - other.Bytes}
}

// Output is the edit script a Flush produces: delete DeleteWords whole
// words, then delete Delete characters/bytes, then insert Append. Frontends
// translate this into whatever primitive their device or API understands.
type Output struct {
	DeleteWords int
	Delete      CharsOrBytes
	Append      string
}

// delete shortens the in-progress Append buffer by amount first, since an
// insertion that hasn't been flushed yet can simply be made smaller. Only
// the overflow, if any, becomes a real deletion of already-flushed text.
func (o *Output) delete(amount CharsOrBytes) {
	if amount.Bytes <= len(o.Append) {
		o.Append = o.Append[:len(o.Append)-amount.Bytes]
		return
	}
	o.Delete = o.Delete.Add(amount.Sub(CharsOrBytesForString(o.Append)))
	o.Append = ""
}

// deleteWords records that n whole words of already-flushed text should be
// deleted. It requires the Append buffer to be empty: word deletion and
// in-progress insertion are never mixed in a single edit.
func (o *Output) deleteWords(n int) {
	if o.Append != "" {
		panic("steno: deleteWords called with a non-empty append buffer")
	}
	o.DeleteWords += n
}

func (o *Output) appendText(text string) {
	o.Append += text
}

func (o *Output) reset() {
	o.Append = ""
	o.Delete = CharsOrBytes{}
	o.DeleteWords = 0
}
