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

package dict

import "errors"

var (
	// ErrUnterminatedSpecial indicates a "{" with no matching "}".
	ErrUnterminatedSpecial = errors.New("dict: unterminated { special")

	// ErrUnexpectedEOF indicates a backslash escape with nothing following it.
	ErrUnexpectedEOF = errors.New("dict: backslash at end of text")

	// ErrUnknownEscape indicates a backslash followed by a character that
	// has no escape meaning.
	ErrUnknownEscape = errors.New("dict: unknown escape")

	// ErrPointlessBraces indicates a {...} region with no recognized
	// command and no glue/suffix/space decoration; it would be
	// equivalent to writing the text outside of braces.
	ErrPointlessBraces = errors.New("dict: pointless braces")

	// ErrUnknownPloverCommand indicates a {PLOVER:name} whose name isn't
	// one this engine implements.
	ErrUnknownPloverCommand = errors.New("dict: unknown plover command")

	// ErrDuplicateKey indicates a dictionary file repeats a stroke
	// sequence key.
	ErrDuplicateKey = errors.New("dict: duplicate key")
)
