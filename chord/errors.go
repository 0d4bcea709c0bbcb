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

import "errors"

var (
	// ErrTrailingDash indicates a chord string ended with a "-" that had
	// no following key to disambiguate.
	ErrTrailingDash = errors.New("chord: trailing dash")

	// ErrDuplicateKey indicates the same key appeared twice in a chord
	// string (other than the number bar, which many dictionaries repeat
	// across digits without meaning to set it twice).
	ErrDuplicateKey = errors.New("chord: duplicate key")

	// ErrUnrecognizedChar indicates a character in a chord string that
	// does not correspond to any key.
	ErrUnrecognizedChar = errors.New("chord: unrecognized character")
)
