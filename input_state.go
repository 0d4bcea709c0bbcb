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

// InputState is the small set of flags that carry over from one stroke to
// the next: whether the next word starts capitalized, whether a space
// precedes it, whether the next entry should glue onto this one instead, and
// whether an entry suppressed its normal caps/space reset for the entry that
// follows it.
type InputState struct {
	Caps        bool
	Space       bool
	CarryToNext bool
	Glue        bool
}

// InitialState is the state of a freshly constructed Engine: the very first
// word capitalizes and nothing precedes it.
var InitialState = InputState{
	Caps:  true,
	Space: false,
}
