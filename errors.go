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

import "errors"

// ErrQuit is returned by RunKeys and Flush's callers when the stroke stream
// ran a {PLOVER:QUIT} entry. It isn't a failure: callers should stop
// feeding strokes to this Engine and shut down cleanly.
var ErrQuit = errors.New("steno: quit command received")
