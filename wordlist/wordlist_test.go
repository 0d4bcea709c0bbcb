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

package wordlist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Words load and are queried case-insensitively", t, func() {
		w, err := Load([]byte("cherry\nberries \napple\r\n"), "")
		So(err, ShouldBeNil)
		So(w.Len(), ShouldEqual, 3)
		So(w.Contains("cherry"), ShouldBeTrue)
		So(w.Contains("CHERRY"), ShouldBeTrue)
		So(w.Contains("berries"), ShouldBeTrue)
		So(w.Contains("grape"), ShouldBeFalse)
	})

	Convey("Blank lines are ignored", t, func() {
		w, err := Load([]byte("one\n\n\ntwo\n"), "")
		So(err, ShouldBeNil)
		So(w.Len(), ShouldEqual, 2)
	})
}
