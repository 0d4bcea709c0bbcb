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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBacklog(t *testing.T) {
	Convey("Given a backlog bounded to depth 2", t, func() {
		b := newBacklog(2)

		Convey("Pushing past capacity evicts the oldest entry", func() {
			b.push(BacklogEvent{Text: "one"})
			b.push(BacklogEvent{Text: "two"})
			b.push(BacklogEvent{Text: "three"})

			So(b.len(), ShouldEqual, 2)
			last := b.lastN(2)
			So(last[0].Text, ShouldEqual, "two")
			So(last[1].Text, ShouldEqual, "three")
		})

		Convey("popBack removes and returns the most recent entry", func() {
			b.push(BacklogEvent{Text: "one"})
			b.push(BacklogEvent{Text: "two"})

			event, ok := b.popBack()
			So(ok, ShouldBeTrue)
			So(event.Text, ShouldEqual, "two")
			So(b.len(), ShouldEqual, 1)
		})

		Convey("popBack on an empty backlog reports false", func() {
			_, ok := b.popBack()
			So(ok, ShouldBeFalse)
		})

		Convey("back peeks without removing", func() {
			b.push(BacklogEvent{Text: "one"})

			event, ok := b.back()
			So(ok, ShouldBeTrue)
			So(event.Text, ShouldEqual, "one")
			So(b.len(), ShouldEqual, 1)
		})

		Convey("clear empties the backlog", func() {
			b.push(BacklogEvent{Text: "one"})
			b.clear()

			So(b.len(), ShouldEqual, 0)
			_, ok := b.back()
			So(ok, ShouldBeFalse)
		})

		Convey("lastN never returns more than what's pushed", func() {
			b.push(BacklogEvent{Text: "one"})

			So(b.lastN(5), ShouldHaveLength, 1)
		})
	})
}
