package history

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/subgrab-cli/subgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a batch record", t, func() {
		record := &Record{
			InputFile:  "links.txt",
			OutputDir:  "subs",
			Downloaded: []int{1, 3},
			Failed:     []int{2},
		}

		Convey("Saving it should persist it with a timestamp", func() {
			So(Save(record), ShouldBeNil)
			So(record.FinishedAt.IsZero(), ShouldBeFalse)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved, ShouldNotBeEmpty)

			last := saved[len(saved)-1]
			So(last.InputFile, ShouldEqual, "links.txt")
			So(last.Downloaded, ShouldResemble, []int{1, 3})
			So(last.Failed, ShouldResemble, []int{2})
		})

		Convey("Saving again should append, not replace", func() {
			before, err := Get()
			So(err, ShouldBeNil)

			other := &Record{
				InputFile:  "more.txt",
				OutputDir:  "subs",
				Downloaded: []int{1},
				FinishedAt: time.Now(),
			}
			So(Save(other), ShouldBeNil)

			after, err := Get()
			So(err, ShouldBeNil)
			So(len(after), ShouldEqual, len(before)+1)
		})
	})
}
