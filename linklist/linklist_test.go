package linklist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/subgrab-cli/subgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestReadFile(t *testing.T) {
	Convey("ReadFile", t, func() {
		write := func(path, content string) {
			So(filesystem.API().WriteFile(path, []byte(content), 0644), ShouldBeNil)
		}

		Convey("Should split lines and strip terminators", func() {
			write("links.txt", "http://x.com/a.srt\nnot a link\nhttps://y.com/b.vtt\n")
			lines, err := ReadFile("links.txt")
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"http://x.com/a.srt", "not a link", "https://y.com/b.vtt"})
		})

		Convey("Should tolerate CRLF endings", func() {
			write("crlf.txt", "http://x.com/a.srt\r\nhttp://y.com/b.srt\r\n")
			lines, err := ReadFile("crlf.txt")
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"http://x.com/a.srt", "http://y.com/b.srt"})
		})

		Convey("Should drop only the trailing empty line of a final newline", func() {
			write("blank.txt", "http://x.com/a.srt\n\nhttp://y.com/b.srt\n")
			lines, err := ReadFile("blank.txt")
			So(err, ShouldBeNil)
			So(lines, ShouldHaveLength, 3)
			So(lines[1], ShouldBeEmpty)
		})

		Convey("Should keep the last line when the file lacks a final newline", func() {
			write("nolf.txt", "http://x.com/a.srt\nhttp://y.com/b.srt")
			lines, err := ReadFile("nolf.txt")
			So(err, ShouldBeNil)
			So(lines, ShouldHaveLength, 2)
		})

		Convey("Should report an error for a missing file", func() {
			_, err := ReadFile("does-not-exist.txt")
			So(err, ShouldNotBeNil)
		})

		Convey("Should yield no lines for an empty file", func() {
			write("empty.txt", "")
			lines, err := ReadFile("empty.txt")
			So(err, ShouldBeNil)
			So(lines, ShouldBeEmpty)
		})
	})
}

func TestExtract(t *testing.T) {
	Convey("Extract", t, func() {
		Convey("Should number lines from 1 and skip invalid ones", func() {
			list := Extract([]string{"http://x.com/a.srt", "not a link", "https://y.com/b.vtt"})
			So(list.Links(), ShouldResemble, map[int]string{
				1: "http://x.com/a.srt",
				3: "https://y.com/b.vtt",
			})
			So(list.Episodes(), ShouldResemble, []int{1, 3})
			So(list.Count(), ShouldEqual, 2)
			So(list.Entries[0].URL(), ShouldEqual, "http://x.com/a.srt")
			So(list.Entries[1].URL(), ShouldBeEmpty)
		})

		Convey("Should advance the episode counter once per line regardless of outcome", func() {
			list := Extract([]string{"", "", "http://x.com/c.srt"})
			So(list.Entries, ShouldHaveLength, 3)
			So(list.Entries[2].Episode, ShouldEqual, 3)
			So(list.Links(), ShouldResemble, map[int]string{3: "http://x.com/c.srt"})
		})

		Convey("Should accept both schemes and both extensions", func() {
			for _, line := range []string{
				"http://example.com/sub.srt",
				"https://example.com/sub.srt",
				"http://example.com/sub.vtt",
				"https://example.com/a/b/c/episode.one.vtt",
			} {
				So(Extract([]string{line}).Count(), ShouldEqual, 1)
			}
		})

		Convey("Should reject lines without the required suffix or scheme", func() {
			for _, line := range []string{
				"ftp://example.com/sub.srt",
				"example.com/sub.srt",
				"http://example.com/sub.ass",
				"http://example.com/sub.srt.bak",
				"HTTP://example.com/sub.srt",
				"just some text",
				"",
			} {
				So(Extract([]string{line}).Count(), ShouldEqual, 0)
			}
		})

		Convey("Should keep keys within the line range", func() {
			lines := []string{"a", "http://x.com/a.vtt", "b", "http://y.com/b.srt", "c"}
			list := Extract(lines)
			for episode := range list.Links() {
				So(episode, ShouldBeGreaterThanOrEqualTo, 1)
				So(episode, ShouldBeLessThanOrEqualTo, len(lines))
			}
			So(list.Count(), ShouldBeLessThanOrEqualTo, len(lines))
		})

		Convey("Should handle a nil line list", func() {
			list := Extract(nil)
			So(list.Entries, ShouldBeEmpty)
			So(list.Links(), ShouldBeEmpty)
			So(list.Ratio(), ShouldEqual, 0)
		})

		Convey("Ratio should be the valid fraction of all lines", func() {
			list := Extract([]string{"http://x.com/a.srt", "nope", "http://y.com/b.vtt", "nope"})
			So(list.Ratio(), ShouldEqual, 0.5)
		})
	})
}
