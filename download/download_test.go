package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/subgrab-cli/subgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		filesystem.SetMemMapFs()
		fetcher := NewWithClient(http.DefaultClient)

		Convey("Should write the exact response body on status 200", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("1\n00:00:01,000 --> 00:00:02,000\nhello\n"))
			}))
			defer server.Close()

			err := fetcher.Fetch(context.Background(), server.URL+"/a.srt", "out", "E01.srt")
			So(err, ShouldBeNil)

			content, err := filesystem.API().ReadFile("out/E01.srt")
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "1\n00:00:01,000 --> 00:00:02,000\nhello\n")
		})

		Convey("Should write nothing and return a StatusError on non-200", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			err := fetcher.Fetch(context.Background(), server.URL+"/missing.srt", "out", "E02.srt")
			So(err, ShouldNotBeNil)

			var statusErr *StatusError
			So(err, ShouldHaveSameTypeAs, statusErr)
			So(err.(*StatusError).Code, ShouldEqual, http.StatusNotFound)

			exists, _ := filesystem.API().Exists("out/E02.srt")
			So(exists, ShouldBeFalse)
		})

		Convey("Should surface transport failures as ordinary errors", func() {
			err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/a.srt", "out", "E03.srt")
			So(err, ShouldNotBeNil)
		})

		Convey("Should overwrite an existing file", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("fresh"))
			}))
			defer server.Close()

			So(filesystem.API().WriteFile("out/E04.srt", []byte("stale"), 0644), ShouldBeNil)
			So(fetcher.Fetch(context.Background(), server.URL+"/a.srt", "out", "E04.srt"), ShouldBeNil)

			content, _ := filesystem.API().ReadFile("out/E04.srt")
			So(string(content), ShouldEqual, "fresh")
		})
	})
}

func TestFilename(t *testing.T) {
	Convey("Filename", t, func() {
		Convey("Should zero-pad to two digits", func() {
			So(Filename(5, "http://x.com/a.srt"), ShouldEqual, "E05.srt")
		})
		Convey("Should not truncate three-digit episodes", func() {
			So(Filename(123, "http://x.com/a.vtt"), ShouldEqual, "E123.vtt")
		})
		Convey("Should take the extension after the final dot", func() {
			So(Filename(7, "https://x.com/episode.one.vtt"), ShouldEqual, "E07.vtt")
		})
	})
}

func TestBatch(t *testing.T) {
	Convey("Batch", t, func() {
		filesystem.SetMemMapFs()
		fetcher := NewWithClient(http.DefaultClient)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/broken.srt":
				w.WriteHeader(http.StatusInternalServerError)
			default:
				_, _ = w.Write([]byte("body of " + r.URL.Path))
			}
		}))
		defer server.Close()

		Convey("Should download in ascending episode order and continue past failures", func() {
			links := map[int]string{
				3: server.URL + "/c.vtt",
				1: server.URL + "/a.srt",
				2: server.URL + "/broken.srt",
			}

			var seen []int
			report := fetcher.Batch(context.Background(), links, "out", func(o Outcome) {
				seen = append(seen, o.Episode)
			})

			So(seen, ShouldResemble, []int{1, 2, 3})
			So(report.Downloaded(), ShouldResemble, []int{1, 3})
			So(report.Failed(), ShouldResemble, []int{2})

			exists, _ := filesystem.API().Exists("out/E01.srt")
			So(exists, ShouldBeTrue)
			exists, _ = filesystem.API().Exists("out/E02.srt")
			So(exists, ShouldBeFalse)
			exists, _ = filesystem.API().Exists("out/E03.vtt")
			So(exists, ShouldBeTrue)
		})

		Convey("Should not abort on a transport failure of one entry", func() {
			links := map[int]string{
				1: "http://127.0.0.1:1/dead.srt",
				2: server.URL + "/b.srt",
			}

			report := fetcher.Batch(context.Background(), links, "out", nil)
			So(report.Failed(), ShouldResemble, []int{1})
			So(report.Downloaded(), ShouldResemble, []int{2})
		})

		Convey("Should be idempotent across reruns", func() {
			links := map[int]string{1: server.URL + "/a.srt"}

			first := fetcher.Batch(context.Background(), links, "out", nil)
			second := fetcher.Batch(context.Background(), links, "out", nil)
			So(first.Downloaded(), ShouldResemble, second.Downloaded())

			content, _ := filesystem.API().ReadFile("out/E01.srt")
			So(string(content), ShouldEqual, "body of /a.srt")
		})

		Convey("Should produce an empty report for an empty mapping", func() {
			report := fetcher.Batch(context.Background(), map[int]string{}, "out", nil)
			So(report.Outcomes, ShouldBeEmpty)
		})
	})
}
