package download

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/subgrab-cli/subgrab/util"
)

// Filename derives the deterministic output filename for an episode.
// The episode number is zero-padded to at least two digits (numbers >= 100
// are not truncated) and the extension is the substring after the URL's
// final ".".
func Filename(episode int, url string) string {
	ext := url[strings.LastIndex(url, ".")+1:]
	return fmt.Sprintf("E%02d.%s", episode, util.SanitizeFilename(ext))
}

// Outcome records the result of one batch entry.
type Outcome struct {
	Episode  int
	URL      string
	Filename string
	Err      error
}

// Failed reports whether the entry's download did not complete.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report aggregates the per-entry outcomes of a finished batch.
type Report struct {
	Outcomes []Outcome
}

// Downloaded returns the episode numbers written to disk, in batch order.
func (r Report) Downloaded() []int {
	return lo.FilterMap(r.Outcomes, func(o Outcome, _ int) (int, bool) {
		return o.Episode, !o.Failed()
	})
}

// Failed returns the episode numbers whose download did not complete, in batch order.
func (r Report) Failed() []int {
	return lo.FilterMap(r.Outcomes, func(o Outcome, _ int) (int, bool) {
		return o.Episode, o.Failed()
	})
}

// Batch downloads every link of the mapping into dir, strictly sequentially
// and in ascending episode order. Each entry runs inside its own fault
// boundary: a failed download (bad status, transport fault, write fault) is
// recorded and the batch continues with the next entry. Every outcome is
// forwarded to observe when non-nil.
func (f *Fetcher) Batch(ctx context.Context, links map[int]string, dir string, observe func(Outcome)) Report {
	episodes := lo.Keys(links)
	sort.Ints(episodes)

	report := Report{Outcomes: make([]Outcome, 0, len(episodes))}
	for _, episode := range episodes {
		url := links[episode]
		outcome := Outcome{
			Episode:  episode,
			URL:      url,
			Filename: Filename(episode, url),
		}
		outcome.Err = f.Fetch(ctx, url, dir, outcome.Filename)

		report.Outcomes = append(report.Outcomes, outcome)
		if observe != nil {
			observe(outcome)
		}
	}

	return report
}
