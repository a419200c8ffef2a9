// Package linklist implements reading and validation of episode link list files.
//
// A link list is a plain UTF-8 text file with one entry per line. The line
// number is the episode number: empty or invalid lines still consume a
// number, so episode numbering always tracks physical line position.
package linklist

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/subgrab-cli/subgrab/filesystem"
)

// linkPattern defines what a valid subtitle download link looks like.
// The extension must terminate the line so that filename derivation from the
// final "." segment stays well defined.
var linkPattern = regexp.MustCompile(`^https?://.*\.(vtt|srt)$`)

// Entry records the validation outcome for a single line of the link list.
type Entry struct {
	// Episode is the 1-based line position.
	Episode int
	// Raw is the line text with terminators stripped.
	Raw string
	// Valid reports whether the line matched the subtitle link pattern.
	Valid bool
}

// URL returns the validated link for a valid entry and the empty string otherwise.
func (e Entry) URL() string {
	if !e.Valid {
		return ""
	}
	return e.Raw
}

// String returns the canonical display representation of the entry outcome.
func (e Entry) String() string {
	if e.Valid {
		return fmt.Sprintf("Line %02d: added %q to download list", e.Episode, e.Raw)
	}
	return fmt.Sprintf("Line %02d: %q is not a valid link, skipping", e.Episode, e.Raw)
}

// List holds the per-line validation outcomes of a link list file in file order.
type List struct {
	Entries []Entry
}

// Links returns the mapping from episode number to validated URL.
// A key is present iff the corresponding line matched the pattern.
func (l List) Links() map[int]string {
	links := make(map[int]string)
	for _, e := range l.Entries {
		if e.Valid {
			links[e.Episode] = e.Raw
		}
	}
	return links
}

// Episodes returns the episode numbers of all valid entries in ascending order.
func (l List) Episodes() []int {
	var episodes []int
	for _, e := range l.Entries {
		if e.Valid {
			episodes = append(episodes, e.Episode)
		}
	}
	sort.Ints(episodes)
	return episodes
}

// Count returns the number of valid links.
func (l List) Count() int {
	return len(l.Episodes())
}

// Ratio returns the fraction of lines that held a valid link.
// An empty list yields 0 rather than dividing by zero.
func (l List) Ratio() float64 {
	if len(l.Entries) == 0 {
		return 0
	}
	return float64(l.Count()) / float64(len(l.Entries))
}

// ReadFile loads the link list at path into an ordered slice of lines with
// terminators stripped. CRLF endings are tolerated. A single trailing empty
// line produced by a final newline is dropped so that it does not consume an
// episode number.
func ReadFile(path string) ([]string, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read link list %q: %w", path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// Extract walks the ordered lines, numbering them starting at 1, and records
// a validation outcome per line. A nil or empty slice yields an empty list.
func Extract(lines []string) List {
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		entries = append(entries, Entry{
			Episode: i + 1,
			Raw:     line,
			Valid:   linkPattern.MatchString(line),
		})
	}
	return List{Entries: entries}
}
