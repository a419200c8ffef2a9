// Package history provides the implementation for tracking and persisting completed download batches.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/subgrab-cli/subgrab/filesystem"
	"github.com/subgrab-cli/subgrab/where"
)

// Record captures the outcome of one batch run.
type Record struct {
	// InputFile is the path of the link list the batch was read from.
	InputFile string `json:"input_file"`
	// OutputDir is the directory the files were written into.
	OutputDir string `json:"output_dir"`
	// Downloaded holds the episode numbers written to disk, in batch order.
	Downloaded []int `json:"downloaded"`
	// Failed holds the episode numbers whose download did not complete.
	Failed []int `json:"failed,omitempty"`
	// FinishedAt is the completion timestamp of the batch.
	FinishedAt time.Time `json:"finished_at"`
}

// cacher provides an abstracted, disk-backed registry for download batch records.
var cacher = gache.New[[]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of recorded batches from the persistent store.
func Get() ([]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []*Record{}, nil
	}
	return cached, nil
}

// Save appends a batch record to the history registry.
func Save(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if record.FinishedAt.IsZero() {
		record.FinishedAt = time.Now()
	}

	return cacher.Set(append(saved, record))
}
