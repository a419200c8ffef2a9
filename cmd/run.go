// Package cmd implements the command-line interface for subgrab.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
	"github.com/subgrab-cli/subgrab/download"
	"github.com/subgrab-cli/subgrab/filesystem"
	"github.com/subgrab-cli/subgrab/history"
	"github.com/subgrab-cli/subgrab/icon"
	"github.com/subgrab-cli/subgrab/key"
	"github.com/subgrab-cli/subgrab/linklist"
	"github.com/subgrab-cli/subgrab/log"
	"github.com/subgrab-cli/subgrab/open"
	"github.com/subgrab-cli/subgrab/util"
)

// run executes the full pipeline: read the link list, extract the validated
// links, download them sequentially into outputDir, and report the outcome.
func run(inputFile, outputDir string) error {
	fmt.Printf("%s Reading file %q...\n", icon.Get(icon.Progress), inputFile)
	lines, err := linklist.ReadFile(inputFile)
	if err != nil {
		return err
	}

	list := linklist.Extract(lines)
	for _, entry := range list.Entries {
		if entry.Valid {
			fmt.Printf("%s %s\n", icon.Get(icon.Link), entry)
		} else {
			fmt.Printf("%s %s\n", icon.Get(icon.Skip), entry)
		}
	}
	fmt.Printf("%s Found %s (%.1f%%).\n",
		icon.Get(icon.Success),
		util.Quantify(list.Count(), "valid link", "valid links"),
		list.Ratio()*100,
	)

	if list.Count() == 0 {
		return nil
	}

	if err := ensureOutputDir(outputDir); err != nil {
		return err
	}

	var (
		bar      = newProgressBar(list.Count())
		failures []download.Outcome
	)

	report := download.New().Batch(context.Background(), list.Links(), outputDir, func(outcome download.Outcome) {
		if outcome.Failed() {
			failures = append(failures, outcome)
			log.Errorf("episode %d: %v", outcome.Episode, outcome.Err)
		} else {
			log.Infof("downloaded %q to %q", outcome.URL, filepath.Join(outputDir, outcome.Filename))
		}
		_ = bar.Add(1)
	})
	fmt.Println()

	for _, outcome := range failures {
		fmt.Printf("%s Failed to download episode %d from %q: %v\n",
			icon.Get(icon.Fail), outcome.Episode, outcome.URL, outcome.Err)
	}
	fmt.Printf("%s Downloaded %s to %q (%d failed).\n",
		icon.Get(icon.Download),
		util.Quantify(len(report.Downloaded()), "file", "files"),
		outputDir,
		len(report.Failed()),
	)

	if viper.GetBool(key.HistorySaveOnDownload) {
		record := history.Record{
			InputFile:  inputFile,
			OutputDir:  outputDir,
			Downloaded: report.Downloaded(),
			Failed:     report.Failed(),
		}
		if err := history.Save(&record); err != nil {
			log.Warnf("save history: %v", err)
		}
	}

	if viper.GetBool(key.DownloaderOpenOnFinish) {
		util.Ignore(func() error { return open.Start(outputDir) })
	}

	return nil
}

// ensureOutputDir verifies the output directory exists, creating it when the
// configuration allows.
func ensureOutputDir(dir string) error {
	exists, err := filesystem.API().DirExists(dir)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if !viper.GetBool(key.DownloaderCreateMissingDir) {
		return fmt.Errorf("output directory %q does not exist", dir)
	}
	return filesystem.API().MkdirAll(dir, os.ModePerm)
}

// newProgressBar builds the batch progress bar, bounded by the terminal width.
func newProgressBar(total int) *progressbar.ProgressBar {
	width := 40
	if termWidth, _, err := util.TerminalSize(); err == nil {
		width = util.Min(width, util.Max(10, termWidth-30))
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(width),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
