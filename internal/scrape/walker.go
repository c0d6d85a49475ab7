package scrape

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

// Options tune one scraping run.
type Options struct {
	// Quality is the preferred video quality label ("720p", "Original File"…).
	Quality string
	// MergePresentations enables the slide-to-video merge pipeline.
	MergePresentations bool
}

// Engine walks a course manifest and downloads its content. All run state
// (summary accumulator, auth-bearing client, output paths) lives on the
// engine; paths are composed explicitly and the engine is re-entrant across
// runs.
type Engine struct {
	client  *thinkific.Client
	tracker *Tracker
	fetch   *Fetcher
	enc     Encoder
	opts    Options

	runLog *log.Logger
	out    io.Writer

	// wistiaBase is the Wistia embed host; swapped out in tests.
	wistiaBase string

	// encAvailable is resolved once per run.
	encAvailable bool
}

// New creates an Engine. runLog receives persistent per-item failure
// details; out receives streamed progress. Either may be nil.
func New(client *thinkific.Client, tracker *Tracker, enc Encoder, opts Options, runLog *log.Logger, out io.Writer) *Engine {
	if runLog == nil {
		runLog = log.New(io.Discard, "", 0)
	}
	if out == nil {
		out = os.Stdout
	}
	return &Engine{
		client:     client,
		tracker:    tracker,
		fetch:      NewFetcher(client),
		enc:        enc,
		opts:       opts,
		runLog:     runLog,
		out:        out,
		wistiaBase: defaultWistiaBase,
	}
}

// Run walks the manifest in chapter order, creating the folder hierarchy
// under root and dispatching every referenced content item. Per-item
// failures are logged and the walk continues; only manifest-level problems
// abort the run. Returns the run summary.
func (e *Engine) Run(ctx context.Context, m *thinkific.Manifest, root string) (*Summary, error) {
	if m.Error != "" {
		return nil, fmt.Errorf("course manifest error: %s", m.Error)
	}
	if m.Course.Name == "" {
		return nil, fmt.Errorf("manifest has no course name")
	}

	e.encAvailable = e.enc != nil && e.enc.Available()
	if e.opts.MergePresentations && !e.encAvailable {
		fmt.Fprintln(e.out, color.YellowString("! ffmpeg not found — presentation merging disabled for this run"))
	}

	courseDir := filepath.Join(root, util.SanitizeName(m.Course.Name))
	if err := util.EnsureDir(courseDir); err != nil {
		return nil, fmt.Errorf("creating course folder: %w", err)
	}

	summary := &Summary{}
	for ci, chapter := range m.Chapters {
		chapterDir := filepath.Join(courseDir, fmt.Sprintf("%d. %s", ci+1, util.SanitizeName(chapter.Name)))
		if err := util.EnsureDir(chapterDir); err != nil {
			return nil, fmt.Errorf("creating chapter folder: %w", err)
		}
		fmt.Fprintf(e.out, "%s %s\n", color.CyanString("chapter"), chapter.Name)

		for ii, id := range chapter.ContentIDs {
			item := m.ContentByID(id)
			if item == nil {
				e.runLog.Printf("chapter %q references unknown content id %d", chapter.Name, id)
				continue
			}

			decision := e.tracker.Decide(*item)
			if decision == DecisionSkip {
				summary.Skipped = append(summary.Skipped, item.Name)
				fmt.Fprintf(e.out, "  %s %s\n", color.WhiteString("skip"), item.Name)
				continue
			}

			fmt.Fprintf(e.out, "  %s %s (%s)\n", color.GreenString(decision.String()), item.Name, Classify(*item))
			if err := e.dispatch(ctx, *item, chapterDir, ii+1); err != nil {
				e.runLog.Printf("item %q (%s): %v", item.Name, item.ContentableType, err)
				fmt.Fprintf(e.out, "  %s %s: %v\n", color.RedString("fail"), item.Name, err)
				continue
			}

			switch decision {
			case DecisionNew:
				summary.New = append(summary.New, item.Name)
			case DecisionUpdated:
				summary.Updated = append(summary.Updated, item.Name)
			}
		}
	}

	return summary, nil
}
