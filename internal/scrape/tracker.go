package scrape

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
)

// TrackingFile is the per-course tracking document name, co-located with
// the downloaded content.
const TrackingFile = ".download_tracking"

// Decision is the download oracle's verdict for one content item.
type Decision int

const (
	// DecisionNew means the item has never been downloaded.
	DecisionNew Decision = iota
	// DecisionUpdated means the item changed since its last download.
	DecisionUpdated
	// DecisionSkip means the stored timestamp matches the item's.
	DecisionSkip
)

func (d Decision) String() string {
	switch d {
	case DecisionNew:
		return "new"
	case DecisionUpdated:
		return "updated"
	default:
		return "skip"
	}
}

// Record is persisted proof that an item was downloaded successfully.
type Record struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	UpdatedAt    string    `json:"updated_at"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// Tracker is the persistent skip/fetch/update oracle. It holds one Record
// per downloaded item, keyed by a stable hash of (id, contentable type),
// and rewrites the whole document after every successful download.
type Tracker struct {
	fs      afero.Fs
	path    string
	records map[string]Record
}

// NewTracker creates a Tracker backed by the OS filesystem.
func NewTracker(path string) *Tracker {
	return NewTrackerWithFs(afero.NewOsFs(), path)
}

// NewTrackerWithFs creates a Tracker on an explicit filesystem.
func NewTrackerWithFs(fs afero.Fs, path string) *Tracker {
	return &Tracker{fs: fs, path: path, records: make(map[string]Record)}
}

// Load reads the backing document. A missing or unparseable file yields an
// empty mapping: re-downloading everything is an acceptable degraded
// outcome, aborting the run is not.
func (t *Tracker) Load() error {
	t.records = make(map[string]Record)

	data, err := afero.ReadFile(t.fs, t.path)
	if err != nil {
		return nil
	}
	if jsonErr := json.Unmarshal(data, &t.records); jsonErr != nil {
		t.records = make(map[string]Record)
	}
	return nil
}

// Key returns the stable tracking key for a content item.
func Key(c thinkific.Content) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s", c.ID, c.ContentableType)))
	return hex.EncodeToString(sum[:])[:16]
}

// Decide computes the download decision for an item.
func (t *Tracker) Decide(c thinkific.Content) Decision {
	rec, ok := t.records[Key(c)]
	if !ok {
		return DecisionNew
	}
	if rec.UpdatedAt != c.LastModified() {
		return DecisionUpdated
	}
	return DecisionSkip
}

// RecordSuccess upserts the item's record and persists the full mapping
// immediately, so a crash mid-run loses at most the in-flight item.
func (t *Tracker) RecordSuccess(c thinkific.Content) error {
	t.records[Key(c)] = Record{
		ID:           c.ID,
		Type:         c.ContentableType,
		Name:         c.Name,
		UpdatedAt:    c.LastModified(),
		DownloadedAt: time.Now().UTC(),
	}
	return t.persist()
}

// Len returns the number of tracked items.
func (t *Tracker) Len() int {
	return len(t.records)
}

// persist atomically rewrites the whole document: temp file in the same
// directory, then rename over the target.
func (t *Tracker) persist() error {
	if err := t.fs.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		return fmt.Errorf("creating tracking dir: %w", err)
	}
	data, err := json.MarshalIndent(t.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tracking document: %w", err)
	}
	tmp := t.path + ".tmp"
	if err := afero.WriteFile(t.fs, tmp, data, 0644); err != nil {
		return fmt.Errorf("writing tracking document: %w", err)
	}
	if err := t.fs.Rename(tmp, t.path); err != nil {
		_ = t.fs.Remove(tmp)
		return fmt.Errorf("replacing tracking document: %w", err)
	}
	return nil
}
