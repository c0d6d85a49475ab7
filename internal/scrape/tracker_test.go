package scrape

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
)

func newMemTracker(t *testing.T) *Tracker {
	t.Helper()
	tr := NewTrackerWithFs(afero.NewMemMapFs(), "/course/"+TrackingFile)
	require.NoError(t, tr.Load())
	return tr
}

func TestDecideNewItem(t *testing.T) {
	tr := newMemTracker(t)
	c := thinkific.Content{ID: 1, ContentableType: "Lesson", UpdatedAt: "2024-01-01T00:00:00Z"}

	assert.Equal(t, DecisionNew, tr.Decide(c))
}

func TestDecideAfterSuccess(t *testing.T) {
	tr := newMemTracker(t)
	c := thinkific.Content{ID: 1, Name: "Intro", ContentableType: "Lesson", UpdatedAt: "2024-01-01T00:00:00Z"}

	require.NoError(t, tr.RecordSuccess(c))
	assert.Equal(t, DecisionSkip, tr.Decide(c))

	// A newer upstream timestamp flips the verdict to updated.
	c.UpdatedAt = "2024-06-01T00:00:00Z"
	assert.Equal(t, DecisionUpdated, tr.Decide(c))

	// Re-recording converges back to skip.
	require.NoError(t, tr.RecordSuccess(c))
	assert.Equal(t, DecisionSkip, tr.Decide(c))
}

func TestDecideCreatedAtFallback(t *testing.T) {
	tr := newMemTracker(t)
	c := thinkific.Content{ID: 4, ContentableType: "Pdf", CreatedAt: "2023-03-03T00:00:00Z"}

	require.NoError(t, tr.RecordSuccess(c))
	assert.Equal(t, DecisionSkip, tr.Decide(c))
}

func TestKeyDistinguishesTypes(t *testing.T) {
	a := thinkific.Content{ID: 7, ContentableType: "Lesson"}
	b := thinkific.Content{ID: 7, ContentableType: "Quiz"}

	assert.Len(t, Key(a), 16)
	assert.NotEqual(t, Key(a), Key(b))
	assert.Equal(t, Key(a), Key(a))
}

func TestTrackerPersistsAcrossInstances(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/course/" + TrackingFile
	c := thinkific.Content{ID: 2, Name: "Slides", ContentableType: "Presentation", UpdatedAt: "2024-02-02T00:00:00Z"}

	tr := NewTrackerWithFs(fs, path)
	require.NoError(t, tr.Load())
	require.NoError(t, tr.RecordSuccess(c))

	reloaded := NewTrackerWithFs(fs, path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 1, reloaded.Len())
	assert.Equal(t, DecisionSkip, reloaded.Decide(c))
}

func TestLoadMissingFile(t *testing.T) {
	tr := NewTrackerWithFs(afero.NewMemMapFs(), "/nowhere/"+TrackingFile)

	require.NoError(t, tr.Load())
	assert.Equal(t, 0, tr.Len())
}

func TestLoadCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/course/" + TrackingFile
	require.NoError(t, afero.WriteFile(fs, path, []byte("{not json"), 0644))

	tr := NewTrackerWithFs(fs, path)
	require.NoError(t, tr.Load())
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, DecisionNew, tr.Decide(thinkific.Content{ID: 1, ContentableType: "Lesson"}))
}

func TestRecordSuccessOverwritesCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/course/" + TrackingFile
	require.NoError(t, afero.WriteFile(fs, path, []byte("garbage"), 0644))
	c := thinkific.Content{ID: 9, Name: "Welcome", ContentableType: "HtmlItem", UpdatedAt: "2024-01-01T00:00:00Z"}

	tr := NewTrackerWithFs(fs, path)
	require.NoError(t, tr.Load())
	require.NoError(t, tr.RecordSuccess(c))

	reloaded := NewTrackerWithFs(fs, path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, DecisionSkip, reloaded.Decide(c))
}
