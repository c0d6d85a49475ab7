package scrape

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
)

// Encoder is the media-transform collaborator used to turn slide pairs into
// clips and concatenate clips into one video. Implemented by internal/ffmpeg;
// stubbed in tests.
type Encoder interface {
	// Available reports whether the encoding tool is usable. Checked once
	// up front; a false result disables merging for the whole run.
	Available() bool
	// SlideClip encodes one slide image (with optional narration audio)
	// into a short clip. audioPath may be empty for a silent slide.
	SlideClip(ctx context.Context, imagePath, audioPath, outPath string) error
	// Concat stream-copies the clips listed in listPath into outPath.
	Concat(ctx context.Context, listPath, outPath string) error
}

// Assembler turns a presentation's slide set into one merged video.
type Assembler struct {
	fetch *Fetcher
	enc   Encoder
}

// NewAssembler creates an Assembler.
func NewAssembler(fetch *Fetcher, enc Encoder) *Assembler {
	return &Assembler{fetch: fetch, enc: enc}
}

// Assemble downloads each slide's image and optional audio, encodes one
// clip per slide, deletes the slide's sources as soon as its clip exists
// (bounding disk usage to one slide at a time), then concatenates all clips
// in numeric position order into dir/outputName. Intermediate clips and the
// concat manifest are removed on success.
func (a *Assembler) Assemble(ctx context.Context, slides []thinkific.Slide, dir, outputName string) (string, error) {
	merged := filepath.Join(dir, outputName)

	ordered := make([]thinkific.Slide, len(slides))
	copy(ordered, slides)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	var clips []string
	for _, slide := range ordered {
		clip, err := a.encodeSlide(ctx, slide, dir)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", slide.Position, err)
		}
		clips = append(clips, clip)
	}
	if len(clips) == 0 {
		return "", fmt.Errorf("presentation has no slides")
	}

	SortClipsByPosition(clips)

	listPath := filepath.Join(dir, "concat.txt")
	if err := writeConcatList(listPath, clips); err != nil {
		return "", err
	}
	if err := a.enc.Concat(ctx, listPath, merged); err != nil {
		return "", fmt.Errorf("concatenating clips: %w", err)
	}

	for _, clip := range clips {
		_ = os.Remove(clip)
	}
	_ = os.Remove(listPath)

	return merged, nil
}

// encodeSlide fetches one slide's assets, encodes its clip and removes the
// source image/audio. Returns the clip path.
func (a *Assembler) encodeSlide(ctx context.Context, slide thinkific.Slide, dir string) (string, error) {
	imgExt := filepath.Ext(FilenameFromURL(slide.ImageURL))
	if imgExt == "" {
		imgExt = ".jpg"
	}
	imgPath := filepath.Join(dir, fmt.Sprintf("%d-slide%s", slide.Position, imgExt))
	if err := a.fetch.Download(ctx, slide.ImageURL, imgPath); err != nil {
		return "", err
	}

	audioPath := ""
	if slide.AudioURL != "" {
		audExt := filepath.Ext(FilenameFromURL(slide.AudioURL))
		if audExt == "" {
			audExt = ".mp3"
		}
		audioPath = filepath.Join(dir, fmt.Sprintf("%d-audio%s", slide.Position, audExt))
		if err := a.fetch.Download(ctx, slide.AudioURL, audioPath); err != nil {
			_ = os.Remove(imgPath)
			return "", err
		}
	}

	clip := filepath.Join(dir, fmt.Sprintf("%d. clip.mp4", slide.Position))
	if err := a.enc.SlideClip(ctx, imgPath, audioPath, clip); err != nil {
		return "", err
	}

	_ = os.Remove(imgPath)
	if audioPath != "" {
		_ = os.Remove(audioPath)
	}
	return clip, nil
}

// SortClipsByPosition orders clip paths by the numeric value of their
// leading position token, so "10. clip.mp4" sorts after "2. clip.mp4".
func SortClipsByPosition(clips []string) {
	sort.Slice(clips, func(i, j int) bool {
		return leadingNumber(clips[i]) < leadingNumber(clips[j])
	})
}

func leadingNumber(path string) int {
	base := filepath.Base(path)
	end := 0
	for end < len(base) && base[end] >= '0' && base[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(base[:end])
	if err != nil {
		return 0
	}
	return n
}

// writeConcatList writes the concat-demuxer manifest listing clips in order.
func writeConcatList(path string, clips []string) error {
	var b strings.Builder
	for _, clip := range clips {
		// The concat demuxer's quoting: single quotes, embedded ones escaped.
		escaped := strings.ReplaceAll(filepath.Base(clip), "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", escaped)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
