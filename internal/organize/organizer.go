package organize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/floostack/transcoder"

	"github.com/veteranbv/ThinkiPlex/internal/ffmpeg"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

// Transcoder is the ffmpeg surface the organizer needs. Implemented by
// internal/ffmpeg; stubbed in tests.
type Transcoder interface {
	Available() bool
	Transcode(ctx context.Context, inPath, outPath string, opts transcoder.Options) error
}

// Params configure one organizing pass.
type Params struct {
	Show         string
	Season       int
	ExtractAudio bool
	AudioFormat  string // mp3, aac, flac or ogg
	AudioBitrate string // e.g. "192k"
}

// Result reports what one pass produced.
type Result struct {
	Episodes []string // placed episode files
	Audio    []string // extracted audio files
}

// Organizer copies course episodes into a Plex show tree, stamping episode
// metadata on the way through and optionally extracting audio tracks.
type Organizer struct {
	enc Transcoder
}

func New(enc Transcoder) *Organizer {
	return &Organizer{enc: enc}
}

// Run resolves the course folder's episodes and places them under
// plexDir/{show}/Season {NN}/. With ffmpeg available the placement is a
// stream-copy remux that stamps title/show/season/episode tags; without it
// the file is copied as-is.
func (o *Organizer) Run(ctx context.Context, courseDir, plexDir string, p Params) (*Result, error) {
	if p.Show == "" {
		return nil, fmt.Errorf("show name is required")
	}
	if p.Season <= 0 {
		p.Season = 1
	}

	eps, err := Episodes(courseDir)
	if err != nil {
		return nil, err
	}
	if len(eps) == 0 {
		return nil, fmt.Errorf("no episodes with video found in %s", courseDir)
	}

	seasonDir := filepath.Join(plexDir, util.SanitizeName(p.Show), fmt.Sprintf("Season %02d", p.Season))
	if err := util.EnsureDir(seasonDir); err != nil {
		return nil, fmt.Errorf("creating season folder: %w", err)
	}

	tag := o.enc != nil && o.enc.Available()
	result := &Result{}
	for _, ep := range eps {
		dest := filepath.Join(seasonDir, EpisodeFileName(p.Show, p.Season, ep.Number, ep.Title, filepath.Ext(ep.VideoPath)))

		if tag {
			opts := ffmpeg.MetadataOptions{
				Title:   ep.Title,
				Show:    p.Show,
				Season:  p.Season,
				Episode: ep.Number,
			}
			if err := o.enc.Transcode(ctx, ep.VideoPath, dest, opts); err != nil {
				return result, fmt.Errorf("episode %d: %w", ep.Number, err)
			}
		} else {
			// Repeat passes without ffmpeg skip episodes already in place.
			same, err := sameContent(ep.VideoPath, dest)
			if err != nil {
				return result, fmt.Errorf("episode %d: %w", ep.Number, err)
			}
			if !same {
				if err := util.CopyFile(ep.VideoPath, dest); err != nil {
					return result, fmt.Errorf("episode %d: %w", ep.Number, err)
				}
			}
		}
		result.Episodes = append(result.Episodes, dest)

		if p.ExtractAudio && tag {
			audioPath, err := o.extractAudio(ctx, dest, seasonDir, p)
			if err != nil {
				return result, fmt.Errorf("episode %d audio: %w", ep.Number, err)
			}
			result.Audio = append(result.Audio, audioPath)
		}
	}

	return result, nil
}

// sameContent reports whether dest already holds src's bytes.
func sameContent(src, dest string) (bool, error) {
	if _, err := os.Stat(dest); err != nil {
		return false, nil
	}
	srcSum, err := util.SHA256File(src)
	if err != nil {
		return false, err
	}
	destSum, err := util.SHA256File(dest)
	if err != nil {
		return false, err
	}
	return srcSum == destSum, nil
}

// extractAudio writes the episode's audio track into the season's audio/
// subfolder.
func (o *Organizer) extractAudio(ctx context.Context, videoPath, seasonDir string, p Params) (string, error) {
	format := p.AudioFormat
	if format == "" {
		format = "mp3"
	}
	audioDir := filepath.Join(seasonDir, "audio")
	if err := util.EnsureDir(audioDir); err != nil {
		return "", err
	}

	base := filepath.Base(videoPath)
	base = base[:len(base)-len(filepath.Ext(base))]
	dest := filepath.Join(audioDir, base+"."+format)

	opts := ffmpeg.AudioExtractOptions{Format: format, Bitrate: p.AudioBitrate}
	if err := o.enc.Transcode(ctx, videoPath, dest, opts); err != nil {
		return "", err
	}
	return dest, nil
}
