// Package ffmpeg wraps the ffmpeg and ffprobe binaries for the
// transcoding steps ThinkiPlex needs: composing presentation slide
// clips, concatenating them into a single video, tagging Plex metadata
// and extracting audio tracks.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Config locates the ffmpeg and ffprobe binaries. Empty paths fall back
// to whatever is on PATH.
type Config struct {
	FfmpegBinPath  string
	FfprobeBinPath string
}

// Encoder runs ffmpeg operations. The zero value is not usable; construct
// with New.
type Encoder struct {
	cfg Config

	probeOnce sync.Once
	probeErr  error
}

func New(cfg Config) *Encoder {
	if cfg.FfmpegBinPath == "" {
		cfg.FfmpegBinPath = "ffmpeg"
	}
	if cfg.FfprobeBinPath == "" {
		cfg.FfprobeBinPath = "ffprobe"
	}
	return &Encoder{cfg: cfg}
}

// Available reports whether the configured ffmpeg binary can be found.
// The lookup runs once and is cached for the life of the Encoder.
func (e *Encoder) Available() bool {
	e.probeOnce.Do(func() {
		_, e.probeErr = exec.LookPath(e.cfg.FfmpegBinPath)
	})
	return e.probeErr == nil
}

// SlideClip renders one presentation slide into a video clip. With audio
// the clip runs for the narration's length; silent slides get a fixed
// five second still.
func (e *Encoder) SlideClip(ctx context.Context, imagePath, audioPath, outPath string) error {
	args := slideClipArgs(imagePath, audioPath, outPath)
	return e.run(ctx, args)
}

// Concat joins the clips named in a concat-demuxer list file into a
// single video without re-encoding.
func (e *Encoder) Concat(ctx context.Context, listPath, outPath string) error {
	args := concatArgs(listPath, outPath)
	return e.run(ctx, args)
}

func slideClipArgs(imagePath, audioPath, outPath string) []string {
	if audioPath == "" {
		return []string{
			"-y", "-loop", "1", "-t", "5", "-i", imagePath,
			"-c:v", "libx264", "-tune", "stillimage", "-pix_fmt", "yuv420p",
			"-an",
			outPath,
		}
	}
	return []string{
		"-y", "-loop", "1", "-i", imagePath, "-i", audioPath,
		"-c:v", "libx264", "-tune", "stillimage", "-pix_fmt", "yuv420p",
		"-c:a", "aac", "-shortest",
		outPath,
	}
}

func concatArgs(listPath, outPath string) []string {
	return []string{
		"-y", "-f", "concat", "-safe", "0", "-i", listPath,
		"-c", "copy",
		outPath,
	}
}

// run executes ffmpeg with the given arguments, surfacing the tail of
// stderr on failure since ffmpeg buries the actual error under banner
// output.
func (e *Encoder) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, e.cfg.FfmpegBinPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg %s: %w: %s", args[len(args)-1], err, stderrTail(stderr.String()))
	}
	return nil
}

func stderrTail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.Join(lines, " | ")
}
