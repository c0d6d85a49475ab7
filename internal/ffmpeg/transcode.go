package ffmpeg

import (
	"context"

	"github.com/floostack/transcoder"
	fflib "github.com/floostack/transcoder/ffmpeg"
)

// Transcode runs a single-input single-output ffmpeg pass with the given
// options, blocking until the command finishes.
func (e *Encoder) Transcode(ctx context.Context, inPath, outPath string, opts transcoder.Options) error {
	cfg := &fflib.Config{
		ProgressEnabled: true,
		FfmpegBinPath:   e.cfg.FfmpegBinPath,
		FfprobeBinPath:  e.cfg.FfprobeBinPath,
	}

	progress, err := fflib.
		New(cfg).
		Input(inPath).
		Output(outPath).
		WithContext(&ctx).
		Start(opts)
	if err != nil {
		return err
	}

	// The channel closes when the command exits.
	for range progress {
	}
	return nil
}
