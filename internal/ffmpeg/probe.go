package ffmpeg

import (
	"fmt"
	"strconv"
	"time"

	fflib "github.com/floostack/transcoder/ffmpeg"
)

// Duration probes a media file and returns its playback length.
func (e *Encoder) Duration(path string) (time.Duration, error) {
	cfg := &fflib.Config{
		FfmpegBinPath:  e.cfg.FfmpegBinPath,
		FfprobeBinPath: e.cfg.FfprobeBinPath,
	}
	meta, err := fflib.New(cfg).Input(path).GetMetadata()
	if err != nil {
		return 0, fmt.Errorf("probe %s: %w", path, err)
	}
	secs, err := strconv.ParseFloat(meta.GetFormat().GetDuration(), 64)
	if err != nil {
		return 0, fmt.Errorf("probe %s: parse duration: %w", path, err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
