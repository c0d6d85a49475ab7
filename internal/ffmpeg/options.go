package ffmpeg

import "fmt"

// audioCodecs maps the configurable audio formats onto ffmpeg encoder
// names.
var audioCodecs = map[string]string{
	"mp3":  "libmp3lame",
	"aac":  "aac",
	"flac": "flac",
	"ogg":  "libvorbis",
}

// MetadataOptions remuxes a video while stamping the Plex-relevant
// metadata tags. The streams are copied, not re-encoded.
type MetadataOptions struct {
	Title   string
	Show    string
	Season  int
	Episode int
}

func (o MetadataOptions) GetStrArguments() []string {
	args := []string{"-y", "-c", "copy"}
	if o.Title != "" {
		args = append(args, "-metadata", "title="+o.Title)
	}
	if o.Show != "" {
		args = append(args, "-metadata", "show="+o.Show)
	}
	if o.Season > 0 {
		args = append(args, "-metadata", fmt.Sprintf("season_number=%d", o.Season))
	}
	if o.Episode > 0 {
		args = append(args, "-metadata", fmt.Sprintf("episode_id=%d", o.Episode))
	}
	return args
}

// AudioExtractOptions strips the video stream and encodes the audio
// track in the requested format.
type AudioExtractOptions struct {
	Format  string // mp3, aac, flac or ogg
	Bitrate string // e.g. "192k"; empty lets ffmpeg pick
}

func (o AudioExtractOptions) GetStrArguments() []string {
	codec, ok := audioCodecs[o.Format]
	if !ok {
		codec = audioCodecs["mp3"]
	}
	args := []string{"-y", "-vn", "-acodec", codec}
	if o.Bitrate != "" {
		args = append(args, "-b:a", o.Bitrate)
	}
	return args
}
