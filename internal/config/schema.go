package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ValidQualities are the video quality labels Thinkific serves.
var ValidQualities = []string{"Original File", "1080p", "720p", "540p", "360p", "224p"}

// ValidAudioFormats are the audio container formats supported for extraction.
var ValidAudioFormats = []string{"mp3", "aac", "flac", "ogg"}

// Config is the top-level thinkiplex configuration.
type Config struct {
	Global  GlobalConfig            `mapstructure:"global" yaml:"global"`
	Courses map[string]CourseConfig `mapstructure:"courses" yaml:"courses"`
}

// GlobalConfig holds defaults applied to every course unless overridden.
type GlobalConfig struct {
	BaseDir           string `mapstructure:"base_dir" yaml:"base_dir"`
	VideoQuality      string `mapstructure:"video_quality" yaml:"video_quality"`
	ExtractAudio      bool   `mapstructure:"extract_audio" yaml:"extract_audio"`
	AudioQuality      int    `mapstructure:"audio_quality" yaml:"audio_quality"`
	AudioFormat       string `mapstructure:"audio_format" yaml:"audio_format"`
	PresentationMerge bool   `mapstructure:"ffmpeg_presentation_merge" yaml:"ffmpeg_presentation_merge"`
	FfmpegPath        string `mapstructure:"ffmpeg_path" yaml:"ffmpeg_path,omitempty"`
	FfprobePath       string `mapstructure:"ffprobe_path" yaml:"ffprobe_path,omitempty"`
}

// CourseConfig defines a single course. Empty fields fall back to the
// global defaults.
type CourseConfig struct {
	CourseLink   string `mapstructure:"course_link" yaml:"course_link"`
	ShowName     string `mapstructure:"show_name" yaml:"show_name"`
	Season       string `mapstructure:"season" yaml:"season"`
	VideoQuality string `mapstructure:"video_quality" yaml:"video_quality,omitempty"`
	AudioFormat  string `mapstructure:"audio_format" yaml:"audio_format,omitempty"`
	ClientDate   string `mapstructure:"client_date" yaml:"client_date,omitempty"`
	CookieData   string `mapstructure:"cookie_data" yaml:"cookie_data,omitempty"`
}

// Course returns the course config with the given name, or nil.
func (c *Config) Course(name string) *CourseConfig {
	if c.Courses == nil {
		return nil
	}
	cc, ok := c.Courses[name]
	if !ok {
		return nil
	}
	return &cc
}

// CourseNames returns the configured course names.
func (c *Config) CourseNames() []string {
	names := make([]string, 0, len(c.Courses))
	for name := range c.Courses {
		names = append(names, name)
	}
	return names
}

// CourseDir returns the root data directory for a course.
func (c *Config) CourseDir(name string) string {
	return filepath.Join(c.Global.BaseDir, "data", "courses", name)
}

// DownloadsDir returns the directory the scraper writes course content into.
func (c *Config) DownloadsDir(name string) string {
	return filepath.Join(c.CourseDir(name), "downloads")
}

// PlexDir returns the root of the media-server-ready tree.
func (c *Config) PlexDir() string {
	return filepath.Join(c.Global.BaseDir, "data", "plex")
}

// EffectiveVideoQuality returns the course's quality or the global default.
func (cc *CourseConfig) EffectiveVideoQuality(g GlobalConfig) string {
	if cc.VideoQuality != "" {
		return cc.VideoQuality
	}
	if g.VideoQuality != "" {
		return g.VideoQuality
	}
	return "720p"
}

// EffectiveAudioFormat returns the course's audio format or the global default.
func (cc *CourseConfig) EffectiveAudioFormat(g GlobalConfig) string {
	if cc.AudioFormat != "" {
		return cc.AudioFormat
	}
	if g.AudioFormat != "" {
		return g.AudioFormat
	}
	return "mp3"
}

// EffectiveSeason returns the season number as a zero-padded string.
func (cc *CourseConfig) EffectiveSeason() string {
	if cc.Season == "" {
		return "01"
	}
	if len(cc.Season) == 1 {
		return "0" + cc.Season
	}
	return cc.Season
}

// Slug extracts the course slug from the course link
// (the final path segment of e.g. https://x.thinkific.com/courses/take/slug).
func (cc *CourseConfig) Slug() string {
	link := strings.TrimRight(cc.CourseLink, "/")
	if i := strings.LastIndex(link, "/"); i >= 0 {
		return link[i+1:]
	}
	return link
}

// Origin returns the scheme+host portion of the course link.
func (cc *CourseConfig) Origin() (string, error) {
	u, err := url.Parse(cc.CourseLink)
	if err != nil {
		return "", fmt.Errorf("parsing course link: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("course link %q has no scheme or host", cc.CourseLink)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Validate checks quality and audio format values against the known sets.
func (cc *CourseConfig) Validate(g GlobalConfig) error {
	if cc.CourseLink == "" {
		return fmt.Errorf("course_link is required")
	}
	q := cc.EffectiveVideoQuality(g)
	if !contains(ValidQualities, q) {
		return fmt.Errorf("video quality %q must be one of %v", q, ValidQualities)
	}
	f := cc.EffectiveAudioFormat(g)
	if !contains(ValidAudioFormats, f) {
		return fmt.Errorf("audio format %q must be one of %v", f, ValidAudioFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
