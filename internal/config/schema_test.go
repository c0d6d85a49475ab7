package config_test

import (
	"testing"

	"github.com/veteranbv/ThinkiPlex/internal/config"
)

func TestCourse_Found(t *testing.T) {
	cfg := &config.Config{
		Courses: map[string]config.CourseConfig{
			"networking-101": {ShowName: "Networking 101"},
			"go-deep-dive":   {ShowName: "Go Deep Dive"},
		},
	}
	c := cfg.Course("go-deep-dive")
	if c == nil {
		t.Fatal("Course returned nil for existing course")
	}
	if c.ShowName != "Go Deep Dive" {
		t.Errorf("ShowName = %q, want %q", c.ShowName, "Go Deep Dive")
	}
}

func TestCourse_NotFound(t *testing.T) {
	cfg := &config.Config{
		Courses: map[string]config.CourseConfig{"networking-101": {}},
	}
	if cfg.Course("nope") != nil {
		t.Error("Course should return nil for missing course")
	}
}

func TestCourse_Empty(t *testing.T) {
	cfg := &config.Config{}
	if cfg.Course("any") != nil {
		t.Error("Course should return nil with no courses")
	}
}

func TestEffectiveVideoQuality_CourseOverride(t *testing.T) {
	cc := config.CourseConfig{VideoQuality: "1080p"}
	if got := cc.EffectiveVideoQuality(config.GlobalConfig{VideoQuality: "720p"}); got != "1080p" {
		t.Errorf("EffectiveVideoQuality = %q, want %q", got, "1080p")
	}
}

func TestEffectiveVideoQuality_GlobalFallback(t *testing.T) {
	cc := config.CourseConfig{}
	if got := cc.EffectiveVideoQuality(config.GlobalConfig{VideoQuality: "540p"}); got != "540p" {
		t.Errorf("EffectiveVideoQuality = %q, want %q", got, "540p")
	}
}

func TestEffectiveVideoQuality_Hardcoded(t *testing.T) {
	cc := config.CourseConfig{}
	if got := cc.EffectiveVideoQuality(config.GlobalConfig{}); got != "720p" {
		t.Errorf("EffectiveVideoQuality = %q, want %q", got, "720p")
	}
}

func TestEffectiveAudioFormat(t *testing.T) {
	cases := []struct {
		course, global, want string
	}{
		{"flac", "mp3", "flac"},
		{"", "ogg", "ogg"},
		{"", "", "mp3"},
	}
	for _, c := range cases {
		cc := config.CourseConfig{AudioFormat: c.course}
		got := cc.EffectiveAudioFormat(config.GlobalConfig{AudioFormat: c.global})
		if got != c.want {
			t.Errorf("EffectiveAudioFormat(%q,%q) = %q, want %q", c.course, c.global, got, c.want)
		}
	}
}

func TestEffectiveSeason(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "01"},
		{"3", "03"},
		{"12", "12"},
	}
	for _, c := range cases {
		cc := config.CourseConfig{Season: c.in}
		if got := cc.EffectiveSeason(); got != c.want {
			t.Errorf("EffectiveSeason(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlug(t *testing.T) {
	cc := config.CourseConfig{CourseLink: "https://acme.thinkific.com/courses/take/networking-101"}
	if got := cc.Slug(); got != "networking-101" {
		t.Errorf("Slug = %q, want %q", got, "networking-101")
	}
}

func TestSlug_TrailingSlash(t *testing.T) {
	cc := config.CourseConfig{CourseLink: "https://acme.thinkific.com/courses/take/networking-101/"}
	if got := cc.Slug(); got != "networking-101" {
		t.Errorf("Slug = %q, want %q", got, "networking-101")
	}
}

func TestOrigin(t *testing.T) {
	cc := config.CourseConfig{CourseLink: "https://acme.thinkific.com/courses/take/networking-101"}
	got, err := cc.Origin()
	if err != nil {
		t.Fatalf("Origin: %v", err)
	}
	if got != "https://acme.thinkific.com" {
		t.Errorf("Origin = %q, want %q", got, "https://acme.thinkific.com")
	}
}

func TestOrigin_Invalid(t *testing.T) {
	cc := config.CourseConfig{CourseLink: "not-a-url"}
	if _, err := cc.Origin(); err == nil {
		t.Error("expected error for link without scheme")
	}
}

func TestValidate(t *testing.T) {
	g := config.GlobalConfig{VideoQuality: "720p", AudioFormat: "mp3"}

	cc := config.CourseConfig{CourseLink: "https://x.test/courses/take/a"}
	if err := cc.Validate(g); err != nil {
		t.Errorf("Validate(defaults) = %v, want nil", err)
	}

	cc.VideoQuality = "480p"
	if err := cc.Validate(g); err == nil {
		t.Error("expected error for unknown quality")
	}

	cc.VideoQuality = "Original File"
	cc.AudioFormat = "wav"
	if err := cc.Validate(g); err == nil {
		t.Error("expected error for unknown audio format")
	}

	bad := config.CourseConfig{}
	if err := bad.Validate(g); err == nil {
		t.Error("expected error for missing course_link")
	}
}

func TestExpandHome(t *testing.T) {
	got := config.ExpandHome("/absolute/path")
	if got != "/absolute/path" {
		t.Errorf("ExpandHome = %q, want unchanged", got)
	}
	if config.ExpandHome("~/x") == "~/x" {
		t.Error("ExpandHome should expand ~/")
	}
}
