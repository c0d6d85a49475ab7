package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/veteranbv/ThinkiPlex/internal/config"
	"github.com/veteranbv/ThinkiPlex/internal/ffmpeg"
	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
	"github.com/veteranbv/ThinkiPlex/internal/tui"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

var appVersion = "dev"

// SetVersion records the build version injected from main.
func SetVersion(v string) {
	appVersion = v
}

// resolveCourse maps the --course flag onto a configured course. With the
// flag empty, a single configured course is used directly; multiple courses
// launch the picker on a TTY.
func resolveCourse(flagCourse string) (string, *config.CourseConfig, error) {
	if flagCourse != "" {
		cc := cfg.Course(flagCourse)
		if cc == nil {
			return "", nil, fmt.Errorf("course %q is not configured (see 'thinkiplex courses')", flagCourse)
		}
		return flagCourse, cc, nil
	}

	names := cfg.CourseNames()
	sort.Strings(names)
	switch {
	case len(names) == 0:
		return "", nil, fmt.Errorf("no courses configured — run 'thinkiplex setup' to add one")
	case len(names) == 1:
		return names[0], cfg.Course(names[0]), nil
	}

	if !util.IsTTY() {
		return "", nil, fmt.Errorf("multiple courses configured; pass --course")
	}
	options := make([]tui.CourseOption, len(names))
	for i, name := range names {
		cc := cfg.Course(name)
		options[i] = tui.CourseOption{Name: name, Show: cc.ShowName, Link: cc.CourseLink}
	}
	name, err := tui.RunCoursePicker(options)
	if err != nil {
		return "", nil, err
	}
	return name, cfg.Course(name), nil
}

// newThinkificClient builds an authenticated client from a course's config.
func newThinkificClient(cc *config.CourseConfig) (*thinkific.Client, error) {
	origin, err := cc.Origin()
	if err != nil {
		return nil, err
	}
	if cc.ClientDate == "" || cc.CookieData == "" {
		return nil, fmt.Errorf("missing auth for course — run 'thinkiplex auth' with --client-date and --cookie")
	}
	return thinkific.New(origin, cc.ClientDate, cc.CookieData), nil
}

// newEncoder builds the ffmpeg wrapper from the configured binary paths.
func newEncoder() *ffmpeg.Encoder {
	return ffmpeg.New(ffmpeg.Config{
		FfmpegBinPath:  cfg.Global.FfmpegPath,
		FfprobeBinPath: cfg.Global.FfprobePath,
	})
}

// openRunLog opens the per-course append-only run log. With --verbose the
// entries are mirrored to stderr.
func openRunLog(course string) (*log.Logger, func(), error) {
	dir := filepath.Join(cfg.CourseDir(course), "logs")
	if err := util.EnsureDir(dir); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "run.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = f
	if flagVerbose {
		w = io.MultiWriter(f, os.Stderr)
	}
	return log.New(w, "", log.LstdFlags), func() { _ = f.Close() }, nil
}

// seasonNumber parses a course's season setting, defaulting to 1.
func seasonNumber(cc *config.CourseConfig) int {
	n, err := strconv.Atoi(cc.EffectiveSeason())
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// audioBitrate maps the 0 (best) to 9 (worst) audio quality setting onto a
// constant bitrate.
func audioBitrate(quality int) string {
	rates := []string{"320k", "256k", "224k", "192k", "160k", "128k", "112k", "96k", "80k", "64k"}
	if quality < 0 || quality >= len(rates) {
		return rates[0]
	}
	return rates[quality]
}
