// Package organize lays downloaded course content out for Plex: one show
// per course, chapters as episodes, names Plex's scanner understands.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/veteranbv/ThinkiPlex/internal/util"
)

// Episode is one chapter folder resolved to an episode: its number, its
// display title and the main video file found beneath it.
type Episode struct {
	Number    int
	Title     string
	VideoPath string
}

var numberedDirRe = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

// videoExts are the container extensions considered episode material.
var videoExts = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".mov":  true,
	".webm": true,
	".avi":  true,
}

// ParseNumberedDir splits a "{n}. Title" folder name into its ordinal and
// title. Returns ok=false for folders outside the numbering scheme.
func ParseNumberedDir(name string) (int, string, bool) {
	m := numberedDirRe.FindStringSubmatch(name)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return n, strings.TrimSpace(m[2]), true
}

// EpisodeFileName composes the Plex-conventional file name for one episode.
func EpisodeFileName(show string, season, episode int, title, ext string) string {
	return fmt.Sprintf("%s - s%02de%02d - %s%s", util.SanitizeName(show), season, episode, util.SanitizeName(title), ext)
}

// Episodes scans a course download folder and resolves each numbered
// chapter folder into an Episode. Chapters without any video file are
// omitted; ordering follows the chapter ordinal.
func Episodes(courseDir string) ([]Episode, error) {
	entries, err := os.ReadDir(courseDir)
	if err != nil {
		return nil, fmt.Errorf("reading course folder: %w", err)
	}

	var eps []Episode
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		num, title, ok := ParseNumberedDir(entry.Name())
		if !ok {
			continue
		}
		video, err := mainVideo(filepath.Join(courseDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if video == "" {
			continue
		}
		eps = append(eps, Episode{Number: num, Title: title, VideoPath: video})
	}

	sort.Slice(eps, func(i, j int) bool { return eps[i].Number < eps[j].Number })
	return eps, nil
}

// mainVideo returns the largest video file under dir, or "" when the
// chapter has none.
func mainVideo(dir string) (string, error) {
	var best string
	var bestSize int64

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !videoExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > bestSize || best == "" {
			best, bestSize = path, info.Size()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning %s: %w", dir, err)
	}
	return best, nil
}
