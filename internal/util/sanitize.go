package util

import (
	"regexp"
	"strings"
)

// unsafeChars matches characters that are not safe in file or directory
// names on at least one supported filesystem.
var unsafeChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// multiSpace collapses runs of whitespace left behind by stripping.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeName strips filesystem-unsafe characters from a display name so it
// can be used as a file or directory name. Runs of whitespace are collapsed
// and leading/trailing dots and spaces are trimmed. Returns "untitled" if
// nothing survives.
func SanitizeName(name string) string {
	s := unsafeChars.ReplaceAllString(name, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.Trim(s, " .")
	if s == "" {
		return "untitled"
	}
	return s
}
