package summarize

import (
	"fmt"
	"sort"
	"strings"
)

// Template is one named summarization prompt. Render wraps a transcript
// chunk; RenderMerge wraps already-produced partial summaries.
type Template struct {
	Name   string
	System string
	task   string
}

// Render produces the user prompt for one transcript chunk.
func (t Template) Render(chunk string) string {
	return t.task + "\n\n<transcript>\n" + chunk + "\n</transcript>"
}

// RenderMerge produces the user prompt that folds partial summaries into a
// single document.
func (t Template) RenderMerge(merged string) string {
	return "The following are partial results produced from consecutive sections of one recording. " +
		"Combine them into a single coherent document, removing repetition.\n\n" + merged
}

var templates = map[string]Template{
	"summarize": {
		Name:   "summarize",
		System: "You are a precise note-taker for recorded courses.",
		task:   "Summarize this course transcript. Cover the main ideas, key arguments and any action items.",
	},
	"analyze": {
		Name:   "analyze",
		System: "You are an analyst reviewing educational material.",
		task:   "Analyze this course transcript: identify the core thesis, the supporting structure, and any gaps or assumptions worth questioning.",
	},
	"course_notes": {
		Name:   "course_notes",
		System: "You produce study notes students revise from.",
		task:   "Turn this course transcript into structured study notes with headings, bullet points and key terms defined.",
	},
}

// Prompt returns the named template.
func Prompt(name string) (Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown prompt %q (available: %s)", name, strings.Join(PromptNames(), ", "))
	}
	return tmpl, nil
}

// PromptNames lists the available template names, sorted.
func PromptNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
