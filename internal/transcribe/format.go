package transcribe

import (
	"fmt"
	"strings"
)

// FormatSpeakerLabels renders a transcript as one paragraph per speaker
// turn, each prefixed with its speaker tag and timestamp. Transcripts
// without utterances fall back to the plain text.
func FormatSpeakerLabels(t *Transcript) string {
	if len(t.Utterances) == 0 {
		return t.Text
	}

	var b strings.Builder
	for i, u := range t.Utterances {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%s] Speaker %s: %s", formatTimestamp(u.Start), u.Speaker, u.Text)
	}
	return b.String()
}

// formatTimestamp renders milliseconds as h:mm:ss or m:ss.
func formatTimestamp(ms int64) string {
	total := ms / 1000
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
