package summarize

import (
	"strconv"
	"strings"
)

// defaultChunkTokens is the per-request transcript budget. Token counts are
// approximated at four characters per token.
const defaultChunkTokens = 40000

const charsPerToken = 4

// ChunkText splits text into pieces of at most roughly maxTokens each,
// breaking on paragraph boundaries where possible. A single oversized
// paragraph is split mid-text rather than overflowing its chunk.
func ChunkText(text string, maxTokens int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{""}
	}
	limit := maxTokens * charsPerToken
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		for len(para) > limit {
			flush()
			chunks = append(chunks, strings.TrimSpace(para[:limit]))
			para = para[limit:]
		}
		if current.Len() > 0 && current.Len()+len(para)+2 > limit {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	flush()

	return chunks
}

// MergeSummaries joins per-chunk summaries into one labeled document for
// the final merge pass.
func MergeSummaries(parts []string) string {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## Part ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(part))
	}
	return b.String()
}
