package scrape

import (
	"fmt"
	"strings"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
)

// RenderQuiz renders a quiz as a standalone HTML document. Two documents
// are produced per quiz: a question-only version and an answer-annotated
// version where correct choices are flagged.
func RenderQuiz(name string, questions []thinkific.QuizQuestion, withAnswers bool) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", name)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", name)

	for i, q := range questions {
		fmt.Fprintf(&b, "<h3>Question %d</h3>\n", i+1)
		b.WriteString("<div class=\"prompt\">")
		b.WriteString(q.Prompt)
		b.WriteString("</div>\n<ol>\n")
		for _, choice := range q.Choices {
			if withAnswers && choice.Correct {
				fmt.Fprintf(&b, "<li><strong>%s</strong> &#10003;</li>\n", choice.Text)
			} else {
				fmt.Fprintf(&b, "<li>%s</li>\n", choice.Text)
			}
		}
		b.WriteString("</ol>\n")
		if withAnswers && q.Explanation != "" {
			fmt.Fprintf(&b, "<div class=\"explanation\">%s</div>\n", q.Explanation)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
