package scrape

import "github.com/veteranbv/ThinkiPlex/internal/thinkific"

// Kind is the closed set of content kinds the router dispatches on.
type Kind int

const (
	KindUnknown Kind = iota
	KindHTMLItem
	KindLesson
	KindQuiz
	KindPDF
	KindDownload
	KindAudio
	KindPresentation
	KindMultimedia
	KindAssignment
	KindSurvey
)

// Classify maps a content item onto a Kind. Multimedia items carry
// ContentableType "Lesson" but are flagged by the lesson type label, so the
// label check runs first.
func Classify(c thinkific.Content) Kind {
	if c.DefaultLessonTypeLabel == "Multimedia" {
		return KindMultimedia
	}
	switch c.ContentableType {
	case "HtmlItem":
		return KindHTMLItem
	case "Lesson":
		return KindLesson
	case "Quiz":
		return KindQuiz
	case "Pdf":
		return KindPDF
	case "Download":
		return KindDownload
	case "Audio":
		return KindAudio
	case "Presentation":
		return KindPresentation
	case "Multimedia":
		return KindMultimedia
	case "Assignment":
		return KindAssignment
	case "Survey":
		return KindSurvey
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindHTMLItem:
		return "HtmlItem"
	case KindLesson:
		return "Lesson"
	case KindQuiz:
		return "Quiz"
	case KindPDF:
		return "Pdf"
	case KindDownload:
		return "Download"
	case KindAudio:
		return "Audio"
	case KindPresentation:
		return "Presentation"
	case KindMultimedia:
		return "Multimedia"
	case KindAssignment:
		return "Assignment"
	case KindSurvey:
		return "Survey"
	default:
		return "Unknown"
	}
}

// FolderSuffix is the type marker appended to an item's folder name.
func (k Kind) FolderSuffix() string {
	return k.String()
}

// Implemented reports whether the router has a retrieval path for the kind.
func (k Kind) Implemented() bool {
	switch k {
	case KindAssignment, KindSurvey, KindUnknown:
		return false
	default:
		return true
	}
}
