package thinkific

import "time"

// Manifest is the course player payload: course metadata, ordered chapters
// and the flat content list the chapters reference by id.
type Manifest struct {
	Course   CourseMeta `json:"course"`
	Chapters []Chapter  `json:"chapters"`
	Contents []Content  `json:"contents"`
	Error    string     `json:"error,omitempty"`
}

// CourseMeta is the course-level metadata block of a manifest.
type CourseMeta struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Chapter is one ordered section of a course, referencing contents by id.
type Chapter struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Position   int     `json:"position"`
	ContentIDs []int64 `json:"content_ids"`
}

// Content is one lesson/resource unit within a chapter.
type Content struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Slug                   string `json:"slug"`
	Position               int    `json:"position"`
	ChapterID              int64  `json:"chapter_id"`
	ContentableID          int64  `json:"contentable_id"`
	ContentableType        string `json:"contentable_type"`
	DefaultLessonTypeLabel string `json:"default_lesson_type_label"`
	UpdatedAt              string `json:"updated_at"`
	CreatedAt              string `json:"created_at"`
}

// LastModified returns the item's modification timestamp, falling back to
// the creation timestamp and finally the current time.
func (c Content) LastModified() string {
	if c.UpdatedAt != "" {
		return c.UpdatedAt
	}
	if c.CreatedAt != "" {
		return c.CreatedAt
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// ContentByID returns the content with the given id, or nil.
func (m *Manifest) ContentByID(id int64) *Content {
	for i := range m.Contents {
		if m.Contents[i].ID == id {
			return &m.Contents[i]
		}
	}
	return nil
}

// Video is one video attached to a lesson.
type Video struct {
	ID              int64       `json:"id"`
	Position        int         `json:"position"`
	StorageLocation string      `json:"storage_location"`
	Identifier      string      `json:"identifier"`
	URL             string      `json:"url"`
	Files           []VideoFile `json:"files"`
}

// VideoFile is one quality variant of a proxied video.
type VideoFile struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FileRef is a downloadable file attachment.
type FileRef struct {
	Label string `json:"label"`
	URL   string `json:"download_url"`
}

// Slide is one page of a presentation: an image and optional narration.
type Slide struct {
	Position int    `json:"position"`
	ImageURL string `json:"image_url"`
	AudioURL string `json:"audio_url"`
}

// QuizChoice is one answer option of a quiz question.
type QuizChoice struct {
	ID      int64  `json:"id"`
	Text    string `json:"text_html"`
	Correct bool   `json:"correct"`
}

// QuizQuestion is one question with its prompt HTML and choices.
type QuizQuestion struct {
	ID          int64        `json:"id"`
	Position    int          `json:"position"`
	Prompt      string       `json:"prompt_html"`
	Explanation string       `json:"explanation_html"`
	Choices     []QuizChoice `json:"choices"`
}

// LessonDetail is the payload of the lesson detail endpoint.
type LessonDetail struct {
	Lesson struct {
		Name     string `json:"name"`
		HTMLText string `json:"html_text"`
	} `json:"lesson"`
	Videos    []Video   `json:"videos"`
	Downloads []FileRef `json:"downloads"`
}

// QuizDetail is the payload of the quiz detail endpoint.
type QuizDetail struct {
	Quiz struct {
		Name string `json:"name"`
	} `json:"quiz"`
	Questions []QuizQuestion `json:"questions"`
}

// PdfDetail is the payload of the pdf detail endpoint.
type PdfDetail struct {
	Pdf struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"pdf"`
}

// AudioDetail is the payload of the audio detail endpoint.
type AudioDetail struct {
	Audio struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"audio"`
}

// DownloadDetail is the payload of the download detail endpoint.
type DownloadDetail struct {
	Download struct {
		Name string `json:"name"`
	} `json:"download"`
	Files []FileRef `json:"files"`
}

// HTMLItemDetail is the payload of the html item detail endpoint.
type HTMLItemDetail struct {
	HTMLItem struct {
		Name string `json:"name"`
		Body string `json:"body"`
	} `json:"html_item"`
}

// PresentationDetail is the payload of the presentation detail endpoint.
type PresentationDetail struct {
	Presentation struct {
		Name          string `json:"name"`
		SourceFileURL string `json:"source_file_url"`
	} `json:"presentation"`
	Slides []Slide `json:"slides"`
}

// IframeDetail is the payload of the iframe (multimedia) detail endpoint.
type IframeDetail struct {
	Iframe struct {
		Name      string `json:"name"`
		SourceURL string `json:"source_url"`
	} `json:"iframe"`
	Downloads []FileRef `json:"downloads"`
}
