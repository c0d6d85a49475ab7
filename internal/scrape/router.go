package scrape

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

// dispatch routes one content item through its type-specific retrieval
// procedure inside a type-marked folder under chapterDir. Every successful
// branch records the item in the tracker; failures leave it untracked so
// the next run retries it.
func (e *Engine) dispatch(ctx context.Context, c thinkific.Content, chapterDir string, index int) error {
	kind := Classify(c)
	if !kind.Implemented() {
		// Assignments and surveys have no downloadable content; mark them
		// handled so later runs skip them outright. Unknown types stay
		// untracked in case a future version learns to fetch them.
		if kind == KindAssignment || kind == KindSurvey {
			return e.tracker.RecordSuccess(c)
		}
		return nil
	}

	itemDir := filepath.Join(chapterDir, fmt.Sprintf("%d. %s %s", index, util.SanitizeName(c.Name), kind.FolderSuffix()))
	if err := util.EnsureDir(itemDir); err != nil {
		return fmt.Errorf("creating item folder: %w", err)
	}

	var err error
	switch kind {
	case KindHTMLItem:
		err = e.htmlItem(ctx, c, itemDir)
	case KindLesson:
		err = e.lesson(ctx, c, itemDir)
	case KindQuiz:
		err = e.quiz(ctx, c, itemDir)
	case KindPDF:
		err = e.pdf(ctx, c, itemDir)
	case KindDownload:
		err = e.download(ctx, c, itemDir)
	case KindAudio:
		err = e.audio(ctx, c, itemDir)
	case KindPresentation:
		err = e.presentation(ctx, c, itemDir)
	case KindMultimedia:
		err = e.multimedia(ctx, c, itemDir)
	}
	if err != nil {
		return err
	}

	return e.tracker.RecordSuccess(c)
}

// htmlItem saves the raw HTML body and downloads every embedded media URL
// found by the three independent patterns (proxy video, direct mp3, Wistia).
func (e *Engine) htmlItem(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.HTMLItem(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("html item detail: %w", err)
	}
	body := detail.HTMLItem.Body

	for _, u := range FindVideoProxyURLs(body) {
		if _, err := e.fetch.DownloadTo(ctx, u, dir); err != nil {
			return err
		}
	}
	for _, u := range FindMP3URLs(body) {
		if _, err := e.fetch.DownloadTo(ctx, u, dir); err != nil {
			return err
		}
	}
	for _, id := range FindWistiaIDs(body) {
		if err := e.wistiaVideo(ctx, id, dir); err != nil {
			return err
		}
	}

	name := util.SanitizeName(c.Name) + ".html"
	return os.WriteFile(filepath.Join(dir, name), []byte(body), 0644)
}

// lesson downloads the lesson's videos (per-video backend switch), its
// rendered HTML text if present, and any attached downloadable files.
func (e *Engine) lesson(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.Lesson(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("lesson detail: %w", err)
	}

	for _, v := range detail.Videos {
		if err := e.lessonVideo(ctx, v, dir); err != nil {
			return err
		}
	}

	if txt := detail.Lesson.HTMLText; txt != "" {
		name := util.SanitizeName(c.Name) + ".html"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(txt), 0644); err != nil {
			return err
		}
	}

	return e.fileRefs(ctx, detail.Downloads, dir)
}

// lessonVideo dispatches one video to its hosting backend.
func (e *Engine) lessonVideo(ctx context.Context, v thinkific.Video, dir string) error {
	switch v.StorageLocation {
	case "wistia":
		return e.wistiaVideo(ctx, v.Identifier, dir)
	case "videoproxy":
		file := chooseProxyFile(v.Files, e.opts.Quality)
		if file == nil {
			return fmt.Errorf("video %d has no files", v.ID)
		}
		_, err := e.fetch.DownloadTo(ctx, file.URL, dir)
		return err
	default:
		if v.URL == "" {
			return fmt.Errorf("video %d has no direct url", v.ID)
		}
		_, err := e.fetch.DownloadTo(ctx, v.URL, dir)
		return err
	}
}

// wistiaVideo resolves a Wistia media id to an asset of the configured
// quality and downloads it.
func (e *Engine) wistiaVideo(ctx context.Context, id, dir string) error {
	media, err := e.wistiaMediaInfo(ctx, id)
	if err != nil {
		return err
	}
	asset := ChooseWistiaAsset(media.Media.Assets, e.opts.Quality)
	if asset == nil {
		return fmt.Errorf("wistia media %s has no assets", id)
	}

	name := util.SanitizeName(media.Media.Name)
	if name == "untitled" {
		name = id
	}
	if filepath.Ext(name) == "" {
		name += ".mp4"
	}
	return e.fetch.Download(ctx, asset.URL, filepath.Join(dir, name))
}

// quiz renders the question-only and answer-annotated documents and
// downloads any Wistia embeds found in question prompts.
func (e *Engine) quiz(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.Quiz(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("quiz detail: %w", err)
	}

	name := detail.Quiz.Name
	if name == "" {
		name = c.Name
	}

	questions := RenderQuiz(name, detail.Questions, false)
	if err := os.WriteFile(filepath.Join(dir, "questions.html"), []byte(questions), 0644); err != nil {
		return err
	}
	answers := RenderQuiz(name, detail.Questions, true)
	if err := os.WriteFile(filepath.Join(dir, "answers.html"), []byte(answers), 0644); err != nil {
		return err
	}

	for _, q := range detail.Questions {
		for _, id := range FindWistiaIDs(q.Prompt) {
			if err := e.wistiaVideo(ctx, id, dir); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) pdf(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.Pdf(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("pdf detail: %w", err)
	}
	if detail.Pdf.URL == "" {
		return fmt.Errorf("pdf %q has no file url", c.Name)
	}
	_, err = e.fetch.DownloadTo(ctx, detail.Pdf.URL, dir)
	return err
}

func (e *Engine) audio(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.Audio(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("audio detail: %w", err)
	}
	if detail.Audio.URL == "" {
		return fmt.Errorf("audio %q has no file url", c.Name)
	}
	_, err = e.fetch.DownloadTo(ctx, detail.Audio.URL, dir)
	return err
}

func (e *Engine) download(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.Download(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("download detail: %w", err)
	}
	return e.fileRefs(ctx, detail.Files, dir)
}

// presentation downloads the main PDF and, when the encoder is available
// and merging is enabled, assembles the slide set into one video. The
// tracker's decision is the only skip authority; an existing merged file is
// simply overwritten on re-dispatch.
func (e *Engine) presentation(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.Presentation(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("presentation detail: %w", err)
	}

	if detail.Presentation.SourceFileURL != "" {
		if _, err := e.fetch.DownloadTo(ctx, detail.Presentation.SourceFileURL, dir); err != nil {
			return err
		}
	}

	if !e.opts.MergePresentations || !e.encAvailable {
		return nil
	}
	if len(detail.Slides) == 0 {
		return nil
	}

	assembler := NewAssembler(e.fetch, e.enc)
	outputName := util.SanitizeName(c.Name) + " - merged.mp4"
	if _, err := assembler.Assemble(ctx, detail.Slides, dir, outputName); err != nil {
		return fmt.Errorf("merging presentation: %w", err)
	}
	return nil
}

// multimedia resolves the iframe source: document-like URLs are fetched and
// saved, anything else is recorded as a URL reference. Attached files are
// downloaded either way.
func (e *Engine) multimedia(ctx context.Context, c thinkific.Content, dir string) error {
	detail, err := e.client.Iframe(ctx, c.ContentableID)
	if err != nil {
		return fmt.Errorf("iframe detail: %w", err)
	}

	if src := detail.Iframe.SourceURL; src != "" {
		if looksLikeDocument(src) {
			if _, err := e.fetch.DownloadTo(ctx, src, dir); err != nil {
				return err
			}
		} else {
			if err := os.WriteFile(filepath.Join(dir, "source_url.txt"), []byte(src+"\n"), 0644); err != nil {
				return err
			}
		}
	}

	return e.fileRefs(ctx, detail.Downloads, dir)
}

// fileRefs downloads a list of file attachments, preferring their labels
// as local names.
func (e *Engine) fileRefs(ctx context.Context, files []thinkific.FileRef, dir string) error {
	for _, f := range files {
		name := util.SanitizeName(f.Label)
		if name == "untitled" {
			name = FilenameFromURL(f.URL)
		} else if filepath.Ext(name) == "" {
			if ext := filepath.Ext(FilenameFromURL(f.URL)); ext != "" {
				name += ext
			}
		}
		if err := e.fetch.Download(ctx, f.URL, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// looksLikeDocument reports whether an iframe source URL points at a
// fetchable document rather than an embedded page.
func looksLikeDocument(rawURL string) bool {
	lowered := strings.ToLower(rawURL)
	if i := strings.IndexByte(lowered, '?'); i >= 0 {
		lowered = lowered[:i]
	}
	for _, ext := range []string{".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx", ".txt"} {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return strings.Contains(lowered, "/documents/")
}
