package thinkific_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
)

func TestManifest_AuthHeaders(t *testing.T) {
	var gotDate, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.Header.Get("X-Thinkific-Client-Date")
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"course":{"id":1,"name":"C","slug":"c"},"chapters":[],"contents":[]}`))
	}))
	defer srv.Close()

	c := thinkific.New(srv.URL, "date-token", "_session=abc")
	m, err := c.Manifest(context.Background(), "c")
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	if m.Course.Name != "C" {
		t.Errorf("Course.Name = %q", m.Course.Name)
	}
	if gotDate != "date-token" {
		t.Errorf("client date header = %q", gotDate)
	}
	if gotCookie != "_session=abc" {
		t.Errorf("cookie header = %q", gotCookie)
	}
}

func TestManifest_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"enrollment expired"}`))
	}))
	defer srv.Close()

	c := thinkific.New(srv.URL, "", "")
	if _, err := c.Manifest(context.Background(), "c"); err == nil {
		t.Fatal("expected error for API-reported error field")
	}
}

func TestManifest_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := thinkific.New(srv.URL, "", "")
	_, err := c.Manifest(context.Background(), "c")
	if !errors.Is(err, thinkific.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestLessonDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/course_player/v2/lessons/42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"lesson": {"name": "Intro", "html_text": "<p>hi</p>"},
			"videos": [{"id": 1, "storage_location": "wistia", "identifier": "abc123xyz0"}],
			"downloads": [{"label": "Slides", "download_url": "https://files.test/slides.pdf"}]
		}`))
	}))
	defer srv.Close()

	c := thinkific.New(srv.URL, "", "")
	d, err := c.Lesson(context.Background(), 42)
	if err != nil {
		t.Fatalf("Lesson: %v", err)
	}
	if d.Lesson.HTMLText != "<p>hi</p>" {
		t.Errorf("HTMLText = %q", d.Lesson.HTMLText)
	}
	if len(d.Videos) != 1 || d.Videos[0].StorageLocation != "wistia" {
		t.Errorf("Videos = %+v", d.Videos)
	}
	if len(d.Downloads) != 1 || d.Downloads[0].URL != "https://files.test/slides.pdf" {
		t.Errorf("Downloads = %+v", d.Downloads)
	}
}

func TestFetchContextCancelsBodyRead(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("first chunk"))
		w.(http.Flusher).Flush()
		// Hold the rest of the body until the client gives up.
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	c := thinkific.New(srv.URL, "", "")
	rc, err := c.Fetch(ctx, srv.URL+"/files/big.mp4")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	defer rc.Close()

	buf := make([]byte, len("first chunk"))
	if _, err := io.ReadFull(rc, buf); err != nil {
		t.Fatalf("reading first chunk: %v", err)
	}

	cancel()
	_, err = rc.Read(buf)
	if err == nil {
		t.Fatal("expected the canceled context to abort the body read")
	}
}

func TestContentLastModified(t *testing.T) {
	c := thinkific.Content{UpdatedAt: "2026-01-02T03:04:05Z", CreatedAt: "2025-01-01T00:00:00Z"}
	if got := c.LastModified(); got != "2026-01-02T03:04:05Z" {
		t.Errorf("LastModified = %q, want updated_at", got)
	}

	c = thinkific.Content{CreatedAt: "2025-01-01T00:00:00Z"}
	if got := c.LastModified(); got != "2025-01-01T00:00:00Z" {
		t.Errorf("LastModified = %q, want created_at", got)
	}

	c = thinkific.Content{}
	got := c.LastModified()
	if _, err := time.Parse(time.RFC3339, got); err != nil {
		t.Errorf("LastModified fallback %q is not RFC3339: %v", got, err)
	}
}

func TestContentByID(t *testing.T) {
	m := &thinkific.Manifest{
		Contents: []thinkific.Content{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
	}
	if got := m.ContentByID(2); got == nil || got.Name != "b" {
		t.Errorf("ContentByID(2) = %+v", got)
	}
	if m.ContentByID(99) != nil {
		t.Error("ContentByID(99) should be nil")
	}
}
