package thinkific

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client is an authenticated Thinkific course player client. Authentication
// is a pair of opaque values captured from a browser session: the
// X-Thinkific-Client-Date header and the session cookie string. Acquiring
// and refreshing them is the caller's responsibility.
type Client struct {
	base       string
	clientDate string
	cookie     string
	http       *http.Client
}

// New creates a Client for the given school origin (scheme+host).
// No overall client deadline: course videos stream through Fetch for as
// long as they need, with the per-request context canceling stuck
// transfers. Connection setup and response headers are still bounded.
func New(base, clientDate, cookie string) *Client {
	base = strings.TrimRight(base, "/")
	return &Client{
		base:       base,
		clientDate: clientDate,
		cookie:     cookie,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           (&net.Dialer{Timeout: 30 * time.Second}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: time.Minute,
			},
		},
	}
}

// do executes the request with the standard auth headers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Thinkific-Client-Date", c.clientDate)
	req.Header.Set("Cookie", c.cookie)
	req.Header.Set("User-Agent", userAgent)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return c.http.Do(req)
}

// getJSON fetches an API path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Manifest fetches the course player manifest for a course slug.
// An API-reported error field is fatal for the run.
func (c *Client) Manifest(ctx context.Context, slug string) (*Manifest, error) {
	var m Manifest
	if err := c.getJSON(ctx, "/api/course_player/v2/courses/"+slug, &m); err != nil {
		return nil, fmt.Errorf("fetching course manifest: %w", err)
	}
	if m.Error != "" {
		return nil, fmt.Errorf("course manifest error: %s", m.Error)
	}
	return &m, nil
}

// Lesson fetches the lesson detail for a contentable id.
func (c *Client) Lesson(ctx context.Context, id int64) (*LessonDetail, error) {
	var d LessonDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/lessons/%d", id), &d)
}

// Quiz fetches the quiz detail for a contentable id.
func (c *Client) Quiz(ctx context.Context, id int64) (*QuizDetail, error) {
	var d QuizDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/quizzes/%d", id), &d)
}

// Pdf fetches the pdf detail for a contentable id.
func (c *Client) Pdf(ctx context.Context, id int64) (*PdfDetail, error) {
	var d PdfDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/pdfs/%d", id), &d)
}

// Audio fetches the audio detail for a contentable id.
func (c *Client) Audio(ctx context.Context, id int64) (*AudioDetail, error) {
	var d AudioDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/audio/%d", id), &d)
}

// Download fetches the download detail for a contentable id.
func (c *Client) Download(ctx context.Context, id int64) (*DownloadDetail, error) {
	var d DownloadDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/downloads/%d", id), &d)
}

// HTMLItem fetches the html item detail for a contentable id.
func (c *Client) HTMLItem(ctx context.Context, id int64) (*HTMLItemDetail, error) {
	var d HTMLItemDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/html_items/%d", id), &d)
}

// Presentation fetches the presentation detail for a contentable id.
func (c *Client) Presentation(ctx context.Context, id int64) (*PresentationDetail, error) {
	var d PresentationDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/presentations/%d", id), &d)
}

// Iframe fetches the iframe (multimedia) detail for a contentable id.
func (c *Client) Iframe(ctx context.Context, id int64) (*IframeDetail, error) {
	var d IframeDetail
	return &d, c.getJSON(ctx, fmt.Sprintf("/api/course_player/v2/iframes/%d", id), &d)
}

// Fetch streams the content of an arbitrary URL with the auth headers
// attached. Caller is responsible for closing the returned ReadCloser.
func (c *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		_ = resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("thinkific API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
