// Package transcribe produces speaker-labeled transcripts of course audio
// through the AssemblyAI REST API.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBase = "https://api.assemblyai.com"

// ErrNoAPIKey indicates the AssemblyAI key is missing from the environment.
var ErrNoAPIKey = errors.New("ASSEMBLYAI_API_KEY is not set")

// Client talks to the AssemblyAI v2 API.
type Client struct {
	base string
	key  string
	http *http.Client

	// pollInterval between transcript status checks; shortened in tests.
	pollInterval time.Duration
}

// New creates a Client with the given API key.
func New(key string) *Client {
	return &Client{
		base:         defaultBase,
		key:          key,
		http:         &http.Client{Timeout: 5 * time.Minute},
		pollInterval: 3 * time.Second,
	}
}

// FromEnv creates a Client keyed from ASSEMBLYAI_API_KEY.
func FromEnv() (*Client, error) {
	key := os.Getenv("ASSEMBLYAI_API_KEY")
	if key == "" {
		return nil, ErrNoAPIKey
	}
	return New(key), nil
}

// Utterance is one speaker turn of a transcript.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Start   int64  `json:"start"`
}

// Transcript is the finished transcription result.
type Transcript struct {
	ID         string      `json:"id"`
	Status     string      `json:"status"`
	Text       string      `json:"text"`
	Utterances []Utterance `json:"utterances"`
	Error      string      `json:"error"`
}

// Transcribe uploads a local audio file and blocks until AssemblyAI
// finishes transcribing it with speaker labels.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (*Transcript, error) {
	uploadURL, err := c.upload(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("uploading audio: %w", err)
	}

	id, err := c.create(ctx, uploadURL)
	if err != nil {
		return nil, fmt.Errorf("creating transcript: %w", err)
	}

	return c.poll(ctx, id)
}

// upload streams the audio file to AssemblyAI and returns its temporary URL.
func (c *Client) upload(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v2/upload", f)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.key)
	req.Header.Set("Content-Type", "application/octet-stream")

	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := c.doJSON(req, &out); err != nil {
		return "", err
	}
	if out.UploadURL == "" {
		return "", fmt.Errorf("upload response carried no url")
	}
	return out.UploadURL, nil
}

// create submits the transcription job and returns its id.
func (c *Client) create(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"audio_url":      audioURL,
		"speaker_labels": true,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v2/transcript", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.key)
	req.Header.Set("Content-Type", "application/json")

	var out Transcript
	if err := c.doJSON(req, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("transcript response carried no id")
	}
	return out.ID, nil
}

// poll blocks until the transcript reaches a terminal status.
func (c *Client) poll(ctx context.Context, id string) (*Transcript, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v2/transcript/"+id, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", c.key)

		var t Transcript
		if err := c.doJSON(req, &t); err != nil {
			return nil, err
		}
		switch t.Status {
		case "completed":
			return &t, nil
		case "error":
			return nil, fmt.Errorf("transcription failed: %s", t.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) doJSON(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("assemblyai: %s: %s", resp.Status, bytes.TrimSpace(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
