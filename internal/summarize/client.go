// Package summarize turns long course transcripts into notes with the
// Anthropic messages API.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBase    = "https://api.anthropic.com"
	defaultModel   = "claude-3-5-sonnet-latest"
	apiVersion     = "2023-06-01"
	defaultMaxToks = 4096
)

// ErrNoAPIKey indicates the Anthropic key is missing from the environment.
var ErrNoAPIKey = errors.New("ANTHROPIC_API_KEY is not set")

// Client talks to the Anthropic messages endpoint.
type Client struct {
	base  string
	key   string
	model string
	http  *http.Client
}

// New creates a Client with the given API key.
func New(key string) *Client {
	return &Client{
		base:  defaultBase,
		key:   key,
		model: defaultModel,
		http:  &http.Client{Timeout: 5 * time.Minute},
	}
}

// FromEnv creates a Client keyed from ANTHROPIC_API_KEY.
func FromEnv() (*Client, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, ErrNoAPIKey
	}
	return New(key), nil
}

// WithModel overrides the model used for completions.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one user prompt with a system instruction and returns the
// model's text.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: defaultMaxToks,
		System:    system,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", c.key)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	var out messagesResponse
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if jsonErr := json.Unmarshal(raw, &out); jsonErr == nil && out.Error != nil {
			return "", fmt.Errorf("anthropic: %s: %s", out.Error.Type, out.Error.Message)
		}
		return "", fmt.Errorf("anthropic: %s: %s", resp.Status, bytes.TrimSpace(raw))
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("anthropic: response carried no text content")
	}
	return b.String(), nil
}

// Summarize runs the named prompt template over a transcript, chunking it
// when it exceeds the model's comfortable input size and merging the chunk
// summaries into one document.
func (c *Client) Summarize(ctx context.Context, promptName, transcript string) (string, error) {
	tmpl, err := Prompt(promptName)
	if err != nil {
		return "", err
	}

	chunks := ChunkText(transcript, defaultChunkTokens)
	if len(chunks) == 1 {
		return c.Complete(ctx, tmpl.System, tmpl.Render(chunks[0]))
	}

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		part, err := c.Complete(ctx, tmpl.System, tmpl.Render(chunk))
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, part)
	}
	return c.Complete(ctx, tmpl.System, tmpl.RenderMerge(MergeSummaries(parts)))
}
