package scrape

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

// Fetcher retrieves single remote resources into local files. There is no
// partial-download resume; a failed transfer leaves nothing behind and the
// whole file is fetched again on retry.
type Fetcher struct {
	client *thinkific.Client
}

// NewFetcher creates a Fetcher over an authenticated client.
func NewFetcher(client *thinkific.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Download streams rawURL into destPath, writing through a temp file and
// renaming on completion.
func (f *Fetcher) Download(ctx context.Context, rawURL, destPath string) error {
	if err := util.EnsureDir(filepath.Dir(destPath)); err != nil {
		return fmt.Errorf("creating dir for %s: %w", destPath, err)
	}

	rc, err := f.client.Fetch(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer rc.Close()

	tmp := destPath + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, destPath); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// DownloadTo downloads rawURL into dir under a name derived from the URL.
// Returns the final file path.
func (f *Fetcher) DownloadTo(ctx context.Context, rawURL, dir string) (string, error) {
	dest := filepath.Join(dir, FilenameFromURL(rawURL))
	if err := f.Download(ctx, rawURL, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// FilenameFromURL derives a sanitized local filename from a URL's path,
// ignoring query parameters. Falls back to "file" for opaque URLs.
func FilenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "file"
	}
	name, err := url.PathUnescape(path.Base(u.Path))
	if err != nil {
		name = path.Base(u.Path)
	}
	name = util.SanitizeName(name)
	if name == "untitled" {
		return "file"
	}
	return name
}
