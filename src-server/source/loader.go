package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"naptar/src-server/data"
)

// Returned (wrapped) when a table does not exist at its location
var ErrNotFound = errors.New("source not found")

// Reads the raw bytes behind a source URL
type Loader interface {
	Load(ctx context.Context, url string) ([]byte, error)
}

// Resolves a source URL by scheme:
//   - http(s)://... is fetched with the HTTP client
//   - file://... is read from disk
//   - anything else is looked up in the embedded table FS first, with any
//     leading "/" or "/data/" dropped, so "/data/namedays.json" and
//     "namedays.json" name the same table. Absolute paths missing from the
//     embedded FS are read from disk.
type DefaultLoader struct {
	client *http.Client
	embed  fs.FS
}

func NewLoader(timeout time.Duration) *DefaultLoader {
	return &DefaultLoader{
		client: &http.Client{Timeout: timeout},
		embed:  data.FS,
	}
}

// Replace the embedded FS, mostly for tests
func (l *DefaultLoader) WithFS(fsys fs.FS) *DefaultLoader {
	l.embed = fsys
	return l
}

func (l *DefaultLoader) Load(ctx context.Context, rawURL string) ([]byte, error) {
	switch {
	case strings.HasPrefix(rawURL, "http://"), strings.HasPrefix(rawURL, "https://"):
		return getBody(ctx, l.client, rawURL)
	case strings.HasPrefix(rawURL, "file://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("can't parse URL %q: %w", rawURL, err)
		}
		return readFile(u.Path)
	default:
		b, err := l.readEmbedded(rawURL)
		if errors.Is(err, ErrNotFound) && filepath.IsAbs(rawURL) {
			return readFile(rawURL)
		}
		return b, err
	}
}

func (l *DefaultLoader) readEmbedded(rawURL string) ([]byte, error) {
	name := strings.TrimPrefix(rawURL, "/")
	name = strings.TrimPrefix(name, "data/")
	b, err := fs.ReadFile(l.embed, name)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rawURL)
	}
	return b, err
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return b, err
}

// GET the URL and return the body of a 2xx response
func getBody(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("can't create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rawURL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("failed to fetch %s: %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't read response body: %w", err)
	}
	return body, nil
}
