// Package content supplies the short texts shown in hover labels.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
)

var ErrNotFound = errors.New("content: not found")

// Source fetches the raw label fragment for an object id.
type Source interface {
	Fetch(ctx context.Context, id string) (string, error)
}

// Canned serves fixed strings.
type Canned map[string]string

func (c Canned) Fetch(_ context.Context, id string) (string, error) {
	if s, ok := c[id]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FSSource reads <Dir>/<id>.html from a filesystem.
type FSSource struct {
	FS  fs.FS
	Dir string
}

func (s FSSource) Fetch(_ context.Context, id string) (string, error) {
	name := path.Join(s.Dir, id+".html")
	data, err := fs.ReadFile(s.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("content: read %s: %w", name, err)
	}
	return string(data), nil
}

// HTTPSource fetches <BaseURL>/<id>.html.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

const maxFragmentBytes = 64 << 10

func (s HTTPSource) Fetch(ctx context.Context, id string) (string, error) {
	u, err := url.JoinPath(s.BaseURL, url.PathEscape(id)+".html")
	if err != nil {
		return "", fmt.Errorf("content: url for %s: %w", id, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("content: request %s: %w", u, err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("content: get %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", ErrNotFound, u)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("content: get %s: status %d", u, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFragmentBytes))
	if err != nil {
		return "", fmt.Errorf("content: read %s: %w", u, err)
	}
	return string(data), nil
}

// Chain tries each source in order until one answers.
type Chain []Source

func (c Chain) Fetch(ctx context.Context, id string) (string, error) {
	if len(c) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var errs []error
	for _, s := range c {
		out, err := s.Fetch(ctx, id)
		if err == nil {
			return out, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}
