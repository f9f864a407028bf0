package offline

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"
)

// Resource is a fetched asset body.
type Resource struct {
	ContentType string
	Body        []byte
}

// Origin is where assets come from when the cache cannot answer.
type Origin interface {
	Fetch(ctx context.Context, urlPath string) (Resource, error)
}

// FSOrigin serves assets from a file system, mapping "/" to the index page.
type FSOrigin struct {
	FS    fs.FS
	Index string
}

// Fetch reads urlPath from the file system.
func (o FSOrigin) Fetch(_ context.Context, urlPath string) (Resource, error) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = strings.TrimPrefix(o.Index, "/")
		if name == "" {
			name = "index.html"
		}
	}

	body, err := fs.ReadFile(o.FS, name)
	if err != nil {
		return Resource{}, fmt.Errorf("offline: origin %s: %w", urlPath, err)
	}
	return Resource{ContentType: contentType(name, body), Body: body}, nil
}

// HTTPOrigin fetches assets from a remote base URL, bypassing HTTP caches.
type HTTPOrigin struct {
	BaseURL string
	Client  *http.Client
}

// Fetch requests BaseURL+urlPath.
func (o HTTPOrigin) Fetch(ctx context.Context, urlPath string) (Resource, error) {
	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(o.BaseURL, "/")+urlPath, nil)
	if err != nil {
		return Resource{}, fmt.Errorf("offline: origin %s: %w", urlPath, err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return Resource{}, fmt.Errorf("offline: origin %s: %w", urlPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Resource{}, fmt.Errorf("offline: origin %s: status %d", urlPath, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Resource{}, fmt.Errorf("offline: origin %s: %w", urlPath, err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = contentType(urlPath, body)
	}
	return Resource{ContentType: ct, Body: body}, nil
}

func contentType(name string, body []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(body)
}
