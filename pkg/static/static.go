// Package static serves site files from a local directory or an S3 bucket.
package static

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned by Source.Open for missing files and directories.
var ErrNotFound = errors.New("static: file not found")

// File is an opened static file. Content is an io.ReadSeeker when the
// source supports range requests.
type File struct {
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
	Content     io.ReadCloser
}

// Close releases the content.
func (f *File) Close() error {
	if f.Content == nil {
		return nil
	}
	return f.Content.Close()
}

// Source opens static files by clean relative path ("favicon.ico",
// "pkg/chatapp.wasm").
type Source interface {
	Open(ctx context.Context, name string) (*File, error)
}

// CleanPath turns a request path into a relative file path. It rejects
// traversal, absolute paths, NUL bytes and backslashes.
func CleanPath(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return "", false
	}
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") {
		return "", false
	}
	// "//etc/passwd" leaves a leading slash after trimming one.
	if strings.HasPrefix(rel, "/") {
		return "", false
	}
	// Dot segments are rejected before cleaning so that "a/../b" does not
	// quietly become "b".
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}
	return clean, true
}

// isFingerprinted reports whether a file name carries a content hash, as in
// "app.a1b2c3d4.css".
func isFingerprinted(name string) bool {
	parts := strings.Split(path.Base(name), ".")
	if len(parts) < 3 {
		return false
	}
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
