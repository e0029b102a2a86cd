package static

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"os"
	"path"
)

// Dir serves files below a local directory.
type Dir struct {
	root string
	fsys fs.FS
}

// NewDir creates a Dir rooted at root. The directory does not have to exist
// yet; the client bundle is often built after the server starts.
func NewDir(root string) *Dir {
	return &Dir{root: root, fsys: os.DirFS(root)}
}

// Root returns the directory being served.
func (d *Dir) Root() string {
	return d.root
}

// Open implements Source.
func (d *Dir) Open(_ context.Context, name string) (*File, error) {
	f, err := d.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}

	return &File{
		Name:        name,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: mime.TypeByExtension(path.Ext(name)),
		Content:     f,
	}, nil
}
