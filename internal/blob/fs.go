package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FS stores objects as files in a single directory.
type FS struct {
	dir string
}

// NewFS creates the directory if needed.
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir %s: %w", dir, err)
	}
	return &FS{dir: dir}, nil
}

func (f *FS) Save(_ context.Context, name, _ string, r io.Reader) error {
	dst, err := os.Create(f.path(name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return dst.Close()
}

func (f *FS) Open(_ context.Context, name string) (io.ReadCloser, error) {
	file, err := os.Open(f.path(name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return file, nil
}

// path flattens the name so uploads cannot escape the content area.
func (f *FS) path(name string) string {
	return filepath.Join(f.dir, filepath.Base(name))
}
