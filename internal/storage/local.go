package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

func (l *Local) Save(ctx context.Context, name string, data []byte) error {
	_ = ctx

	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return err
	}

	dstPath := filepath.Join(l.BaseDir, filepath.Base(name))

	f, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	// The caller advertises a URL for this object as soon as Save returns,
	// so the bytes must be flushed to disk, not sitting in the page cache.
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (l *Local) Load(ctx context.Context, name string) ([]byte, error) {
	_ = ctx

	data, err := os.ReadFile(filepath.Join(l.BaseDir, filepath.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
