package storage

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

// File is a Store that keeps one file per key under a directory. Keys are
// used as file names directly; callers use fixed keys ("gt_trips",
// "gt_user"), never user input.
type File struct {
	dir string
	log *slog.Logger
}

// NewFile returns a file-backed store rooted at dir. The directory is
// created on first use; a directory that cannot be created surfaces later
// as swallowed per-operation failures, keeping construction infallible.
func NewFile(dir string, log *slog.Logger) *File {
	return &File{dir: dir, log: log}
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key)
}

func (f *File) Get(key string) (string, bool) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warn("storage get failed", "key", key, "error", err)
		}
		return "", false
	}
	return string(b), true
}

func (f *File) Set(key, value string) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		f.log.Warn("storage set failed", "key", key, "error", err)
		return
	}
	if err := os.WriteFile(f.path(key), []byte(value), 0o600); err != nil {
		f.log.Warn("storage set failed", "key", key, "error", err)
	}
}

func (f *File) Remove(key string) {
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		f.log.Warn("storage remove failed", "key", key, "error", err)
	}
}

var _ Store = (*File)(nil)
