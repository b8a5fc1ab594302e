package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"

	"github.com/drivemark/drivemark/internal/bookmarks"
)

// Snapshot is a serialized bookmark set sitting in a temporary file.
// Callers own the file and must release it with Close, which removes
// it from disk.
type Snapshot struct {
	Path  string
	Size  int64
	Count int
}

// Write serializes the bookmarks as a pretty-printed JSON array into a
// new temporary file. An empty (or nil) bookmark set produces "[]".
func Write(marks []bookmarks.Bookmark) (*Snapshot, error) {
	if marks == nil {
		marks = []bookmarks.Bookmark{}
	}

	data, err := json.MarshalIndent(marks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize bookmarks: %w", err)
	}

	file, err := os.CreateTemp("", "bookmark_backup_*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return nil, fmt.Errorf("failed to close snapshot file: %w", err)
	}

	return &Snapshot{
		Path:  file.Name(),
		Size:  int64(len(data)),
		Count: len(marks),
	}, nil
}

// Close removes the snapshot file from disk
func (s *Snapshot) Close() error {
	if s == nil || s.Path == "" {
		return nil
	}
	err := os.Remove(s.Path)
	s.Path = ""
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Open opens the snapshot file for reading
func (s *Snapshot) Open() (*os.File, error) {
	return os.Open(s.Path)
}

// Archive copies the snapshot into dir under a timestamped name derived
// from the backup name, and returns the written path.
func (s *Snapshot) Archive(dir, backupName string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json", slug.Make(backupName), time.Now().Format("20060102-150405"))
	dest := filepath.Join(dir, name)

	src, err := s.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create archive copy: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to write archive copy: %w", err)
	}

	return dest, nil
}

// IsValid is a cheap sanity check: the file is non-empty and its first
// non-whitespace byte is '[', i.e. it looks like a JSON array. It is
// not a full parse.
func IsValid(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buf := make([]byte, 512)
	for {
		n, err := file.Read(buf)
		for _, c := range buf[:n] {
			switch c {
			case ' ', '\t', '\r', '\n':
				continue
			case '[':
				return true
			default:
				return false
			}
		}
		if err != nil {
			return false
		}
	}
}
