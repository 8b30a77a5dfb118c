package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

// fileStaging is the directory-backed [StagingArea]. Every entry is one
// file; its modification time is the file's mtime.
type fileStaging struct {
	dir    string
	logger *logger.Logger
}

// NewFileStaging creates dir if needed and returns a [StagingArea] storing
// entries as files inside it.
func NewFileStaging(dir string, log *logger.Logger) (StagingArea, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).Str("func", "NewFileStaging").Str("dir", dir).Msg("error creating staging directory")
		return nil, fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	log.Debug().Str("func", "NewFileStaging").Str("dir", dir).Msg("file staging area ready")
	return &fileStaging{dir: dir, logger: log}, nil
}

func (s *fileStaging) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidStagingName, name)
	}

	return filepath.Join(s.dir, name), nil
}

// Write replaces the entry atomically via a temporary file and rename.
func (s *fileStaging) Write(ctx context.Context, name string, data []byte) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+name+"-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStagingIO, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrStagingIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	if err = os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	return nil
}

func (s *fileStaging) Read(ctx context.Context, name string) ([]byte, time.Time, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, time.Time{}, err
	}

	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, time.Time{}, ErrStagingEntryNotFound
		}
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, time.Time{}, ErrStagingEntryNotFound
		}
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	return data, info.ModTime(), nil
}

func (s *fileStaging) Remove(ctx context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err = os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	return nil
}

func (s *fileStaging) List(ctx context.Context, prefix string) ([]StagingEntry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStagingIO, err)
	}

	entries := make([]StagingEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasPrefix(de.Name(), prefix) || strings.HasPrefix(de.Name(), ".") {
			continue
		}

		info, infoErr := de.Info()
		if infoErr != nil {
			// removed concurrently
			continue
		}
		entries = append(entries, StagingEntry{Name: de.Name(), ModTime: info.ModTime()})
	}

	return entries, nil
}
