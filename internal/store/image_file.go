package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

// fileImageStorage keeps images as plain files in one directory.
type fileImageStorage struct {
	dir    string
	logger *logger.Logger
}

func NewFileImageStorage(dir string, log *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image directory: %w", err)
	}
	log.Debug().Str("dir", dir).Msg("using file image storage")
	return &fileImageStorage{dir: dir, logger: log}, nil
}

// Put writes the file through a temporary file so that readers never see a
// partially written image.
func (s *fileImageStorage) Put(ctx context.Context, name string, r io.Reader, size int64) error {
	if err := ValidateImageName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("error creating temporary image file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing image file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing image file: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("error storing image file: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*fileImageStorage.Put").Str("name", name).Msg("image stored")
	return nil
}

func (s *fileImageStorage) Get(_ context.Context, name string) (io.ReadCloser, error) {
	if err := ValidateImageName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening image file: %w", err)
	}
	return f, nil
}

// Delete removes the file. A missing file is not an error.
func (s *fileImageStorage) Delete(_ context.Context, name string) error {
	if err := ValidateImageName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting image file: %w", err)
	}
	return nil
}
