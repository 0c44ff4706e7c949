package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

// ImageExtensions lists the accepted food image file extensions.
var ImageExtensions = []string{".jpg", ".jpeg", ".png"}

// ImageContentType returns the MIME type of an image file name.
func ImageContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return "application/octet-stream"
}

// ValidateImageName rejects names with path components and names whose
// extension is not in [ImageExtensions].
func ValidateImageName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidImage, name)
	}
	if !slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(name))) {
		return fmt.Errorf("%w: extension of %q is not one of %s", ErrInvalidImage, name, strings.Join(ImageExtensions, ", "))
	}
	return nil
}

// sniffLen is how much of an upload is read to detect its real type.
const sniffLen = 3072

// SniffImage checks that the content of r is the image type promised by the
// extension of name. The returned reader still yields the whole content.
func SniffImage(r io.Reader, name string) (io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error reading image %q: %w", name, err)
	}
	head = head[:n]

	if detected := mimetype.Detect(head); !detected.Is(ImageContentType(name)) {
		return nil, fmt.Errorf("%w: %q contains %s", ErrInvalidImage, name, detected.String())
	}

	return io.MultiReader(bytes.NewReader(head), r), nil
}

// NewImageStorage selects the image backend configured in cfg.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	switch cfg.Backend {
	case config.ImageBackendS3:
		return NewMinioImageStorage(ctx, cfg.S3, log)
	case config.ImageBackendFile, "":
		return NewFileImageStorage(cfg.Dir, log)
	default:
		return nil, fmt.Errorf("unknown image backend %q", cfg.Backend)
	}
}
