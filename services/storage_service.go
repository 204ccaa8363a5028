// File: /services/storage_service.go
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxPictureSize caps profile picture uploads at 5 MB.
const MaxPictureSize = 5 << 20

var allowedPictureExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// PictureStore keeps profile pictures on the local filesystem under a
// single base folder, named by uuid so uploads never collide.
type PictureStore struct {
	baseDir string
}

func NewPictureStore(baseDir string) (*PictureStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &PictureStore{baseDir: baseDir}, nil
}

// ValidExtension reports whether the uploaded filename has an accepted
// image extension.
func (s *PictureStore) ValidExtension(filename string) bool {
	return allowedPictureExtensions[strings.ToLower(filepath.Ext(filename))]
}

// NewName returns a fresh stored filename preserving the upload's
// extension.
func (s *PictureStore) NewName(originalFilename string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(originalFilename))
}

// Path resolves a stored filename to its location on disk.
func (s *PictureStore) Path(name string) string {
	return filepath.Join(s.baseDir, filepath.Base(name))
}

// Remove deletes a stored picture. A missing file is not an error: the
// picture may already have been cleaned up, and the row no longer
// references it either way.
func (s *PictureStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
