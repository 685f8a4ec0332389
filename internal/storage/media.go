package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

// MediaStore keeps uploaded flashcard images in a flat directory,
// addressed by filename.
type MediaStore struct {
	dir string
}

func NewMediaStore(dir string) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, models.NewStorageError("create media directory", err)
	}
	return &MediaStore{dir: dir}, nil
}

func (s *MediaStore) Dir() string {
	return s.dir
}

// Filename generates a collision-resistant name for a new upload,
// preserving the original extension.
func (s *MediaStore) Filename(ext string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], ext)
}

func (s *MediaStore) Save(name string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return models.NewStorageError("create image file", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return models.NewStorageError("write image file", err)
	}
	return nil
}

// Remove deletes a stored file. A file that is already gone is not an
// error; cleanup is best-effort.
func (s *MediaStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return models.NewStorageError("remove image file", err)
	}
	return nil
}

func (s *MediaStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(name)))
	return err == nil
}
