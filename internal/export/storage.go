package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Directory permissions for created artifact directories.
const dirPerm = 0o750

// ArtifactStore is the storage capability handed to the analysis pipeline.
// It owns a directory for uploads and export artifacts so the parser itself
// never touches process-wide state.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates the artifact directory if needed and returns the
// store.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("artifact directory cannot be empty")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("cannot create artifact directory %s: %w", dir, err)
	}
	return &ArtifactStore{dir: dir}, nil
}

// Dir returns the artifact directory.
func (s *ArtifactStore) Dir() string {
	return s.dir
}

// NewStem returns a unique filename stem. All artifacts of one analysis
// share the stem and differ only in extension.
func (s *ArtifactStore) NewStem() string {
	return uuid.NewString()
}

// Path resolves a stem and extension inside the store.
func (s *ArtifactStore) Path(stem, ext string) string {
	return filepath.Join(s.dir, stem+ext)
}

// SaveUpload persists an uploaded document under stem+ext and returns its
// path.
func (s *ArtifactStore) SaveUpload(stem, ext string, r io.Reader) (string, error) {
	path := s.Path(stem, ext)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("cannot write upload file: %w", err)
	}

	return path, nil
}
