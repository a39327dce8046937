package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrWriteFailed is matched by every error returned from the Save helpers.
var ErrWriteFailed = errors.New("write artifact")

// Save writes data to path, truncating any existing file. The file is
// closed on every path; nothing is retried or cleaned up on failure.
func Save(path, data string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w %s: %w", ErrWriteFailed, path, cerr)
		}
	}()

	if _, err := f.WriteString(data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

// SaveHeader writes the rendered header to path.
func (a *ClassArtifact) SaveHeader(path string) error {
	return Save(path, a.Header)
}

// SaveSource writes the rendered source to path.
func (a *ClassArtifact) SaveSource(path string) error {
	return Save(path, a.Source)
}

// SaveTo writes <class>.hpp and <class>.cpp into dir, which must exist.
func (a *ClassArtifact) SaveTo(dir string) (headerPath, sourcePath string, err error) {
	headerPath = filepath.Join(dir, a.ClassName+HeaderExt)
	sourcePath = filepath.Join(dir, a.ClassName+SourceExt)

	if err := a.SaveHeader(headerPath); err != nil {
		return "", "", err
	}
	if err := a.SaveSource(sourcePath); err != nil {
		return "", "", err
	}
	return headerPath, sourcePath, nil
}
