package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
)

// FileSource reads the historical dataset from a CSV file on every call.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the configured file path.
func (s *FileSource) Path() string {
	return s.path
}

// LoadTable opens, parses and cleans the CSV.
func (s *FileSource) LoadTable(_ context.Context) (Table, error) {
	return LoadFile(s.path)
}

// CheckReadiness reports whether the file can be opened.
func (s *FileSource) CheckReadiness(_ context.Context) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("historical dataset: %w", err)
	}
	return f.Close()
}

// LoadFile loads and cleans the CSV at path.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("%w: open %s: %v", domain.ErrDataLoad, path, err)
	}
	defer f.Close()

	return Load(f)
}
