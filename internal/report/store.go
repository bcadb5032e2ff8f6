package report

import (
	"encoding/json"
	"fmt"
	"os"

	"reconx/internal/domain"
)

// DefaultPath is where scan reports land when --out is not given.
const DefaultPath = "recon_result.json"

// FileStore writes reports to the local filesystem.
type FileStore struct{}

func NewFileStore() *FileStore { return &FileStore{} }

// Write marshals r and writes it atomically to path.
func (s *FileStore) Write(path string, r *domain.Report) error {
	if path == "" {
		path = DefaultPath
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Read loads a previously written report.
func (s *FileStore) Read(path string) (*domain.Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r domain.Report
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}
	return &r, nil
}

var _ domain.ReportStore = (*FileStore)(nil)
