// Package store reads and writes the ledger document as a single JSON file.
//
// Importing store sets decimal.MarshalJSONWithoutQuotes for the whole
// process, so ledger amounts are written as JSON numbers. Any other code in
// the same binary that marshals a decimal.Decimal gets numbers as well.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/roro-dev/roro/internal/model"
)

// DefaultFile is the ledger file name used when none is configured.
const DefaultFile = "roro_data.json"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Store reads and writes the ledger document at a single path.
type Store struct {
	path string
}

// New creates a Store for path.
func New(path string) *Store {
	return &Store{path: path}
}

// ResolvePath returns the ledger file path inside dir, creating dir if
// needed. An empty dir means the current working directory.
func ResolvePath(dir, file string) (string, error) {
	if file == "" {
		file = DefaultFile
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return filepath.Join(wd, file), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}
	return filepath.Join(dir, file), nil
}

// Path returns the file this Store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the ledger file. A missing file yields an error wrapping
// fs.ErrNotExist.
func (s *Store) Load() (*model.RawDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	var raw model.RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", s.path, err)
	}
	return &raw, nil
}

// Save overwrites the ledger file with doc. The write is not atomic.
func (s *Store) Save(doc *model.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// Encode serializes doc exactly as Save writes it.
func Encode(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return buf.Bytes(), nil
}
