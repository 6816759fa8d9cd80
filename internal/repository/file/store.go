package file

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

var fileID = regexp.MustCompile(`(\d+)`)

// Store persists one record file per product under a data folder. It
// implements domain.RecordStore. The filesystem is abstracted so tests
// run against an in-memory fs.
type Store struct {
	fs      afero.Fs
	dir     string
	pattern string
	logger  *logger.Logger
}

// NewStore creates a record store rooted at dir. The pattern embeds the
// product id into the file name, e.g. "product-%03d.txt".
func NewStore(fs afero.Fs, dir, pattern string, log *logger.Logger) *Store {
	return &Store{
		fs:      fs,
		dir:     dir,
		pattern: pattern,
		logger:  log,
	}
}

// LoadAll creates the data folder if absent, then decodes every record
// file in it. A corrupt or misnamed file is logged and skipped; it
// never aborts loading the rest of the catalog.
func (s *Store) LoadAll() ([]domain.Product, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data folder %s: %w", s.dir, err)
	}

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading data folder %s: %w", s.dir, err)
	}

	var products []domain.Product
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := idFromName(entry.Name())
		if !ok {
			s.logger.Warnf("Skipping file without embedded id: %s", entry.Name())
			continue
		}
		contents, err := afero.ReadFile(s.fs, filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Error("Failed to read record file "+entry.Name(), err)
			continue
		}
		product, err := Decode(id, string(contents))
		if err != nil {
			s.logger.Error("Skipping corrupt record file "+entry.Name(), err)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// MaxID scans record file names and returns the largest embedded id, or
// 0 when the folder is empty or absent.
func (s *Store) MaxID() (int, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading data folder %s: %w", s.dir, err)
	}
	max := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, ok := idFromName(entry.Name()); ok && id > max {
			max = id
		}
	}
	return max, nil
}

// Write renders the product record and persists it. An unchanged record
// is left untouched; otherwise the file is replaced through a temp file
// rename so readers never see a half-written record.
func (s *Store) Write(product domain.Product) error {
	path := s.path(product.ID)
	record := Encode(product)

	if current, err := afero.ReadFile(s.fs, path); err == nil && string(current) == record {
		return nil
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(record), 0o644); err != nil {
		return fmt.Errorf("writing record for product %d: %w", product.ID, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		if removeErr := s.fs.Remove(tmp); removeErr != nil {
			s.logger.Error("Failed to clean up temp record file "+tmp, removeErr)
		}
		return fmt.Errorf("replacing record for product %d: %w", product.ID, err)
	}
	return nil
}

// Delete removes the product's record file.
func (s *Store) Delete(id int) error {
	if err := s.fs.Remove(s.path(id)); err != nil {
		return fmt.Errorf("deleting record for product %d: %w", id, err)
	}
	return nil
}

func (s *Store) path(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf(s.pattern, id))
}

func idFromName(name string) (int, bool) {
	match := fileID.FindString(name)
	if match == "" {
		return 0, false
	}
	id, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return id, true
}
