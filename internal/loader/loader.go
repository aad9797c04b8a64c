// Package loader reads review files from disk.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/model"
)

// fileValidate checks the structural requirements of a decoded review file.
var fileValidate = validator.New()

// Load reads and validates a single review file.
func Load(path string) (*model.ReviewFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to read review file: %w", err)
	}

	file, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Decode parses a review file from r.
func Decode(r io.Reader) (*model.ReviewFile, error) {
	var file model.ReviewFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidReviewFile, err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Validate checks the required fields of a review file. It does not check
// that the review matches the game; that is the categorizer's job.
func Validate(file *model.ReviewFile) error {
	if err := fileValidate.Struct(file); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidReviewFile, err)
	}
	return nil
}

// Entry is one file loaded from a directory.
type Entry struct {
	File *model.ReviewFile
	Err  error
	Path string
}

// Name returns the file name without directory or extension.
func (e Entry) Name() string {
	return strings.TrimSuffix(filepath.Base(e.Path), filepath.Ext(e.Path))
}

// Paths lists the review files in dir, sorted by name.
func Paths(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list review files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", common.ErrNoReviewFiles, dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDir loads every review file in dir. Files that fail to load are
// returned with Err set rather than aborting the whole directory.
func LoadDir(dir string) ([]Entry, error) {
	paths, err := Paths(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		file, loadErr := Load(path)
		entries = append(entries, Entry{Path: path, File: file, Err: loadErr})
	}

	return entries, nil
}
