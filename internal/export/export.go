// Package export appends solved answers to a YAML file shared between runs.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/aoc/internal/filelock"
	"github.com/harrison/aoc/internal/models"
)

// Document is the on-disk layout of an export file.
type Document struct {
	Answers []models.Answer `yaml:"answers"`
}

// Read loads an export file. A missing file is an empty document.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse export file %s: %w", path, err)
	}
	return &doc, nil
}

// Append adds answer to the export file at path. Concurrent aoc processes
// exporting to the same file are serialized by a lock next to it, and the
// file is replaced atomically.
func Append(ctx context.Context, path string, answer models.Answer) error {
	return filelock.WithLock(ctx, path, func() error {
		doc, err := Read(path)
		if err != nil {
			return err
		}
		doc.Answers = append(doc.Answers, answer)

		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode export file: %w", err)
		}
		return filelock.AtomicWrite(path, data)
	})
}
