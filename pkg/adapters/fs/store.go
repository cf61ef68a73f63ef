package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ldlewis/simpleblog/pkg/core"
)

// Store implements core.Store on a single YAML file holding a flat sequence
// of article records.
type Store struct {
	path   string
	logger *slog.Logger

	// Serializes appends against each other and against whole-file loads, so
	// a reader in this process never observes a torn append. Nothing guards
	// against other processes touching the file.
	mu sync.Mutex
}

// NewStore creates a store backed by the YAML file at path. The file is not
// created or validated here; a missing file surfaces on first use.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// LoadAll reads and decodes the whole backing file, all-or-nothing.
func (s *Store) LoadAll(ctx context.Context) ([]core.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("article file %s: %w", s.path, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read article file: %w", err)
	}

	var articles []core.Article
	if err := yaml.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrParse, err)
	}
	return articles, nil
}

// Append encodes one record as a single-element YAML sequence and appends the
// bytes, keeping the file a well-formed sequence. The file must already
// exist. The record is not validated in any way.
func (s *Store) Append(ctx context.Context, a core.Article) error {
	data, err := yaml.Marshal([]core.Article{a})
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrSerialize, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open article file for append: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to append article: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close article file: %w", err)
	}

	s.logger.Debug("article appended", "id", a.ArticleID, "path", s.path)
	return nil
}
