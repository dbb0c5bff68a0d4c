package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/formalgeo/problembank/internal/models"
)

// Store persists one pretty-printed JSON file per problem under its base
// directory. The filesystem is the only source of truth; nothing is cached
// between requests.
type Store struct {
	basePath string
	mu       sync.RWMutex
}

// NewStore creates the base directory if needed and returns a store rooted
// there.
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create problems directory: %w", err)
	}

	return &Store{basePath: basePath}, nil
}

func (s *Store) filePath(id int) string {
	return filepath.Join(s.basePath, fmt.Sprintf("problem_%d.json", id))
}

// Get returns the stored document for id verbatim, or a default-shell
// document when no file exists yet. The shell is never written to disk.
func (s *Store) Get(ctx context.Context, id int) (json.RawMessage, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		s.mu.RLock()
		defer s.mu.RUnlock()

		data, err := os.ReadFile(s.filePath(id))
		if os.IsNotExist(err) {
			return json.Marshal(models.DefaultProblem(id))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read problem %d: %w", id, err)
		}

		if !json.Valid(data) {
			return nil, fmt.Errorf("stored problem %d is not valid JSON", id)
		}

		return data, nil
	}
}

// Put replaces the stored document for id with doc, re-indented for human
// readability. Key order and number formatting in doc are preserved.
func (s *Store) Put(ctx context.Context, id int, doc json.RawMessage) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		s.mu.Lock()
		defer s.mu.Unlock()

		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			return fmt.Errorf("failed to format problem %d: %w", id, err)
		}

		if err := os.WriteFile(s.filePath(id), buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write problem file: %w", err)
		}

		return nil
	}
}
