package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSink writes documents as indented JSON files.
//
// When the path names an existing directory (or ends in a separator) each
// document is written to <dir>/<id>.json; otherwise the path is the file.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink creates a file sink for path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Name() string { return "file" }

// Path returns the file a document with the given ID is written to.
func (s *FileSink) Path(id string) string {
	if s.path == "" {
		return id + ".json"
	}
	if info, err := os.Stat(s.path); err == nil && info.IsDir() {
		return filepath.Join(s.path, id+".json")
	}
	if os.IsPathSeparator(s.path[len(s.path)-1]) {
		return filepath.Join(s.path, id+".json")
	}
	return s.path
}

func (s *FileSink) Publish(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	path := s.Path(doc.ID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (s *FileSink) Close(context.Context) error { return nil }
