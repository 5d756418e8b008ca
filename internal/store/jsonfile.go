package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/edututor-ai/backend/internal/classify"
)

// document is the persisted shape: one JSON file holding the three
// collections. Every append rewrites the whole document.
type document struct {
	Users          []map[string]any `json:"users"`
	Quizzes        []map[string]any `json:"quizzes"`
	Encouragements []map[string]any `json:"encouragements"`
}

func emptyDocument() *document {
	return &document{
		Users:          []map[string]any{},
		Quizzes:        []map[string]any{},
		Encouragements: []map[string]any{},
	}
}

// JSONFileStore persists all records in a single JSON document. The mutex
// serializes every load-mutate-persist cycle and every read, so concurrent
// appends cannot lose records to a last-writer-wins document rewrite.
type JSONFileStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONFile opens the store at path. If no document exists yet, an empty
// state is initialized and persisted immediately.
func NewJSONFile(path string) (*JSONFileStore, error) {
	s := &JSONFileStore{path: path}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.save(emptyDocument()); err != nil {
			return nil, fmt.Errorf("initialize store: %w", err)
		}
	}
	return s, nil
}

func (s *JSONFileStore) GetAll() ([]map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	combined := make([]map[string]any, 0, len(doc.Users)+len(doc.Quizzes)+len(doc.Encouragements))
	combined = append(combined, doc.Users...)
	combined = append(combined, doc.Quizzes...)
	combined = append(combined, doc.Encouragements...)
	return combined, nil
}

func (s *JSONFileStore) Append(kind classify.Kind, record map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	switch kind {
	case classify.KindQuizResult:
		doc.Quizzes = append(doc.Quizzes, record)
	case classify.KindEncouragement:
		doc.Encouragements = append(doc.Encouragements, record)
	default:
		doc.Users = append(doc.Users, record)
	}

	return s.save(doc)
}

// load reads the document. A missing file re-initializes and persists the
// empty state; an unparseable file silently degrades to the empty state in
// memory and is left on disk until the next append overwrites it.
func (s *JSONFileStore) load() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := emptyDocument()
		if err := s.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	doc := emptyDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return emptyDocument(), nil
	}
	// Null collections from a hand-edited document behave as empty ones.
	if doc.Users == nil {
		doc.Users = []map[string]any{}
	}
	if doc.Quizzes == nil {
		doc.Quizzes = []map[string]any{}
	}
	if doc.Encouragements == nil {
		doc.Encouragements = []map[string]any{}
	}
	return doc, nil
}

// save rewrites the whole document atomically: write to a temp file in the
// same directory, then rename over the target. Readers never observe a
// partially written document.
func (s *JSONFileStore) save(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
