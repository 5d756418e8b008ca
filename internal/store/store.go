package store

import (
	"github.com/edututor-ai/backend/internal/classify"
)

// Store is the durable container of the three entity collections. Records
// are append-only and untyped; callers reconstruct per-kind sets from the
// flattened read by re-applying shape checks.
type Store interface {
	// GetAll returns every record from all collections concatenated in
	// stored order: accounts, then quiz results, then encouragements.
	GetAll() ([]map[string]any, error)

	// Append adds the record to the collection named by kind and persists
	// the entire state. A failed persist propagates to the caller.
	Append(kind classify.Kind, record map[string]any) error
}
