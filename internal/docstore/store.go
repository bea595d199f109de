// Package docstore is the document persistence boundary: JSON documents
// addressed by collection name plus key. Anything that can read, replace,
// merge and conditionally create a single document satisfies it.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get and Merge when no document exists at
// (collection, key).
var ErrNotFound = errors.New("document not found")

type Store interface {
	// Get unmarshals the document at (collection, key) into out.
	Get(ctx context.Context, collection, key string, out interface{}) error
	// Put fully replaces the document at (collection, key), creating it if
	// absent.
	Put(ctx context.Context, collection, key string, doc interface{}) error
	// Merge sets the given top-level fields on an existing document, leaving
	// other fields untouched.
	Merge(ctx context.Context, collection, key string, fields map[string]interface{}) error
	// Create writes the document only if none exists yet. It reports whether
	// this call won the slot; false with a nil error means another writer got
	// there first.
	Create(ctx context.Context, collection, key string, doc interface{}) (bool, error)
}
