package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

type memStore struct {
	mu   sync.RWMutex
	docs map[string]map[string][]byte // collection -> key -> raw doc
}

// NewMemStore returns an in-memory Store for tests and offline runs.
func NewMemStore() Store {
	return &memStore{docs: map[string]map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, collection, key string, out interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.docs[collection][key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (m *memStore) Put(_ context.Context, collection, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.docs[collection] == nil {
		m.docs[collection] = map[string][]byte{}
	}
	m.docs[collection][key] = raw
	return nil
}

func (m *memStore) Merge(_ context.Context, collection, key string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.docs[collection][key]
	if !ok {
		return ErrNotFound
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	for k, v := range fields {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs[collection][key] = merged
	return nil
}

func (m *memStore) Create(_ context.Context, collection, key string, doc interface{}) (bool, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.docs[collection][key]; exists {
		return false, nil
	}
	if m.docs[collection] == nil {
		m.docs[collection] = map[string][]byte{}
	}
	m.docs[collection][key] = raw
	return true, nil
}
