package kv

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Store abstracts the persistent string-keyed store underlying all
// collections. Values are opaque bytes; collections layer JSON on top.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Range(fn func(key string, value []byte) error) error
	// LoadAll replaces the store contents with the provided dump (used by restore).
	LoadAll(all map[string][]byte) error
	Close() error
}

// DecodeError reports a stored value that is present but not valid JSON of
// the expected shape. A missing or empty value is not a DecodeError.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %q: %v", e.Key, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// LoadJSON decodes the value at key into T. Missing or empty values yield
// def; any other malformed value surfaces as *DecodeError.
func LoadJSON[T any](s Store, key string, def T) (T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return def, fmt.Errorf("get %q: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, &DecodeError{Key: key, Err: err}
	}
	return v, nil
}

func SaveJSON[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(key, raw)
}

// Memory is a simple thread-safe map store, for tests and ephemeral runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Range(fn func(key string, value []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, v := range m.data {
		if err := fn(k, append([]byte(nil), v...)); err != nil {
			return fmt.Errorf("range callback failed: %w", err)
		}
	}
	return nil
}

func (m *Memory) LoadAll(all map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte, len(all))
	for k, v := range all {
		m.data[k] = append([]byte(nil), v...)
	}
	return nil
}

func (m *Memory) Close() error { return nil }
