package kv

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

// Pebble implements Store using PebbleDB.
type Pebble struct {
	db *pebble.DB
}

func NewPebble(dir string) (*Pebble, error) {
	d, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &Pebble{db: d}, nil
}

func (p *Pebble) Close() error { return p.db.Close() }

func (p *Pebble) Get(key string) ([]byte, bool, error) {
	v, closer, err := p.db.Get([]byte(key))
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	out := append([]byte(nil), v...)
	if err := closer.Close(); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (p *Pebble) Set(key string, value []byte) error {
	// Sync: a committed write must survive process restart (the page-reload
	// durability the collections rely on).
	return p.db.Set([]byte(key), value, pebble.Sync)
}

func (p *Pebble) Delete(key string) error {
	return p.db.Delete([]byte(key), pebble.Sync)
}

func (p *Pebble) Range(fn func(key string, value []byte) error) error {
	it, err := p.db.NewIter(nil)
	if err != nil {
		return err
	}
	defer it.Close()
	for it.First(); it.Valid(); it.Next() {
		k := append([]byte(nil), it.Key()...)
		v := append([]byte(nil), it.Value()...)
		if err := fn(string(k), v); err != nil {
			return err
		}
	}
	return it.Error()
}

// LoadAll replaces all keys with the provided dump.
func (p *Pebble) LoadAll(all map[string][]byte) error {
	var toDelete [][]byte
	it, err := p.db.NewIter(nil)
	if err != nil {
		return err
	}
	for it.First(); it.Valid(); it.Next() {
		toDelete = append(toDelete, append([]byte(nil), it.Key()...))
	}
	if err := it.Close(); err != nil {
		return err
	}
	wb := p.db.NewBatch()
	for _, k := range toDelete {
		if err := wb.Delete(k, nil); err != nil {
			return err
		}
	}
	for k, v := range all {
		if err := wb.Set([]byte(k), v, nil); err != nil {
			return err
		}
	}
	if err := wb.Commit(pebble.Sync); err != nil {
		return err
	}
	return wb.Close()
}
