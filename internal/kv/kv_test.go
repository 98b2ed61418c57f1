package kv

import (
	"errors"
	"testing"
)

func TestMemory_SetGetDelete(t *testing.T) {
	s := NewMemory()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := s.Set("k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("get: %q ok=%v err=%v", v, ok, err)
	}

	// Last write wins.
	if err := s.Set("k", []byte("v2")); err != nil {
		t.Fatalf("set2: %v", err)
	}
	v, _, _ = s.Get("k")
	if string(v) != "v2" {
		t.Fatalf("want v2, got %q", v)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatalf("key should be gone")
	}
	// Deleting again is a no-op.
	if err := s.Delete("k"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestMemory_RangeAndLoadAll(t *testing.T) {
	s := NewMemory()
	if err := s.LoadAll(map[string][]byte{"a": []byte("1"), "b": []byte("2")}); err != nil {
		t.Fatalf("loadall: %v", err)
	}
	seen := map[string]string{}
	if err := s.Range(func(key string, value []byte) error {
		seen[key] = string(value)
		return nil
	}); err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(seen) != 2 || seen["a"] != "1" || seen["b"] != "2" {
		t.Fatalf("unexpected contents: %v", seen)
	}

	// LoadAll replaces, not merges.
	if err := s.LoadAll(map[string][]byte{"c": []byte("3")}); err != nil {
		t.Fatalf("loadall2: %v", err)
	}
	if _, ok, _ := s.Get("a"); ok {
		t.Fatalf("old key survived LoadAll")
	}
	if v, ok, _ := s.Get("c"); !ok || string(v) != "3" {
		t.Fatalf("bad c: %q ok=%v", v, ok)
	}
}

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadJSON_MissingYieldsDefault(t *testing.T) {
	s := NewMemory()
	got, err := LoadJSON(s, "nope", []record(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatalf("want default, got %v", got)
	}

	// Empty value behaves like a missing key.
	if err := s.Set("empty", nil); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err = LoadJSON(s, "empty", []record(nil))
	if err != nil || got != nil {
		t.Fatalf("empty value: %v err=%v", got, err)
	}
}

func TestLoadJSON_RoundTrip(t *testing.T) {
	s := NewMemory()
	in := []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	if err := SaveJSON(s, "recs", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadJSON(s, "recs", []record(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip mismatch: %v", out)
	}
}

func TestLoadJSON_MalformedIsDecodeError(t *testing.T) {
	s := NewMemory()
	if err := s.Set("recs", []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}
	_, err := LoadJSON(s, "recs", []record(nil))
	if err == nil {
		t.Fatalf("expected error")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("want DecodeError, got %T: %v", err, err)
	}
	if de.Key != "recs" {
		t.Fatalf("bad key: %q", de.Key)
	}
}
