package changelog

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriter_Append(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFileWriter(dir, "store.jsonl")
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}

	e1 := Entry{Key: "users", Op: OpSet, Value: json.RawMessage(`[]`), TS: 1}
	e2 := Entry{Key: "currentUser", Op: OpDelete, TS: 2}
	if err := w.Append(e1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := w.Append(e2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "store.jsonl"))
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	var got []Entry
	for s.Scan() {
		var e Entry
		if err := json.Unmarshal(s.Bytes(), &e); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		got = append(got, e)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 lines, got %d", len(got))
	}
	if got[0].Key != "users" || got[0].Op != OpSet || string(got[0].Value) != `[]` {
		t.Fatalf("bad first entry: %+v", got[0])
	}
	if got[1].Key != "currentUser" || got[1].Op != OpDelete || got[1].Value != nil {
		t.Fatalf("bad second entry: %+v", got[1])
	}
}

type recordingWriter struct {
	entries []Entry
	fail    bool
}

func (r *recordingWriter) Append(e Entry) error {
	if r.fail {
		return errors.New("fail")
	}
	r.entries = append(r.entries, e)
	return nil
}

func TestMultiWriter_FansOut(t *testing.T) {
	a, b := &recordingWriter{}, &recordingWriter{}
	mw := NewMultiWriter(a, b)
	if err := mw.Append(Entry{Key: "k", Op: OpSet, TS: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(a.entries) != 1 || len(b.entries) != 1 {
		t.Fatalf("fan-out missed a writer: %d/%d", len(a.entries), len(b.entries))
	}
}

func TestMultiWriter_StopsOnFirstError(t *testing.T) {
	a := &recordingWriter{fail: true}
	b := &recordingWriter{}
	mw := NewMultiWriter(a, b)
	if err := mw.Append(Entry{Key: "k", Op: OpSet}); err == nil {
		t.Fatalf("expected error")
	}
	if len(b.entries) != 0 {
		t.Fatalf("later writer ran after failure")
	}
}
