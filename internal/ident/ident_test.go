package ident

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewID_UniqueAcrossRapidCalls(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := NewID()
		if id == "" {
			t.Fatalf("empty id")
		}
		if seen[id] {
			t.Fatalf("collision after %d ids: %s", i, id)
		}
		seen[id] = true
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.September, 3, 17, 45, 0, 0, time.UTC)
	got := FormatDate(d)
	if got != "3 September 2024, 05:45 PM" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeImage_DataURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "art.png")
	// Minimal PNG signature so content sniffing sees an image.
	payload := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 32)...)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := EncodeImage(path)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %.40s", got)
	}
}

func TestEncodeImage_ReadFailure(t *testing.T) {
	_, err := EncodeImage(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
