// Package ident holds the identifier and formatting utilities shared by the
// collections and the shell.
package ident

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns an opaque id: millisecond timestamp in base36 plus a random
// tail. Callers never check for collisions, so the generator carries full
// responsibility for uniqueness across rapid successive calls.
func NewID() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 36)
	tail := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ms + tail[:12]
}

// FormatDate renders a long-form date and time for display only. Stored
// dates stay raw timestamps; nothing sorts or compares on this string.
func FormatDate(t time.Time) string {
	return t.Format("2 January 2006, 03:04 PM")
}

// EncodeImage reads a binary image file and returns it as a base64 data URL
// suitable for embedding directly in a JSON-encoded entity.
func EncodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
