package catalog

import (
	"testing"

	"phoenixarts/internal/kv"
	"phoenixarts/internal/model"
)

func TestCurrentUser_SetAndClear(t *testing.T) {
	c := newTestCatalog(t)

	u, err := c.CurrentUser()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if u != nil {
		t.Fatalf("want logged out, got %+v", u)
	}

	if err := c.SetCurrentUser(&model.User{ID: "u1", Username: "asha"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	u, err = c.CurrentUser()
	if err != nil || u == nil || u.Username != "asha" {
		t.Fatalf("current after set: %+v err=%v", u, err)
	}

	// nil clears the key entirely.
	if err := c.SetCurrentUser(nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	u, _ = c.CurrentUser()
	if u != nil {
		t.Fatalf("still logged in: %+v", u)
	}
}

func TestIsAdmin_LiteralStringFormat(t *testing.T) {
	store := kv.NewMemory()
	c := New(store, nil, Options{})

	// Absent key means false.
	admin, err := c.IsAdmin()
	if err != nil || admin {
		t.Fatalf("absent: admin=%v err=%v", admin, err)
	}

	if err := c.SetAdmin(true); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, _ := store.Get(KeyIsAdmin)
	if !ok || string(raw) != "true" {
		t.Fatalf("stored form must be the literal text true, got %q", raw)
	}
	if admin, _ := c.IsAdmin(); !admin {
		t.Fatalf("want admin")
	}

	if err := c.SetAdmin(false); err != nil {
		t.Fatalf("unset: %v", err)
	}
	raw, _, _ = store.Get(KeyIsAdmin)
	if string(raw) != "false" {
		t.Fatalf("stored form must be the literal text false, got %q", raw)
	}

	// Only the exact text "true" counts.
	_ = store.Set(KeyIsAdmin, []byte("TRUE"))
	if admin, _ := c.IsAdmin(); admin {
		t.Fatalf("non-canonical value must read as false")
	}
}

func TestQRCodes_DefaultAndReplace(t *testing.T) {
	c := newTestCatalog(t)

	qr, err := c.QRCodes()
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	if qr.Portrait != nil || qr.Landscape != nil {
		t.Fatalf("default must be two empty slots: %+v", qr)
	}

	img := "data:image/png;base64,aGk="
	qr.Portrait = &img
	if err := c.SaveQRCodes(qr); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := c.QRCodes()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Portrait == nil || *got.Portrait != img || got.Landscape != nil {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// Whole-record replace: saving without the portrait drops it.
	if err := c.SaveQRCodes(model.QRAssets{}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, _ = c.QRCodes()
	if got.Portrait != nil {
		t.Fatalf("replace kept the old slot: %+v", got)
	}
}

func TestStats_Counts(t *testing.T) {
	c := newTestCatalog(t)
	if err := c.AppendUser(model.User{ID: "u1", Username: "asha"}); err != nil {
		t.Fatalf("user: %v", err)
	}
	if _, err := c.CreateOrder(model.Order{ID: "o1"}); err != nil {
		t.Fatalf("order: %v", err)
	}
	if _, err := c.CreateOrder(model.Order{ID: "o2"}); err != nil {
		t.Fatalf("order2: %v", err)
	}
	if err := c.UpsertGalleryItem(model.GalleryItem{ID: "g1"}); err != nil {
		t.Fatalf("gallery: %v", err)
	}

	s, err := c.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if s.Users != 1 || s.Orders != 2 || s.GalleryItems != 1 || s.QRConfigured {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
