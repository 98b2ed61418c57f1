package session

import (
	"testing"

	"phoenixarts/internal/catalog"
	"phoenixarts/internal/kv"
	"phoenixarts/internal/model"
)

// TestAuthorize_DecisionTable covers every page-class and flag-state
// combination.
func TestAuthorize_DecisionTable(t *testing.T) {
	cases := []struct {
		name     string
		admin    bool
		loggedIn bool
		page     PageClass
		want     Decision
	}{
		{"auth/none", false, false, PageAuth, Stay},
		{"auth/user", false, true, PageAuth, ToHome},
		{"auth/admin", true, false, PageAuth, ToAdmin},
		{"admin/none", false, false, PageAdmin, ToLogin},
		{"admin/user", false, true, PageAdmin, ToLogin},
		{"admin/admin", true, false, PageAdmin, Stay},
		{"regular/none", false, false, PageRegular, ToLogin},
		{"regular/user", false, true, PageRegular, Stay},
		{"regular/admin", true, false, PageRegular, ToLogin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := catalog.New(kv.NewMemory(), nil, catalog.Options{})
			m := NewManager(cat, testAdmin, nil)
			if tc.admin {
				if err := cat.SetAdmin(true); err != nil {
					t.Fatalf("set admin: %v", err)
				}
			}
			if tc.loggedIn {
				if err := cat.SetCurrentUser(&model.User{ID: "u1", Username: "a"}); err != nil {
					t.Fatalf("set user: %v", err)
				}
			}
			got, err := m.Authorize(tc.page)
			if err != nil {
				t.Fatalf("authorize: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

// Both flags set at once: the flows never leave the store this way, but the
// admin bit wins everywhere it is consulted first.
func TestAuthorize_BothFlagsSet(t *testing.T) {
	cat := catalog.New(kv.NewMemory(), nil, catalog.Options{})
	m := NewManager(cat, testAdmin, nil)
	if err := cat.SetAdmin(true); err != nil {
		t.Fatalf("set admin: %v", err)
	}
	if err := cat.SetCurrentUser(&model.User{ID: "u1"}); err != nil {
		t.Fatalf("set user: %v", err)
	}

	if d, _ := m.Authorize(PageAuth); d != ToAdmin {
		t.Fatalf("auth page: want admin redirect, got %s", d)
	}
	if d, _ := m.Authorize(PageAdmin); d != Stay {
		t.Fatalf("admin page: want stay, got %s", d)
	}
	if d, _ := m.Authorize(PageRegular); d != Stay {
		t.Fatalf("regular page: want stay, got %s", d)
	}
}
