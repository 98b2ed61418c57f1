package catalog

import (
	"phoenixarts/internal/kv"
	"phoenixarts/internal/model"
)

// CurrentUser returns the persisted session user, or nil when logged out
// (absent key).
func (c *Catalog) CurrentUser() (*model.User, error) {
	u, err := kv.LoadJSON[*model.User](c.store, KeyCurrentUser, nil)
	if err != nil {
		return nil, c.countDecode(err)
	}
	return u, nil
}

// SetCurrentUser persists the session user; nil clears the key.
func (c *Catalog) SetCurrentUser(u *model.User) error {
	if u == nil {
		return c.store.Delete(KeyCurrentUser)
	}
	return kv.SaveJSON(c.store, KeyCurrentUser, u)
}

// IsAdmin reads the admin flag. The stored value is the literal text "true"
// or "false", not a JSON boolean; anything but "true" (including an absent
// key) means false.
func (c *Catalog) IsAdmin() (bool, error) {
	raw, ok, err := c.store.Get(KeyIsAdmin)
	if err != nil {
		return false, err
	}
	return ok && string(raw) == "true", nil
}

// SetAdmin writes the admin flag in its literal string form.
func (c *Catalog) SetAdmin(on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	return c.store.Set(KeyIsAdmin, []byte(v))
}
