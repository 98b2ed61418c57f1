package catalog

import (
	"strings"

	"phoenixarts/internal/kv"
	"phoenixarts/internal/model"
)

// Users returns the full collection in stored order.
func (c *Catalog) Users() ([]model.User, error) {
	users, err := kv.LoadJSON(c.store, KeyUsers, []model.User(nil))
	if err != nil {
		return nil, c.countDecode(err)
	}
	return users, nil
}

func (c *Catalog) SaveUsers(users []model.User) error {
	return kv.SaveJSON(c.store, KeyUsers, users)
}

// AppendUser adds a user to the end of the collection. Users are
// append-only: there is no update or delete path.
func (c *Catalog) AppendUser(u model.User) error {
	users, err := c.Users()
	if err != nil {
		return err
	}
	return c.SaveUsers(append(users, u))
}

func (c *Catalog) FindUserByUsername(username string) (model.User, bool, error) {
	users, err := c.Users()
	if err != nil {
		return model.User{}, false, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

// SearchUsers matches a case-insensitive substring against name or username.
// An empty term returns the whole collection.
func (c *Catalog) SearchUsers(term string) ([]model.User, error) {
	users, err := c.Users()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return users, nil
	}
	needle := strings.ToLower(term)
	var out []model.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Username), needle) {
			out = append(out, u)
		}
	}
	return out, nil
}
