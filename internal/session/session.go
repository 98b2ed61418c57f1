// Package session owns the pair of persisted flags that gate every page:
// the current user and the admin bit. Nothing else reads or writes them.
package session

import (
	"errors"
	"time"

	"phoenixarts/internal/catalog"
	"phoenixarts/internal/ident"
	"phoenixarts/internal/metrics"
	"phoenixarts/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

const minPasswordLen = 6

// AdminCreds are the configured admin credentials, checked by plain
// equality. No hashing, no rate limiting, no lockout.
type AdminCreds struct {
	Username string
	Password string
}

// Manager is the only mutation path for session state. It holds no flags in
// memory: every read goes back to the store, so each call sees the latest
// committed value.
type Manager struct {
	cat   *catalog.Catalog
	admin AdminCreds
	mreg  *metrics.Registry
}

// NewManager builds the session gate. mreg may be nil.
func NewManager(cat *catalog.Catalog, admin AdminCreds, mreg *metrics.Registry) *Manager {
	return &Manager{cat: cat, admin: admin, mreg: mreg}
}

func (m *Manager) Current() (*model.User, error) { return m.cat.CurrentUser() }

func (m *Manager) LoggedIn() (bool, error) {
	u, err := m.cat.CurrentUser()
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (m *Manager) Admin() (bool, error) { return m.cat.IsAdmin() }

type SignupParams struct {
	Name     string
	Gender   string
	Age      int
	Username string
	Password string
}

// Signup creates and appends a new user. It does not log the user in; the
// shell sends them to the login page afterwards. The username check and the
// insert are not atomic, which is fine single-threaded.
func (m *Manager) Signup(p SignupParams) (model.User, error) {
	if len(p.Password) < minPasswordLen {
		return model.User{}, ErrPasswordTooShort
	}
	_, taken, err := m.cat.FindUserByUsername(p.Username)
	if err != nil {
		return model.User{}, err
	}
	if taken {
		return model.User{}, ErrUsernameTaken
	}
	u := model.User{
		ID:         ident.NewID(),
		Name:       p.Name,
		Gender:     p.Gender,
		Age:        p.Age,
		Username:   p.Username,
		Password:   p.Password,
		SignupDate: time.Now().UTC(),
	}
	if err := m.cat.AppendUser(u); err != nil {
		return model.User{}, err
	}
	if m.mreg != nil {
		m.mreg.Signups.Inc()
	}
	return u, nil
}

// Login matches username and password exactly against the stored users. On
// a mismatch the current user is left untouched.
func (m *Manager) Login(username, password string) (model.User, error) {
	users, err := m.cat.Users()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			if err := m.cat.SetCurrentUser(&u); err != nil {
				return model.User{}, err
			}
			if m.mreg != nil {
				m.mreg.LoginSuccess.Inc()
			}
			return u, nil
		}
	}
	if m.mreg != nil {
		m.mreg.LoginFailure.Inc()
	}
	return model.User{}, ErrInvalidCredentials
}

// AdminLogin checks the configured credentials. Success sets the admin flag
// and clears any user session; failure changes neither flag.
func (m *Manager) AdminLogin(username, password string) error {
	if username != m.admin.Username || password != m.admin.Password {
		if m.mreg != nil {
			m.mreg.LoginFailure.Inc()
		}
		return ErrInvalidCredentials
	}
	if err := m.cat.SetAdmin(true); err != nil {
		return err
	}
	if err := m.cat.SetCurrentUser(nil); err != nil {
		return err
	}
	if m.mreg != nil {
		m.mreg.AdminLogins.Inc()
	}
	return nil
}

// Logout clears the current user only.
func (m *Manager) Logout() error { return m.cat.SetCurrentUser(nil) }

// AdminLogout clears both flags.
func (m *Manager) AdminLogout() error {
	if err := m.cat.SetAdmin(false); err != nil {
		return err
	}
	return m.cat.SetCurrentUser(nil)
}
