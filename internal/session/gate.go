package session

// PageClass is the explicit route taxonomy the hosting shell dispatches on.
// The core never inspects presentation state to classify a page.
type PageClass int

const (
	PageAuth PageClass = iota // login and signup
	PageAdmin
	PageRegular
)

func (p PageClass) String() string {
	switch p {
	case PageAuth:
		return "auth"
	case PageAdmin:
		return "admin"
	default:
		return "regular"
	}
}

// Decision is the access outcome for a page load.
type Decision int

const (
	Stay Decision = iota
	ToHome
	ToLogin
	ToAdmin
)

func (d Decision) String() string {
	switch d {
	case Stay:
		return "stay"
	case ToHome:
		return "home"
	case ToLogin:
		return "login"
	default:
		return "admin-dashboard"
	}
}

// Authorize computes the page-load access decision. It must run, and its
// redirect honored, before any page content is produced: rendering first
// would flash privileged content.
//
//	auth page:    admin -> admin dashboard; logged in -> home; else stay
//	admin page:   admin -> stay; else login
//	regular page: logged in -> stay; else login
func (m *Manager) Authorize(page PageClass) (Decision, error) {
	admin, err := m.Admin()
	if err != nil {
		return Stay, err
	}
	loggedIn, err := m.LoggedIn()
	if err != nil {
		return Stay, err
	}
	switch page {
	case PageAuth:
		if admin {
			return ToAdmin, nil
		}
		if loggedIn {
			return ToHome, nil
		}
		return Stay, nil
	case PageAdmin:
		if !admin {
			return ToLogin, nil
		}
		return Stay, nil
	default:
		if !loggedIn {
			return ToLogin, nil
		}
		return Stay, nil
	}
}
