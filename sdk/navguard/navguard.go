// Package navguard decides where a client-side navigation should land based
// on the session state. It is a pure decision function: no router, no
// storage, no HTTP. Frontends call Decide before rendering a destination and
// follow the returned redirect, if any.
package navguard

// TokenStore abstracts wherever the client keeps its bearer token and
// profile flag (browser local storage, a keychain, an in-memory map in
// tests).
type TokenStore interface {
	Token() string
	ProfileCompleted() bool
}

// Session is the navigation-relevant slice of client state.
type Session struct {
	Token            string
	ProfileCompleted bool
}

// SessionFromStore snapshots a TokenStore into a Session value.
func SessionFromStore(store TokenStore) Session {
	if store == nil {
		return Session{}
	}
	return Session{
		Token:            store.Token(),
		ProfileCompleted: store.ProfileCompleted(),
	}
}

// Authenticated reports whether the session carries a token. The token is
// not verified here; the server rejects invalid ones with 401 and the client
// then clears its store.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Route describes a navigation destination.
type Route struct {
	Path         string
	RequiresAuth bool
}

// Decision is the outcome of a guard check. A zero RedirectTo means the
// navigation may proceed.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirectTo(path string) Decision {
	return Decision{RedirectTo: path}
}

// Guard holds the well-known paths the decision rules redirect to.
type Guard struct {
	SigninPath    string
	ProfilePath   string
	DashboardPath string
}

// New returns a Guard with the default application paths.
func New() *Guard {
	return &Guard{
		SigninPath:    "/signin",
		ProfilePath:   "/profile",
		DashboardPath: "/dashboard",
	}
}

// Decide applies the navigation rules to a destination:
//
//   - a destination requiring auth without a token redirects to signin
//   - an authenticated session with an incomplete profile is sent to the
//     profile page first (unless already heading there)
//   - the profile page with a completed profile redirects to the dashboard
func (g *Guard) Decide(dest Route, s Session) Decision {
	if dest.RequiresAuth && !s.Authenticated() {
		return redirectTo(g.SigninPath)
	}

	if s.Authenticated() && !s.ProfileCompleted && dest.RequiresAuth && dest.Path != g.ProfilePath {
		return redirectTo(g.ProfilePath)
	}

	if s.Authenticated() && s.ProfileCompleted && dest.Path == g.ProfilePath {
		return redirectTo(g.DashboardPath)
	}

	return allow()
}
