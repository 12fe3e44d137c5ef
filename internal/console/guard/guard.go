// Package guard holds the pre-navigation access checks. Guards are pure
// functions of session state; they decide, the shell navigates.
package guard

import (
	"net/url"

	"github.com/adminhub/user-console/internal/console/session"
)

const adminRole = "ROLE_ADMIN"

// Decision is the outcome of a guard check. When Allow is false, RedirectTo
// names the route the shell must navigate to instead.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// RequireAuth admits authenticated sessions. Anonymous visitors are sent to
// the login route carrying the attempted URL so login can return them there.
func RequireAuth(sess *session.Store, targetURL string) Decision {
	if sess.Authenticated() {
		return allow()
	}
	return redirect("/auth/login?returnUrl=" + url.QueryEscape(targetURL))
}

// RequireAdmin admits authenticated admins. Authenticated non-admins land on
// the dashboard; anonymous visitors go to login like RequireAuth.
func RequireAdmin(sess *session.Store, targetURL string) Decision {
	if !sess.Authenticated() {
		return redirect("/auth/login?returnUrl=" + url.QueryEscape(targetURL))
	}
	if !sess.HasRole(adminRole) {
		return redirect("/dashboard")
	}
	return allow()
}
