package client

// Well-known navigation targets used by the guards.
const (
	LoginRoute        = "/login"
	UnauthorizedRoute = "/unauthorized"
)

// Decision is the outcome of evaluating a guard before rendering a protected
// view. Exactly one of Allow, Suspend or a non-empty RedirectTo applies.
type Decision struct {
	// Allow lets the view render.
	Allow bool
	// Suspend means the session is still loading; render a placeholder and
	// re-evaluate once Restore completes.
	Suspend bool
	// RedirectTo is the route to navigate to instead of the requested view.
	RedirectTo string
	// From preserves the originally requested location for post-login return.
	From string
}

// AuthGuard gates a view on authentication. The loading state is observed
// before the authentication check, so a restoring session never flashes an
// unauthenticated redirect.
func AuthGuard(s *Session, from string) Decision {
	if s.Loading() {
		return Decision{Suspend: true}
	}
	if !s.IsAuthenticated() {
		return Decision{RedirectTo: LoginRoute, From: from}
	}
	return Decision{Allow: true}
}

// RoleGuard gates a view on both authentication and role membership. An
// unauthenticated session is redirected to login before the role is ever
// evaluated. These guards are advisory UX only; the server-side middleware
// is the authority.
func RoleGuard(s *Session, from string, allowedRoles ...string) Decision {
	if d := AuthGuard(s, from); !d.Allow {
		return d
	}

	role := s.Identity().Role
	for _, allowed := range allowedRoles {
		if role == allowed {
			return Decision{Allow: true}
		}
	}
	return Decision{RedirectTo: UnauthorizedRoute, From: from}
}
