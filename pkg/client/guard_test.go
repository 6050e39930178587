package client

import (
	"testing"
	"time"
)

func authedSession(t *testing.T, role string) *Session {
	t.Helper()
	s := NewSession(tempStore(t))
	if err := s.SetToken(signSessionToken(t, role, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("set token: %v", err)
	}
	return s
}

func loadedAnonymousSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(tempStore(t))
	if err := s.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	return s
}

func TestAuthGuard(t *testing.T) {
	tests := []struct {
		name    string
		session func(t *testing.T) *Session
		want    Decision
	}{
		{
			name:    "loading session suspends",
			session: func(t *testing.T) *Session { return NewSession(tempStore(t)) },
			want:    Decision{Suspend: true},
		},
		{
			name:    "anonymous session redirects to login with origin",
			session: loadedAnonymousSession,
			want:    Decision{RedirectTo: LoginRoute, From: "/item"},
		},
		{
			name:    "authenticated session allows",
			session: func(t *testing.T) *Session { return authedSession(t, "USER") },
			want:    Decision{Allow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AuthGuard(tt.session(t), "/item")
			if got != tt.want {
				t.Fatalf("decision = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRoleGuard(t *testing.T) {
	tests := []struct {
		name    string
		session func(t *testing.T) *Session
		roles   []string
		want    Decision
	}{
		{
			name:    "loading session suspends before role check",
			session: func(t *testing.T) *Session { return NewSession(tempStore(t)) },
			roles:   []string{"ADMIN"},
			want:    Decision{Suspend: true},
		},
		{
			name:    "anonymous session redirects to login, not unauthorized",
			session: loadedAnonymousSession,
			roles:   []string{"ADMIN"},
			want:    Decision{RedirectTo: LoginRoute, From: "/admin"},
		},
		{
			name:    "matching role allows",
			session: func(t *testing.T) *Session { return authedSession(t, "ADMIN") },
			roles:   []string{"ADMIN"},
			want:    Decision{Allow: true},
		},
		{
			name:    "non-matching role redirects to unauthorized",
			session: func(t *testing.T) *Session { return authedSession(t, "USER") },
			roles:   []string{"ADMIN"},
			want:    Decision{RedirectTo: UnauthorizedRoute, From: "/admin"},
		},
		{
			name:    "role matched against any allowed role",
			session: func(t *testing.T) *Session { return authedSession(t, "USER") },
			roles:   []string{"ADMIN", "USER"},
			want:    Decision{Allow: true},
		},
		{
			name:    "empty allow list denies everyone",
			session: func(t *testing.T) *Session { return authedSession(t, "ADMIN") },
			roles:   nil,
			want:    Decision{RedirectTo: UnauthorizedRoute, From: "/admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoleGuard(tt.session(t), "/admin", tt.roles...)
			if got != tt.want {
				t.Fatalf("decision = %+v, want %+v", got, tt.want)
			}
		})
	}
}
