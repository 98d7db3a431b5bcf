package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	identities map[string]*Identity
}

func (f *fakeVerifier) Verify(ctx context.Context, key string) (*Identity, error) {
	if identity, ok := f.identities[key]; ok {
		return identity, nil
	}
	return nil, errors.New("invalid token")
}

func newTestGuard() *Guard {
	return NewGuard(&fakeVerifier{identities: map[string]*Identity{
		"member-key": {UserID: 1, Username: "peter", IsStaff: false},
		"staff-key":  {UserID: 2, Username: "admin", IsStaff: true},
	}})
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestGuardRequire(t *testing.T) {
	guard := newTestGuard()

	tests := []struct {
		name       string
		policy     Policy
		authHeader string
		wantStatus int
	}{
		{"open without credentials", Open, "", http.StatusOK},
		{"authenticated without header", Authenticated, "", http.StatusUnauthorized},
		{"authenticated with bad scheme", Authenticated, "Bearer member-key", http.StatusUnauthorized},
		{"authenticated with unknown key", Authenticated, "Token bogus", http.StatusUnauthorized},
		{"authenticated with valid key", Authenticated, "Token member-key", http.StatusOK},
		{"admin-or-authenticated accepts member", AdminOrAuthenticated, "Token member-key", http.StatusOK},
		{"admin-or-authenticated accepts staff", AdminOrAuthenticated, "Token staff-key", http.StatusOK},
		{"admin-and-authenticated rejects member", AdminAndAuthenticated, "Token member-key", http.StatusForbidden},
		{"admin-and-authenticated accepts staff", AdminAndAuthenticated, "Token staff-key", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			guard.Require(tt.policy, okHandler)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGuardOpenRouteResolvesPresentedToken(t *testing.T) {
	guard := newTestGuard()

	var gotUsername string
	var gotStaff bool
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotUsername, _ = r.Context().Value(UsernameKey).(string)
		gotStaff, _ = r.Context().Value(IsStaffKey).(bool)
	}

	req := httptest.NewRequest(http.MethodPost, "/anything", nil)
	req.Header.Set("Authorization", "Token staff-key")
	rec := httptest.NewRecorder()
	guard.Require(Open, handler)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", gotUsername)
	assert.True(t, gotStaff)
}

func TestGuardOpenRouteIgnoresBadToken(t *testing.T) {
	guard := newTestGuard()

	tests := []struct {
		name       string
		authHeader string
	}{
		{"unknown key", "Token bogus"},
		{"wrong scheme", "Bearer staff-key"},
		{"malformed header", "staff-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawIdentity bool
			handler := func(w http.ResponseWriter, r *http.Request) {
				_, sawIdentity = r.Context().Value(UserIDKey).(uint)
			}

			req := httptest.NewRequest(http.MethodPost, "/anything", nil)
			req.Header.Set("Authorization", tt.authHeader)
			rec := httptest.NewRecorder()
			guard.Require(Open, handler)(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.False(t, sawIdentity)
		})
	}
}

func TestGuardStoresIdentityOnContext(t *testing.T) {
	guard := newTestGuard()

	var gotUsername string
	var gotStaff bool
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotUsername, _ = r.Context().Value(UsernameKey).(string)
		gotStaff, _ = r.Context().Value(IsStaffKey).(bool)
	}

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Token staff-key")
	guard.Require(Authenticated, handler)(httptest.NewRecorder(), req)

	assert.Equal(t, "admin", gotUsername)
	assert.True(t, gotStaff)
}
