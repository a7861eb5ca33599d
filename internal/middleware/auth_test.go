package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/atln0/GigBooker/internal/auth"
	"github.com/atln0/GigBooker/internal/domain"
)

type stubResolver struct {
	sessions map[string]*domain.Session
}

func (r *stubResolver) Resolve(_ context.Context, sessionID string) (*domain.Session, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func setupAuthRouter(t *testing.T) (*auth.Manager, *stubResolver, http.Handler) {
	t.Helper()

	tokens := auth.NewManager("test-secret", time.Hour)
	resolver := &stubResolver{sessions: map[string]*domain.Session{}}

	r := ginext.New("test")
	r.Use(Session(tokens, resolver))

	r.GET("/open", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	r.GET("/dj-only", RequireRole(domain.RoleDJ), func(c *ginext.Context) {
		session, _ := SessionFrom(c)
		c.JSON(http.StatusOK, ginext.H{"role": string(session.Role)})
	})

	return tokens, resolver, r
}

func doAuthed(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSession_NoHeaderPassesThrough(t *testing.T) {
	_, _, r := setupAuthRouter(t)

	w := doAuthed(r, "/open", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSession_ValidToken(t *testing.T) {
	tokens, resolver, r := setupAuthRouter(t)

	session := &domain.Session{ID: "s1", Role: domain.RoleDJ}
	resolver.sessions["s1"] = session

	token, err := tokens.Issue(session)
	require.NoError(t, err)

	w := doAuthed(r, "/dj-only", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DJ")
}

func TestSession_MalformedHeader(t *testing.T) {
	_, _, r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_GarbageToken(t *testing.T) {
	_, _, r := setupAuthRouter(t)

	w := doAuthed(r, "/open", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_LoggedOutSessionRejected(t *testing.T) {
	tokens, _, r := setupAuthRouter(t)

	// token is valid but the session behind it no longer exists
	token, err := tokens.Issue(&domain.Session{ID: "gone", Role: domain.RoleClient})
	require.NoError(t, err)

	w := doAuthed(r, "/open", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_NoSession(t *testing.T) {
	_, _, r := setupAuthRouter(t)

	w := doAuthed(r, "/dj-only", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	tokens, resolver, r := setupAuthRouter(t)

	session := &domain.Session{ID: "s2", Role: domain.RoleClient}
	resolver.sessions["s2"] = session

	token, err := tokens.Issue(session)
	require.NoError(t, err)

	w := doAuthed(r, "/dj-only", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
}
