package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atln0/GigBooker/internal/auth"
	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, *auth.Manager) {
	t.Helper()
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewAuthService(repository.NewSessionRepo(), tokens, newTestLogger(t)), tokens
}

func TestAuthService_Login_RoleMapping(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []struct {
		username string
		password string
		role     domain.Role
	}{
		{"artist", "artist", domain.RoleDJ},
		{"client", "client", domain.RoleClient},
		{"promoter", "promoter", domain.RolePromoter},
	}

	for _, tc := range cases {
		token, session, err := svc.Login(context.Background(), tc.username, tc.password)

		require.NoError(t, err, tc.username)
		assert.NotEmpty(t, token)
		assert.Equal(t, tc.role, session.Role)
		assert.Empty(t, session.SignatureURL)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "artist", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "nobody")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, tokens := newAuthService(t)

	token, session, err := svc.Login(context.Background(), "client", "client")
	require.NoError(t, err)

	sessionID, role, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, sessionID)
	assert.Equal(t, domain.RoleClient, role)

	resolved, err := svc.Resolve(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
}

func TestAuthService_Logout_InvalidatesSession(t *testing.T) {
	svc, _ := newAuthService(t)

	_, session, err := svc.Login(context.Background(), "promoter", "promoter")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.ID))

	_, err = svc.Resolve(context.Background(), session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// logout is idempotent
	assert.NoError(t, svc.Logout(context.Background(), session.ID))
}

func TestAuthService_SetClientSignature(t *testing.T) {
	svc, _ := newAuthService(t)

	_, session, err := svc.Login(context.Background(), "client", "client")
	require.NoError(t, err)

	updated, err := svc.SetClientSignature(context.Background(), session.ID, testSignature)

	require.NoError(t, err)
	assert.Equal(t, testSignature, updated.SignatureURL)
}

func TestAuthService_SetClientSignature_RejectsDJ(t *testing.T) {
	svc, _ := newAuthService(t)

	_, session, err := svc.Login(context.Background(), "artist", "artist")
	require.NoError(t, err)

	_, err = svc.SetClientSignature(context.Background(), session.ID, testSignature)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthService_SetClientSignature_RejectsBadDataURL(t *testing.T) {
	svc, _ := newAuthService(t)

	_, session, err := svc.Login(context.Background(), "client", "client")
	require.NoError(t, err)

	for _, bad := range []string{
		"",
		"https://example.com/signature.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,%%%not-base64%%%",
	} {
		_, err = svc.SetClientSignature(context.Background(), session.ID, bad)
		assert.ErrorIs(t, err, domain.ErrValidation, bad)
	}
}

func TestAuthService_SetClientSignature_UnknownSession(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.SetClientSignature(context.Background(), "missing", testSignature)

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
