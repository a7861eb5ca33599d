package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/atln0/GigBooker/internal/auth"
	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/service/ports"
)

// credentials is the original's fixed three-user table. It exists to
// pick a role at login, nothing more.
var credentials = map[string]struct {
	password string
	role     domain.Role
}{
	"artist":   {password: "artist", role: domain.RoleDJ},
	"client":   {password: "client", role: domain.RoleClient},
	"promoter": {password: "promoter", role: domain.RolePromoter},
}

type AuthService struct {
	sessions ports.SessionRepo
	tokens   *auth.Manager
	logger   logger.Logger
}

func NewAuthService(sessions ports.SessionRepo, tokens *auth.Manager, logger logger.Logger) *AuthService {
	return &AuthService{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login checks the credential table, creates a session fixed to the
// matched role and issues its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	entry, ok := credentials[username]
	if !ok || entry.password != password {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		Role:      entry.role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("session started",
		logger.String("session_id", session.ID),
		logger.String("role", string(session.Role)),
	)

	return token, session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Resolve returns the live session for a parsed token; a deleted
// session invalidates the token even before it expires.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, sessionID)
}

// SetClientSignature stores the signature image used when this session
// countersigns contracts. DJ sessions sign with the profile signature
// instead.
func (s *AuthService) SetClientSignature(ctx context.Context, sessionID, signatureURL string) (*domain.Session, error) {
	if err := domain.ValidateSignatureDataURL(signatureURL); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Role == domain.RoleDJ {
		return nil, fmt.Errorf("%w: DJ sessions sign with the profile signature", domain.ErrForbidden)
	}

	return s.sessions.SetSignature(ctx, sessionID, signatureURL)
}
