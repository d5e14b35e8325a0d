package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/domain/repository"
	pkgAuth "github.com/polkiloo/vegdelivery/internal/pkg/auth"
)

// SessionUseCase logs staff in against the credential table and resolves sessions.
type SessionUseCase struct {
	credentials repository.CredentialRepository
	users       repository.UserRepository
	sessions    repository.SessionRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
	now         func() time.Time
	newID       func() string
}

// LoginResult carries the issued token and the identity it stands for.
type LoginResult struct {
	Token    string
	Identity model.Identity
	User     model.User
}

// NewSessionUseCase constructs SessionUseCase.
func NewSessionUseCase(
	credentials repository.CredentialRepository,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
) *SessionUseCase {
	return &SessionUseCase{
		credentials: credentials,
		users:       users,
		sessions:    sessions,
		hasher:      hasher,
		tokens:      strategy,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Login opens a session when email and password exactly match a credential
// record and a user with that email exists.
func (u *SessionUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	cred, err := u.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(cred.PasswordHash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	session := model.Session{ID: u.newID(), UserID: usr.ID, CreatedAt: u.now()}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := u.tokens.IssueToken(pkgAuth.TokenClaims{SessionID: session.ID, UserID: usr.ID, Role: usr.Role})
	if err != nil {
		_ = u.sessions.Delete(ctx, session.ID)
		return nil, err
	}

	return &LoginResult{Token: token, Identity: identityOf(session.ID, usr), User: *usr}, nil
}

// Logout ends the session behind token. Unknown or invalid tokens are ignored.
func (u *SessionUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil
	}
	return u.sessions.Delete(ctx, claims.SessionID)
}

// Authenticate resolves token into the identity of a live session.
// The role is read from the current user record.
func (u *SessionUseCase) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	claims, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}

	session, err := u.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, pkgAuth.ErrInvalidToken
	}

	usr, err := u.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrSessionNotFound
		}
		return nil, err
	}

	identity := identityOf(session.ID, usr)
	return &identity, nil
}

func identityOf(sessionID string, usr *model.User) model.Identity {
	return model.Identity{
		SessionID: sessionID,
		UserID:    usr.ID,
		Name:      usr.Name,
		Email:     usr.Email,
		Role:      usr.Role,
	}
}
