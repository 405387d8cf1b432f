package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orderdesk/orderdesk/internal/authz"
	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/domain/repository"
	pkgAuth "github.com/orderdesk/orderdesk/internal/pkg/auth"
)

// TokenPair carries the access/refresh tokens issued at login.
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	clients repository.ClientRepository
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(clients repository.ClientRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{clients: clients, hasher: hasher, tokens: strategy}
}

// SignUp creates a new client account. Username and email must both be
// unused; duplicates are reported before the insert so the error names
// the offending field, with the unique constraint as the backstop.
func (u *AuthUseCase) SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.Client, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domainErrors.ErrInvalidInput
	}

	if _, err := u.clients.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user with that email already exists", domainErrors.ErrAlreadyExists)
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.clients.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: user with that username already exists", domainErrors.ErrAlreadyExists)
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.clients.Create(ctx, username, email, hash, model.RoleFromStaffFlag(isStaff), isActive)
}

// Login validates credentials against username or email and returns a
// fresh access/refresh token pair.
func (u *AuthUseCase) Login(ctx context.Context, identifier, password string) (*model.Client, *TokenPair, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, nil, domainErrors.ErrInvalidCredentials
	}

	client, err := u.clients.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil, domainErrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := u.hasher.Compare(client.PasswordHash, password); err != nil {
		return nil, nil, domainErrors.ErrInvalidCredentials
	}

	access, err := u.tokens.IssueToken(client.Username, pkgAuth.TokenKindAccess)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := u.tokens.IssueToken(client.Username, pkgAuth.TokenKindRefresh)
	if err != nil {
		return nil, nil, err
	}

	return client, &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// subject must still resolve to an existing account.
func (u *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", pkgAuth.ErrInvalidToken
	}

	username, err := u.tokens.ParseToken(refreshToken, pkgAuth.TokenKindRefresh)
	if err != nil {
		return "", err
	}

	client, err := u.clients.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	return u.tokens.IssueToken(client.Username, pkgAuth.TokenKindAccess)
}

// ResolveCaller validates an access token and loads the caller identity
// used by every authorization check.
func (u *AuthUseCase) ResolveCaller(ctx context.Context, accessToken string) (authz.Caller, error) {
	if accessToken == "" {
		return authz.Caller{}, pkgAuth.ErrInvalidToken
	}

	username, err := u.tokens.ParseToken(accessToken, pkgAuth.TokenKindAccess)
	if err != nil {
		return authz.Caller{}, err
	}

	client, err := u.clients.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return authz.Caller{}, pkgAuth.ErrInvalidToken
		}
		return authz.Caller{}, err
	}

	return authz.Caller{
		ID:       client.ID,
		Username: client.Username,
		Role:     client.Role,
		Active:   client.Active,
	}, nil
}
