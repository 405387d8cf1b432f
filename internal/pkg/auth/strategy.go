package auth

import "time"

// TokenKind distinguishes short-lived access tokens from long-lived
// refresh tokens. A token issued as one kind never parses as the other.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Strategy issues and validates signed tokens carrying a subject and
// expiry. There is no revocation list; tokens stay valid until expiry.
type Strategy interface {
	IssueToken(subject string, kind TokenKind) (string, error)
	ParseToken(token string, kind TokenKind) (string, error)
	Name() string
}

// Options configures token lifetimes.
type Options struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}
