package test

import (
	"fmt"
	"strings"

	"github.com/orderdesk/orderdesk/internal/pkg/auth"
)

// HasherStub is a reversible password hasher for tests.
type HasherStub struct {
	HashErr error
}

// Hash prefixes the password so tests can see through the hash.
func (s *HasherStub) Hash(password string) (string, error) {
	if s.HashErr != nil {
		return "", s.HashErr
	}
	return "hashed:" + password, nil
}

// Compare checks the prefixed form produced by Hash.
func (s *HasherStub) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("stub hash mismatch")
	}
	return nil
}

// StrategyStub issues transparent tokens of the form kind|subject.
type StrategyStub struct {
	IssueErr error
	ParseErr error
}

// IssueToken returns a readable token unless IssueErr is set.
func (s *StrategyStub) IssueToken(subject string, kind auth.TokenKind) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return string(kind) + "|" + subject, nil
}

// ParseToken accepts tokens produced by IssueToken with a matching kind.
func (s *StrategyStub) ParseToken(token string, kind auth.TokenKind) (string, error) {
	if s.ParseErr != nil {
		return "", s.ParseErr
	}
	prefix := string(kind) + "|"
	if !strings.HasPrefix(token, prefix) {
		return "", fmt.Errorf("%w: stub kind mismatch", auth.ErrInvalidToken)
	}
	return strings.TrimPrefix(token, prefix), nil
}

// Name identifies the stub strategy.
func (s *StrategyStub) Name() string { return "stub" }
