package ports

import "errors"

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier checks a token and returns its subject. Every failure is
// reported as ErrInvalidToken, possibly wrapped.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

type TokenIssuer interface {
	Sign(subject string) (string, error)
}
