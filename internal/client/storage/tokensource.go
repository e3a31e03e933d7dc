package storage

import "context"

// TokenSource yields the persisted bearer token for outgoing requests.
// An absent token is reported as ("", nil): requests simply go out without
// an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// RepositoryTokenSource reads the token from a key-value Repository on every
// call, so a login or logout between two requests is picked up immediately.
type RepositoryTokenSource struct {
	repo Repository
}

func NewRepositoryTokenSource(repo Repository) *RepositoryTokenSource {
	return &RepositoryTokenSource{repo: repo}
}

func (s *RepositoryTokenSource) Token(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
