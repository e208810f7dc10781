package httpx

import (
	"context"
	"fmt"
	"net/http"
)

type tokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a tokenSource that always returns the same token.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// AuthBearerRoundTripper sets the Authorization header on every outgoing
// request.
type AuthBearerRoundTripper struct {
	next   http.RoundTripper
	tokens tokenSource
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	tokens tokenSource,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:   next,
		tokens: tokens,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := rt.tokens.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("tokens.Token: %w", err)
	}

	if token == "" {
		return rt.next.RoundTrip(req) //nolint:wrapcheck
	}

	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
