package auth

import "strings"

// Authorizer decides whether an Authorization header value carries a
// credential that permits portfolio mutation. The token-manager
// implementation only proves that a valid token was presented; it does not
// tie the token to the resource being mutated. A stricter ownership-checking
// variant can be substituted without touching callers.
type Authorizer interface {
	Authorize(authorizationHeader string) error
}

// Authorize extracts the bearer token from an "Authorization: Bearer <token>"
// header value and verifies it. Any failure (absent header, malformed
// scheme, bad signature, expiry, unusable claims) yields ErrInvalidToken
// with no distinguishing detail.
func (manager *TokenManager) Authorize(authorizationHeader string) error {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return ErrInvalidToken
	}

	parts := strings.SplitN(header, " ", 2)
	rawToken := ""
	if len(parts) == 2 {
		rawToken = strings.TrimSpace(parts[1])
	}
	if rawToken == "" {
		return ErrInvalidToken
	}

	_, err := manager.Parse(rawToken)
	return err
}
