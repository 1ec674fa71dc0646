package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/moodmate/backend/internal/auth"
)

// HeaderUserID carries the authenticated user's ID, set by the session
// gateway in front of this service.
const HeaderUserID = "X-User-ID"

var errNoUser = errors.New("missing " + HeaderUserID + " header")

// requireUser extracts the caller's user ID from the request.
func requireUser(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if id == "" {
		return "", errNoUser
	}
	return id, nil
}

// bearerToken extracts a Bearer token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Authorization header must be 'Bearer <token>'")
	}
	return parts[1], nil
}

// requireAdmin verifies the admin JWT carried by the request.
func requireAdmin(r *http.Request, tokens *auth.AdminTokenService) (*auth.AdminClaims, error) {
	tok, err := bearerToken(r)
	if err != nil {
		return nil, err
	}
	return tokens.Verify(tok)
}
