package auth

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/Fire-Devils/filaman-system/internal/domain/service"

	"github.com/pkg/errors"
)

const secretByteLen = 32

// tokenService implements the dot-delimited bearer token format
// <scheme>.<entity_id>.<secret> shared by session cookies, API keys and
// device tokens.
type tokenService struct{}

// NewTokenService is the constructor for tokenService.
func NewTokenService() service.TokenService {
	return &tokenService{}
}

// Encode produces a token of the form <scheme>.<entity_id>.<secret>.
func (s *tokenService) Encode(scheme service.Scheme, entityID int64, secret string) string {
	return string(scheme) + "." + strconv.FormatInt(entityID, 10) + "." + secret
}

// Decode parses a token. A malformed token yields ok=false, never an error:
// rejecting a credential is a normal outcome.
func (s *tokenService) Decode(token string) (service.Credential, bool) {
	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 {
		return service.Credential{}, false
	}

	scheme := service.Scheme(parts[0])
	switch scheme {
	case service.SchemeSession, service.SchemeAPIKey, service.SchemeDevice:
	default:
		return service.Credential{}, false
	}

	entityID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return service.Credential{}, false
	}

	if parts[2] == "" {
		return service.Credential{}, false
	}

	return service.Credential{
		Scheme:   scheme,
		EntityID: entityID,
		Secret:   parts[2],
	}, true
}

// GenerateSecret returns a fresh random token secret, URL-safe so it can
// travel in cookies and headers unescaped.
func (s *tokenService) GenerateSecret() (string, error) {
	buf := make([]byte, secretByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
