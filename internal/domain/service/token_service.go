package service

import "github.com/Fire-Devils/filaman-system/internal/domain/entity"

// Scheme is the wire tag prefixing a bearer token.
type Scheme string

const (
	SchemeSession Scheme = "sess"
	SchemeAPIKey  Scheme = "uak"
	SchemeDevice  Scheme = "dev"
)

// AuthType maps the wire tag to the principal's credential scheme.
func (s Scheme) AuthType() entity.AuthType {
	switch s {
	case SchemeSession:
		return entity.AuthTypeSession
	case SchemeAPIKey:
		return entity.AuthTypeAPIKey
	case SchemeDevice:
		return entity.AuthTypeDevice
	}

	return ""
}

// Credential is the decoded form of a bearer token.
type Credential struct {
	Scheme   Scheme
	EntityID int64
	Secret   string
}

// TokenService encodes and decodes the compact scheme-prefixed token format
// used by all three credential schemes. A failed decode is a normal outcome,
// not an error: callers must treat it as a credential rejection.
type TokenService interface {
	// Encode produces a token of the form <scheme>.<entity_id>.<secret>.
	// Used only at issuance time (registration, login, key creation).
	Encode(scheme Scheme, entityID int64, secret string) string

	// Decode parses a token. ok is false on missing delimiters, a
	// non-integer entity id, or an unknown scheme tag.
	Decode(token string) (cred Credential, ok bool)

	// GenerateSecret returns a fresh random token secret.
	GenerateSecret() (string, error)
}
