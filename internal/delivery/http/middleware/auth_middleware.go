package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Fire-Devils/filaman-system/config"
	deliverycontext "github.com/Fire-Devils/filaman-system/internal/delivery/context"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"
	"github.com/Fire-Devils/filaman-system/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// SessionCookieName carries the encoded session token.
	SessionCookieName = "session_id"

	apiKeyHeaderPrefix = "ApiKey "
	deviceHeaderPrefix = "Device "
)

// staticSuffixes are asset extensions that never need identity resolution.
var staticSuffixes = []string{".js", ".css", ".png", ".jpg", ".svg", ".woff2", ".ico"}

// AuthMiddleware resolves at most one principal per request by trying the
// credential schemes in fixed priority order: session cookie, then ApiKey
// header, then Device header. A failed resolution falls through to the next
// scheme; a request with no resolvable credential proceeds unauthenticated,
// and route-level guards decide whether that is acceptable.
type AuthMiddleware struct {
	authUC        usecase.AuthUsecase
	sessionMaxAge int
	trustProxyTLS bool
	debug         bool
}

// authStrategy pairs credential extraction with scheme resolution. The
// ordered strategy list is the whole dispatch policy.
type authStrategy struct {
	extract func(echo.Context) (string, bool)
	resolve func(context.Context, string) (*entity.Principal, error)
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:        authUC,
		sessionMaxAge: int(cfg.Auth.SessionTTL.Seconds()),
		trustProxyTLS: cfg.Auth.TrustProxyTLS,
		debug:         cfg.Env.Debug,
	}
}

// Resolve attempts each credential scheme in priority order and attaches the
// first resolved principal to the request.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if skipsAuthentication(path) {
			return next(c)
		}

		ctx := c.Request().Context()
		for _, strategy := range m.strategies() {
			token, ok := strategy.extract(c)
			if !ok {
				continue
			}

			principal, err := strategy.resolve(ctx, token)
			if err != nil {
				if errors.Is(err, domainerrors.ErrRejectedCredential) {
					continue
				}

				return errors.WithStack(err)
			}

			deliverycontext.SetPrincipal(c, principal)

			// The cookie must be rewritten before the handler commits the
			// response body.
			if principal.NeedsCookieExtension {
				m.extendSessionCookie(c, token)
			}

			return next(c)
		}

		return next(c)
	}
}

// RequirePrincipal rejects requests that did not resolve to any principal.
func (m *AuthMiddleware) RequirePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetPrincipal(c) == nil {
			return domainerrors.ErrRejectedCredential
		}

		return next(c)
	}
}

// RequireAuthType builds a guard that only admits principals of the given
// schemes. It must be used after Resolve.
func (m *AuthMiddleware) RequireAuthType(types ...entity.AuthType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrRejectedCredential
			}

			for _, t := range types {
				if principal.AuthType == t {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}

// strategies returns the scheme attempts in their fixed priority order.
// Session wins over ApiKey wins over Device; the order must not change.
func (m *AuthMiddleware) strategies() []authStrategy {
	return []authStrategy{
		{extract: extractSessionCookie, resolve: m.authUC.AuthenticateSession},
		{extract: extractHeaderToken(apiKeyHeaderPrefix), resolve: m.authUC.AuthenticateAPIKey},
		{extract: extractHeaderToken(deviceHeaderPrefix), resolve: m.authUC.AuthenticateDevice},
	}
}

// extendSessionCookie re-issues the session cookie with a fresh max-age
// after a rolling renewal. The Secure attribute is dropped when the request
// did not arrive over TLS, directly or via a trusted proxy, so plain-HTTP
// LAN deployments keep working.
func (m *AuthMiddleware) extendSessionCookie(c echo.Context, token string) {
	secure := !m.debug
	if secure && !m.requestIsTLS(c) {
		secure = false
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   m.sessionMaxAge,
	})
}

func (m *AuthMiddleware) requestIsTLS(c echo.Context) bool {
	if c.Request().TLS != nil {
		return true
	}

	return m.trustProxyTLS && c.Request().Header.Get("X-Forwarded-Proto") == "https"
}

func extractSessionCookie(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func extractHeaderToken(prefix string) func(echo.Context) (string, bool) {
	return func(c echo.Context) (string, bool) {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, prefix) {
			return "", false
		}

		return header[len(prefix):], true
	}
}

// skipsAuthentication reports whether the path is a static asset or health
// check that never touches credential storage. API and auth paths are never
// skipped, regardless of suffix.
func skipsAuthentication(path string) bool {
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") {
		return false
	}

	if strings.HasPrefix(path, "/_astro/") || strings.HasPrefix(path, "/img/") || strings.HasPrefix(path, "/health") {
		return true
	}

	switch path {
	case "/favicon.png", "/logo.png", "/icons.svg":
		return true
	}

	for _, suffix := range staticSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}
