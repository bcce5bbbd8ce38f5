package middleware

import (
	"strings"

	deliverycontext "github.com/Fire-Devils/filaman-system/internal/delivery/context"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	// CSRFCookieName is the double-submit cookie seeded at login.
	CSRFCookieName = "csrf_token"

	// CSRFHeaderName must echo the cookie value on state-changing requests.
	CSRFHeaderName = "X-CSRF-Token"
)

// stateChangingMethods are the methods the guard applies to.
var stateChangingMethods = map[string]struct{}{
	"POST":   {},
	"PUT":    {},
	"PATCH":  {},
	"DELETE": {},
}

// CSRFMiddleware implements the double-submit-cookie check. It applies only
// to session principals on state-changing API requests: ApiKey and Device
// principals carry their credential explicitly and cannot be ridden by a
// cross-site cookie. The guard consults no persisted state.
type CSRFMiddleware struct{}

// NewCSRFMiddleware is the constructor for CSRFMiddleware.
func NewCSRFMiddleware() *CSRFMiddleware {
	return &CSRFMiddleware{}
}

// Guard verifies the csrf_token cookie against the X-CSRF-Token header.
// It must run after AuthMiddleware.Resolve.
func (m *CSRFMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.applies(c) {
			return next(c)
		}

		cookie, err := c.Cookie(CSRFCookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrCSRFMismatch
		}

		header := c.Request().Header.Get(CSRFHeaderName)
		if header == "" || header != cookie.Value {
			return domainerrors.ErrCSRFMismatch
		}

		return next(c)
	}
}

func (m *CSRFMiddleware) applies(c echo.Context) bool {
	if _, ok := stateChangingMethods[c.Request().Method]; !ok {
		return false
	}

	path := c.Request().URL.Path
	if !strings.HasPrefix(path, "/api/v1/") && path != "/auth/logout" {
		return false
	}

	principal := deliverycontext.GetPrincipal(c)

	return principal != nil && principal.AuthType == entity.AuthTypeSession
}
