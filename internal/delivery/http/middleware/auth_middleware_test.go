package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fire-Devils/filaman-system/config"
	deliverycontext "github.com/Fire-Devils/filaman-system/internal/delivery/context"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"
	mockUsecase "github.com/Fire-Devils/filaman-system/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(authUC *mockUsecase.MockAuthUsecase) *AuthMiddleware {
	cfg := &config.Config{Auth: &config.AuthConfig{
		SessionTTL: 30 * 24 * time.Hour,
	}}

	return NewAuthMiddleware(authUC, cfg)
}

func invokeResolve(t *testing.T, m *AuthMiddleware, req *http.Request) (*entity.Principal, *httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var principal *entity.Principal
	next := func(c echo.Context) error {
		principal = deliverycontext.GetPrincipal(c)

		return c.NoContent(http.StatusOK)
	}

	err := m.Resolve(next)(c)

	return principal, rec, err
}

func TestAuthMiddleware_Resolve_SkipsStaticAssets(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	paths := []string{
		"/_astro/app.17ab3f.js",
		"/img/spool.png",
		"/health",
		"/favicon.png",
		"/logo.png",
		"/icons.svg",
		"/fonts/inter.woff2",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		// A cookie is present but must never reach the usecase.
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.secret"})

		principal, _, err := invokeResolve(t, m, req)

		require.NoError(t, err, path)
		assert.Nil(t, principal, path)
	}
}

func TestAuthMiddleware_Resolve_NeverSkipsAPIOrAuthPaths(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	resolved := &entity.Principal{AuthType: entity.AuthTypeSession, UserID: 7}

	// A static-looking suffix does not exempt API routes.
	paths := []string{"/api/v1/export.css", "/auth/me"}
	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.secret").Return(resolved, nil).Times(len(paths))

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.secret"})

		principal, _, err := invokeResolve(t, m, req)

		require.NoError(t, err, path)
		assert.Equal(t, resolved, principal, path)
	}
}

func TestAuthMiddleware_Resolve_SessionWinsOverAPIKey(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	resolved := &entity.Principal{AuthType: entity.AuthTypeSession, UserID: 7}
	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.secret").Return(resolved, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.secret"})
	req.Header.Set(echo.HeaderAuthorization, "ApiKey uak.5.secret")

	principal, _, err := invokeResolve(t, m, req)

	require.NoError(t, err)
	assert.Equal(t, entity.AuthTypeSession, principal.AuthType)
}

func TestAuthMiddleware_Resolve_FallsThroughToNextScheme(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	resolved := &entity.Principal{AuthType: entity.AuthTypeAPIKey, UserID: 7, APIKeyID: 5}
	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.stale").
		Return(nil, domainerrors.ErrRejectedCredential)
	authUC.EXPECT().AuthenticateAPIKey(mock.Anything, "uak.5.secret").Return(resolved, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.stale"})
	req.Header.Set(echo.HeaderAuthorization, "ApiKey uak.5.secret")

	principal, _, err := invokeResolve(t, m, req)

	require.NoError(t, err)
	assert.Equal(t, entity.AuthTypeAPIKey, principal.AuthType)
}

func TestAuthMiddleware_Resolve_DeviceHeader(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	resolved := &entity.Principal{AuthType: entity.AuthTypeDevice, DeviceID: 11}
	authUC.EXPECT().AuthenticateDevice(mock.Anything, "dev.11.secret").Return(resolved, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices/heartbeat", nil)
	req.Header.Set(echo.HeaderAuthorization, "Device dev.11.secret")

	principal, _, err := invokeResolve(t, m, req)

	require.NoError(t, err)
	assert.Equal(t, entity.AuthTypeDevice, principal.AuthType)
	assert.Equal(t, int64(11), principal.DeviceID)
}

func TestAuthMiddleware_Resolve_UnauthenticatedProceeds(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)

	principal, rec, err := invokeResolve(t, m, req)

	require.NoError(t, err)
	assert.Nil(t, principal)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Resolve_AllCredentialsRejectedProceeds(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.stale").
		Return(nil, domainerrors.ErrRejectedCredential)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.stale"})

	principal, _, err := invokeResolve(t, m, req)

	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestAuthMiddleware_Resolve_InternalErrorPropagates(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.secret").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.secret"})

	_, _, err := invokeResolve(t, m, req)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthMiddleware_Resolve_ExtendsSessionCookie(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	resolved := &entity.Principal{
		AuthType:             entity.AuthTypeSession,
		UserID:               7,
		SessionID:            3,
		NeedsCookieExtension: true,
	}
	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.secret").Return(resolved, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.secret"})

	_, rec, err := invokeResolve(t, m, req)

	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "sess.3.secret", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	// Plain HTTP request, so the Secure attribute must be dropped.
	assert.False(t, cookie.Secure)
}

func TestAuthMiddleware_Resolve_NoCookieExtensionWithoutRenewal(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	resolved := &entity.Principal{AuthType: entity.AuthTypeSession, UserID: 7, SessionID: 3}
	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.secret").Return(resolved, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.secret"})

	_, rec, err := invokeResolve(t, m, req)

	require.NoError(t, err)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthMiddleware_Resolve_SecureCookieBehindTrustedProxy(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{
		SessionTTL:    30 * 24 * time.Hour,
		TrustProxyTLS: true,
	}}
	m := NewAuthMiddleware(authUC, cfg)

	resolved := &entity.Principal{
		AuthType:             entity.AuthTypeSession,
		SessionID:            3,
		NeedsCookieExtension: true,
	}
	authUC.EXPECT().AuthenticateSession(mock.Anything, "sess.3.secret").Return(resolved, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess.3.secret"})
	req.Header.Set("X-Forwarded-Proto", "https")

	_, rec, err := invokeResolve(t, m, req)

	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestAuthMiddleware_RequirePrincipal(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	e := echo.New()
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("no principal rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		err := m.RequirePrincipal(next)(c)

		assert.ErrorIs(t, err, domainerrors.ErrRejectedCredential)
	})

	t.Run("principal admitted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		deliverycontext.SetPrincipal(c, &entity.Principal{AuthType: entity.AuthTypeSession})

		err := m.RequirePrincipal(next)(c)

		assert.NoError(t, err)
	})
}

func TestAuthMiddleware_RequireAuthType(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := newTestAuthMiddleware(authUC)

	e := echo.New()
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	guard := m.RequireAuthType(entity.AuthTypeSession, entity.AuthTypeAPIKey)(next)

	t.Run("allowed type admitted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		deliverycontext.SetPrincipal(c, &entity.Principal{AuthType: entity.AuthTypeAPIKey})

		assert.NoError(t, guard(c))
	})

	t.Run("other type forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		deliverycontext.SetPrincipal(c, &entity.Principal{AuthType: entity.AuthTypeDevice})

		assert.ErrorIs(t, guard(c), domainerrors.ErrForbidden)
	})

	t.Run("no principal rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/active", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		assert.ErrorIs(t, guard(c), domainerrors.ErrRejectedCredential)
	})
}
