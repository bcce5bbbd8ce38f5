// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/Fire-Devils/filaman-system/config"
	deliverycontext "github.com/Fire-Devils/filaman-system/internal/delivery/context"
	"github.com/Fire-Devils/filaman-system/internal/delivery/http/middleware"
	"github.com/Fire-Devils/filaman-system/internal/delivery/http/response"
	"github.com/Fire-Devils/filaman-system/internal/domain/entity"
	domainerrors "github.com/Fire-Devils/filaman-system/internal/domain/errors"
	"github.com/Fire-Devils/filaman-system/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginRequest is the login request body.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for login/logout and identity endpoints.
type AuthHandler struct {
	uc            usecase.AuthUsecase
	sessionMaxAge int
	trustProxyTLS bool
	debug         bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:            uc,
		sessionMaxAge: int(cfg.Auth.SessionTTL.Seconds()),
		trustProxyTLS: cfg.Auth.TrustProxyTLS,
		debug:         cfg.Env.Debug,
	}
}

// Login handles the user login request and issues the session and CSRF cookies.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	secure := h.secureCookie(c)
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    output.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   h.sessionMaxAge,
	})

	// The CSRF cookie is deliberately readable by the frontend so it can be
	// echoed back in the X-CSRF-Token header.
	c.SetCookie(&http.Cookie{
		Name:     middleware.CSRFCookieName,
		Value:    output.CSRFToken,
		Path:     "/",
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   h.sessionMaxAge,
	})

	return response.Success(c, http.StatusOK, output.User, "Login successful")
}

// Logout revokes the current session and clears the auth cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil || principal.AuthType != entity.AuthTypeSession {
		return domainerrors.ErrRejectedCredential
	}

	if err := h.uc.Logout(c.Request().Context(), principal.SessionID); err != nil {
		return errors.WithStack(err)
	}

	h.clearCookie(c, middleware.SessionCookieName, true)
	h.clearCookie(c, middleware.CSRFCookieName, false)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me returns the principal resolved for the current request.
func (h *AuthHandler) Me(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrRejectedCredential
	}

	return response.Success(c, http.StatusOK, principal, "")
}

func (h *AuthHandler) secureCookie(c echo.Context) bool {
	if h.debug {
		return false
	}

	if c.Request().TLS != nil {
		return true
	}

	return h.trustProxyTLS && c.Request().Header.Get("X-Forwarded-Proto") == "https"
}

func (h *AuthHandler) clearCookie(c echo.Context, name string, httpOnly bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: httpOnly,
		MaxAge:   -1,
	})
}
