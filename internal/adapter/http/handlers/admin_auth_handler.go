package handlers

import (
	"errors"
	"net/http"
	"time"

	request "nishad_gateway/internal/adapter/http/dto/request"
	response "nishad_gateway/internal/adapter/http/dto/response"
	"nishad_gateway/internal/adapter/http/middleware"
	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase"
	"nishad_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// CookieConfig controls the session cookies written on login and refresh.
type CookieConfig struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// AdminAuthHandler serves admin login, refresh, logout and the current session.
type AdminAuthHandler struct {
	usecase usecase.IAdminAuthUseCase
	cookies CookieConfig
	now     func() time.Time
}

func NewAdminAuthHandler(uc usecase.IAdminAuthUseCase, cookies CookieConfig) *AdminAuthHandler {
	if cookies.SameSite == 0 {
		cookies.SameSite = http.SameSiteLaxMode
	}
	return &AdminAuthHandler{usecase: uc, cookies: cookies, now: time.Now}
}

// Login godoc
// @Summary  Admin login
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body  body      request.LoginRequest  true  "Credentials"
// @Success  200   {object}  response.Envelope{data=response.SessionResponse}
// @Failure  401   {object}  pkg.HTTPError
// @Router   /admin/login [post]
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	admin, pair, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAdminAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.setSessionCookies(c, pair)
	c.JSON(http.StatusOK, response.OK(response.FromSession(admin, pair)))
}

// Refresh godoc
// @Summary  Rotate the session using the refresh cookie
// @Tags     admin
// @Produce  json
// @Success  200  {object}  response.Envelope{data=response.SessionResponse}
// @Failure  401  {object}  pkg.HTTPError
// @Router   /admin/refresh [post]
func (h *AdminAuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(middleware.RefreshCookieName)
	if err != nil || token == "" {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	admin, pair, err := h.usecase.Refresh(c.Request.Context(), token)
	if err != nil {
		h.clearSessionCookies(c)
		appErr := mapAdminAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.setSessionCookies(c, pair)
	c.JSON(http.StatusOK, response.OK(response.FromSession(admin, pair)))
}

// Logout godoc
// @Summary  Clear the session cookies
// @Tags     admin
// @Produce  json
// @Success  200  {object}  response.Envelope
// @Router   /admin/logout [post]
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookies(c)
	c.JSON(http.StatusOK, response.OKMessage("Logged out", nil))
}

// Me godoc
// @Summary   Current admin
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.Envelope{data=response.AdminResponse}
// @Failure   401  {object}  pkg.HTTPError
// @Router    /admin/me [get]
func (h *AdminAuthHandler) Me(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromAdmin(admin)))
}

func (h *AdminAuthHandler) setSessionCookies(c *gin.Context, pair entities.TokenPair) {
	now := h.now()
	h.setCookie(c, middleware.AccessCookieName, pair.AccessToken, maxAge(pair.AccessExpiresAt, now))
	h.setCookie(c, middleware.RefreshCookieName, pair.RefreshToken, maxAge(pair.RefreshExpiresAt, now))
}

func (h *AdminAuthHandler) clearSessionCookies(c *gin.Context) {
	h.setCookie(c, middleware.AccessCookieName, "", -1)
	h.setCookie(c, middleware.RefreshCookieName, "", -1)
}

func (h *AdminAuthHandler) setCookie(c *gin.Context, name, value string, age int) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(name, value, age, "/", h.cookies.Domain, h.cookies.Secure, true)
}

func maxAge(expires, now time.Time) int {
	secs := int(expires.Sub(now).Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}

func mapAdminAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, usecase.ErrInvalidAdminInput):
		return errInvalidPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
