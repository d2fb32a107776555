package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/request"
	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/dto/response"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

// sessionCookieMaxAge mirrors the 8h session TTL so the browser drops the
// cookie at the same time the server stops honoring it.
const sessionCookieMaxAge = 28800

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Email e senha são obrigatórios", http.StatusBadRequest)

// AuthHandler handles login, logout and session introspection.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login authenticates the credentials and installs the session cookie.
//
// @Summary      Login
// @Description  Autentica email e senha e emite o cookie de sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  request.LoginRequest  true  "Credenciais"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToEnvelope())
		return
	}

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Senha)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, response.OK(response.LoginResponse{User: user}))
}

// Logout drops the server-side session and expires the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		if err := h.usecase.Logout(c.Request.Context(), token); err != nil {
			appErr := mapAuthError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToEnvelope())
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.OKMessage("Sessão encerrada"))
}

// Me returns the identity bound to the current session.
//
// @Summary      Usuário autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  map[string]any
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := requireSessionUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.OK(response.LoginResponse{User: user}))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLoginCamposObrigatorios):
		return pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Email e senha são obrigatórios", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCredenciaisInvalidas):
		return pkg.NewDomainErrorSimple("CREDENCIAIS_INVALIDAS", "Email ou senha inválidos", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUsuarioInativo):
		return pkg.NewDomainErrorSimple("USUARIO_INATIVO", "Usuário desativado", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
