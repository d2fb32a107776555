package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/domain/entities"
	"github.com/giordanomadjo-lab/sisgped/pkg"
)

// SessionCookieName is the HttpOnly cookie carrying the opaque session token.
const SessionCookieName = "session_id"

const sessionUserKey = "session_user"

var errNaoAutenticado = pkg.NewDomainErrorSimple("NAO_AUTENTICADO", "Não autenticado", http.StatusUnauthorized)

// SetSessionUser stores the resolved identity for the rest of the request.
func SetSessionUser(c *gin.Context, u entities.SessionUser) {
	c.Set(sessionUserKey, u)
}

// SessionUserFrom returns the identity placed by the session middleware.
func SessionUserFrom(c *gin.Context) (entities.SessionUser, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return entities.SessionUser{}, false
	}
	u, ok := v.(entities.SessionUser)
	return u, ok
}

// requireSessionUser aborts with 401 when the request carries no identity.
func requireSessionUser(c *gin.Context) (entities.SessionUser, bool) {
	u, ok := SessionUserFrom(c)
	if !ok {
		c.AbortWithStatusJSON(errNaoAutenticado.HTTPStatus, errNaoAutenticado.ToEnvelope())
		return entities.SessionUser{}, false
	}
	return u, true
}
