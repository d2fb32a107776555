package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/handlers"
	"github.com/giordanomadjo-lab/sisgped/internal/usecase"
)

// SessionMiddleware resolves the session cookie into an identity for the
// request. It never rejects by itself: anonymous requests pass through with
// no identity set and each handler decides whether that is acceptable, so
// public routes (login) and protected routes can share the group.
func SessionMiddleware(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(handlers.SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := auth.ResolveSession(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] failed to resolve session: %v", err)
			c.Next()
			return
		}
		if user != nil {
			handlers.SetSessionUser(c, *user)
		}
		c.Next()
	}
}
