package server

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soundvault/soundvault/internal/config"
)

// AuthMiddleware verifies the bearer token against the identity
// provider and puts the subject into the downstream context.
// Authorization decisions beyond token validity stay upstream.
func (s *Server) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			return c.JSON(401, map[string]string{"error": "Authorization header is required"})
		}

		uid, err := s.server.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return c.JSON(401, map[string]string{
				"error":   err.Error(),
				"message": "Invalid token",
			})
		}

		ctx := context.WithValue(c.Request().Context(), config.CTX_KEY_USER_ID, uid)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
