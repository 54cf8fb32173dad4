// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides bearer-token authentication. Authorization decisions
// (which role may do what) live in the service layer; this middleware only
// establishes who the caller is and stashes the identity in the Gin context.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/royalvending/go-coaching-backend/internal/services"
)

// Context keys under which the authenticated identity is stored.
const (
	ctxKeyUserID   = "userID"
	ctxKeyUserRole = "userRole"
	ctxKeyActor    = "actor"
)

// TokenVerifier resolves a bearer token to the actor it names.
// *services.AuthService satisfies it.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (services.Actor, error)
}

// ActorFrom returns the authenticated actor stored by Auth. The second
// return value is false on unauthenticated requests.
func ActorFrom(c *gin.Context) (services.Actor, bool) {
	v, ok := c.Get(ctxKeyActor)
	if !ok {
		return services.Actor{}, false
	}
	a, ok := v.(services.Actor)
	return a, ok
}

// Auth returns a middleware that requires a valid "Authorization: Bearer"
// token. On success the actor is stored in the context along with the
// userID and userRole keys consumed by logging and rate limiting. On
// failure the request is aborted with a 401 and the standard error shape.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c)
			return
		}

		actor, err := verifier.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ctxKeyActor, actor)
		c.Set(ctxKeyUserID, actor.ID)
		c.Set(ctxKeyUserRole, actor.Role)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	rid, _ := c.Get(requestIDKey)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": asString(rid),
		"code":       "unauthorized",
		"message":    "missing or invalid credentials",
	})
}
