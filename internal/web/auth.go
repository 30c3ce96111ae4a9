package web

import (
	"fmt"
	"net/http"
	"strings"

	"bitbucket.org/crgw/availability-hub/internal/handling"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// ServiceAuth guards a route with an HS256 service token. An empty secret
// disables the guard; internal deployments run without one.
func ServiceAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if secret == "" {
			return
		}

		header := ctx.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			handling.HandleError(ctx, http.StatusUnauthorized, "missing bearer token", nil)
			ctx.Abort()
			return
		}

		_, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}

			return []byte(secret), nil
		})
		if err != nil {
			handling.HandleError(ctx, http.StatusUnauthorized, "invalid bearer token", err)
			ctx.Abort()
			return
		}
	}
}
