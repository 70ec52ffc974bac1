package middleware

import (
	"net/http"

	"logistica_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const authCookieName = "logistica_session"

// Auth validates the signed session cookie on every request. An empty secret
// disables the check, which is how local environments run.
func Auth(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) { c.Next() }
	}

	key := []byte(secret)
	return func(c *gin.Context) {
		raw, err := c.Cookie(authCookieName)
		if err != nil {
			abortUnauthorized(c, "Missing session cookie")
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid session")
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, _ := claims["sub"].(string); sub != "" {
				c.Set("session_subject", sub)
			}
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
