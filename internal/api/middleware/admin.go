package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminUsername = "admin"

// AdminAuth guards the provisioning endpoints with HTTP basic auth. The
// configured password is hashed once at mount time so each request is
// checked through bcrypt rather than a plain string equality.
func AdminAuth(password string) gin.HandlerFunc {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	return func(ctx *gin.Context) {
		user, pass, ok := ctx.Request.BasicAuth()
		if !ok || user != adminUsername {
			ctx.Header("WWW-Authenticate", `Basic realm="admin"`)
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		if bcrypt.CompareHashAndPassword(hash, []byte(pass)) != nil {
			ctx.AbortWithStatus(http.StatusForbidden)

			return
		}

		ctx.Next()
	}
}
