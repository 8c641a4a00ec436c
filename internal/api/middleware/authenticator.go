package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/jwthelper"
)

// identityKey is the context key the handlers read the caller from.
const identityKey = "identity"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// Identity attaches the identity from a Bearer token to the request
// context when one is presented. Requests without a token pass through
// anonymously: handlers that also accept raw keys resolve those
// themselves. A presented but invalid token is rejected.
func (a *Authenticator) Identity() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()

			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed Authorization header"})

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})

			return
		}

		id, err := claims.SubjectID()
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})

			return
		}

		ctx.Set(identityKey, domain.Identity{
			Role:   domain.Role(claims.Role),
			ID:     id,
			TeamID: claims.TeamID,
		})
		ctx.Next()
	}
}

// IdentityFromContext returns the identity placed by Identity, if any.
func IdentityFromContext(ctx *gin.Context) (domain.Identity, bool) {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}

	identity, ok := value.(domain.Identity)

	return identity, ok
}
