package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

// Claims is the token shape the identity provider issues: the subject is
// the user id and the role claim is trusted as-is.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity extracts the authenticated actor from a Bearer token and stores
// it in the request context. Requests without a valid token are rejected.
func Identity(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "missing authorization header"},
			)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "invalid authorization header format"},
			)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "invalid token"},
			)
			return
		}

		c.Set(actorKey, domain.Actor{ID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// RequireRole aborts with 403 unless the actor's role is in the allowed
// set. Must run after Identity.
func RequireRole(roles ...string) ginext.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok || !allowed[actor.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"success": false, "message": "forbidden"},
			)
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor stored by Identity.
func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
