package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const identityKey = "admin"

var ErrUnauthorized = errors.New("unauthorized")

// Identity is the authenticated admin attached to the request context.
type Identity struct {
	ID    primitive.ObjectID
	Name  string
	Email string
}

// Authenticate verifies a raw HS256 token and extracts the admin identity.
// It is a pure boundary check: every request passes through it, there is
// no server-side session state.
func Authenticate(secret, raw string) (Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrUnauthorized
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return Identity{}, ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return Identity{ID: id, Name: name, Email: email}, nil
}

// BearerToken pulls the token out of an Authorization header.
func BearerToken(header string) (string, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return "", ErrUnauthorized
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrUnauthorized
	}
	return parts[1], nil
}

// AdminAuth guards admin routes. Absent or invalid tokens answer 401 with
// a JSON message; clients react by clearing their stored session.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or invalid token"})
			return
		}

		identity, err := Authenticate(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "session expired or invalid"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// AdminIdentity reads the identity stored by AdminAuth.
func AdminIdentity(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
