package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"masstok/internal/middleware"
	"masstok/internal/models"
)

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

/*
POST /api/auth/login
  - answers {token, admin}; the client persists both and attaches the
    token as a bearer header from then on
*/
func Login(db *mongo.Database, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/auth/login"
		defer handlePanic(c, route)

		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "email and password are required")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || strings.TrimSpace(req.Password) == "" {
			respondWithError(c, http.StatusBadRequest, route, "email and password are required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var admin models.Admin
		err := db.Collection("admins").FindOne(ctx, bson.M{"email": email}).Decode(&admin)
		if err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(admin.Password),
			[]byte(req.Password),
		); err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		claims := jwt.MapClaims{
			"sub":   admin.ID.Hex(),
			"role":  "admin",
			"name":  admin.Name,
			"email": admin.Email,
			"exp":   time.Now().Add(accessTTL).Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] admin %s logged in", route, email)
		c.JSON(http.StatusOK, gin.H{
			"message": "login successful",
			"token":   signed,
			"admin":   admin.Profile(),
		})
	}
}

/*
GET /api/auth/me
  - echoes the identity carried by the verified token; clients use it to
    restore a session from storage
*/
func GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/auth/me"
		defer handlePanic(c, route)

		identity, ok := middleware.AdminIdentity(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "session expired or invalid")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"admin": models.CreatorRef{
				ID:    identity.ID,
				Name:  identity.Name,
				Email: identity.Email,
			},
		})
	}
}
