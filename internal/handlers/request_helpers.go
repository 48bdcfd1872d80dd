package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"masstok/internal/config"
	"masstok/internal/store"
)

// FieldError is one violated validation rule. Validation collects every
// violation before responding, never just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

func respondValidationErrors(c *gin.Context, route string, errs []FieldError) {
	log.Printf("[%s] returning 400: %d validation errors", route, len(errs))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": "invalid data",
		"errors":  errs,
	})
}

// respondServerError redacts the underlying failure outside development
// mode but always keeps the request alive with a JSON envelope.
func respondServerError(c *gin.Context, route string, err error) {
	log.Printf("[%s] returning 500: %v", route, err)
	message := "internal server error"
	if config.AppEnv.IsDevelopment() && err != nil {
		message = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": message})
}

// respondStoreError maps the store error taxonomy onto HTTP statuses:
// NotFound → 404, DuplicateKey → 400, anything else → 500.
func respondStoreError(c *gin.Context, route string, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(c, http.StatusNotFound, route, notFoundMessage)
	case errors.Is(err, store.ErrDuplicateKey):
		respondWithError(c, http.StatusBadRequest, route, "this product name is already in use")
	default:
		respondServerError(c, route, err)
	}
}
