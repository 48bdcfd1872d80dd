package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"masstok/internal/store"
)

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

/*
GET /api/categories
- registered accessory category names, sorted ascending
*/
func GetCategories(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/categories"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		names, err := categories.List(ctx)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d categories", route, len(names))
		c.JSON(http.StatusOK, gin.H{
			"message":    "categories retrieved",
			"categories": names,
		})
	}
}

/*
POST /api/categories
  - idempotent by value: "kilif" and "KILIF" register the same entry,
    the second call answers exists=true instead of failing
*/
func CreateCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/categories"
		defer handlePanic(c, route)

		var req CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		name, exists, err := categories.Ensure(ctx, req.Name)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		status := http.StatusCreated
		message := "category created"
		if exists {
			status = http.StatusOK
			message = "category already exists"
		}

		log.Printf("[%s] %s: %s", route, message, name)
		c.JSON(status, gin.H{
			"message":  message,
			"category": name,
			"exists":   exists,
		})
	}
}
