package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"masstok/internal/store"
)

/*
GET /api/products/public
- price-list frontend
- always restricted to active products, no pagination
*/
func GetPublicProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/public"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit category=%s brand=%s search=%s",
			route,
			c.Query("category"),
			c.Query("brand"),
			c.Query("search"),
		)

		active := true
		filter := store.ProductFilter{
			Category: strings.TrimSpace(c.Query("category")),
			Brand:    strings.TrimSpace(c.Query("brand")),
			Search:   strings.TrimSpace(c.Query("search")),
			IsActive: &active,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, count, err := products.List(ctx, filter, nil)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		if err := products.AttachCreators(ctx, list); err != nil {
			log.Printf("[%s] creator lookup failed: %v", route, err)
		}

		log.Printf("[%s] returning %d products", route, len(list))
		c.JSON(http.StatusOK, gin.H{
			"message":  "products retrieved",
			"products": list,
			"count":    count,
		})
	}
}

/*
GET /api/products/:id
- single product, active or not
*/
func GetProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		product, err := products.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, route, err, "product not found")
			return
		}

		if err := products.AttachCreator(ctx, &product); err != nil {
			log.Printf("[%s] creator lookup failed: %v", route, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "product retrieved",
			"product": product,
		})
	}
}
