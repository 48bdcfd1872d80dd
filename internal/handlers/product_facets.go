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

/*
Facet derivation for the dependent filter UI: brand constrains model,
brand+model constrain storage. Values come from active products only and
register implicitly the moment a product carries them.
*/

func GetProductBrands(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/brands/list"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		brands, err := products.Brands(ctx)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d brands", route, len(brands))
		c.JSON(http.StatusOK, gin.H{
			"message": "brands retrieved",
			"brands":  brands,
		})
	}
}

func GetProductCategories(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/categories/list"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		categories, err := products.Categories(ctx)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d categories", route, len(categories))
		c.JSON(http.StatusOK, gin.H{
			"message":    "categories retrieved",
			"categories": categories,
		})
	}
}

func GetProductModels(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/models/list"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		modelNames, err := products.Models(ctx, strings.TrimSpace(c.Query("brand")))
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d models", route, len(modelNames))
		c.JSON(http.StatusOK, gin.H{
			"message": "models retrieved",
			"models":  modelNames,
		})
	}
}

func GetProductStorages(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/storages/list"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		storages, err := products.Storages(
			ctx,
			strings.TrimSpace(c.Query("brand")),
			strings.TrimSpace(c.Query("model")),
		)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d storages", route, len(storages))
		c.JSON(http.StatusOK, gin.H{
			"message":  "storages retrieved",
			"storages": storages,
		})
	}
}
