package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"masstok/internal/middleware"
	"masstok/internal/store"
)

/* =======================
   GET (ADMIN) – LIST
======================= */

func GetAllProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		filter := store.ProductFilter{
			Category: strings.TrimSpace(c.Query("category")),
			Brand:    strings.TrimSpace(c.Query("brand")),
			Search:   strings.TrimSpace(c.Query("search")),
		}
		if raw := strings.TrimSpace(c.Query("isActive")); raw != "" {
			active := strings.EqualFold(raw, "true")
			filter.IsActive = &active
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		window := store.Page{Number: page, Limit: limit}
		list, total, err := products.List(ctx, filter, &window)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		if err := products.AttachCreators(ctx, list); err != nil {
			log.Printf("[%s] creator lookup failed: %v", route, err)
		}

		log.Printf("[%s] returning %d of %d products", route, len(list), total)
		c.JSON(http.StatusOK, gin.H{
			"message":  "products retrieved",
			"products": list,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
				"pages": store.PageCount(total, limit),
			},
		})
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		product, errs := validateProductCreate(req)
		if len(errs) > 0 {
			respondValidationErrors(c, route, errs)
			return
		}

		if identity, ok := middleware.AdminIdentity(c); ok {
			product.CreatedByID = identity.ID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := products.Insert(ctx, &product); err != nil {
			respondStoreError(c, route, err, "product not found")
			return
		}

		if err := products.AttachCreator(ctx, &product); err != nil {
			log.Printf("[%s] creator lookup failed: %v", route, err)
		}

		log.Printf("[%s] created product %s", route, product.ID.Hex())
		c.JSON(http.StatusCreated, gin.H{
			"message": "product created",
			"product": product,
		})
	}
}

/* =======================
   UPDATE (PARTIAL)
======================= */

func UpdateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		set, errs := buildProductUpdate(req)
		if len(errs) > 0 {
			respondValidationErrors(c, route, errs)
			return
		}
		if len(set) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := products.Patch(ctx, id, set)
		if err != nil {
			respondStoreError(c, route, err, "product not found")
			return
		}

		if err := products.AttachCreator(ctx, &updated); err != nil {
			log.Printf("[%s] creator lookup failed: %v", route, err)
		}

		log.Printf("[%s] updated product %s", route, id.Hex())
		c.JSON(http.StatusOK, gin.H{
			"message": "product updated",
			"product": updated,
		})
	}
}

/* =======================
   LIFECYCLE
   active ⇄ inactive → purged (terminal)
======================= */

type deleteMode int

const (
	deleteToggle deleteMode = iota
	deleteHard
)

// parseDeleteMode maps the endpoint's query flags onto the explicit mode
// enum. hard wins over toggle; the bare endpoint defaults to toggle.
func parseDeleteMode(toggleRaw, hardRaw string) (deleteMode, error) {
	if hardRaw != "" {
		hard, err := strconv.ParseBool(hardRaw)
		if err != nil {
			return 0, err
		}
		if hard {
			return deleteHard, nil
		}
	}
	if toggleRaw != "" {
		if _, err := strconv.ParseBool(toggleRaw); err != nil {
			return 0, err
		}
	}
	return deleteToggle, nil
}

func DeleteProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		mode, err := parseDeleteMode(c.Query("toggle"), c.Query("hard"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "toggle and hard must be boolean")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		switch mode {
		case deleteHard:
			if err := products.Remove(ctx, id); err != nil {
				respondStoreError(c, route, err, "product not found")
				return
			}
			log.Printf("[%s] purged product %s", route, id.Hex())
			c.JSON(http.StatusOK, gin.H{"message": "product permanently deleted"})

		default:
			existing, err := products.GetByID(ctx, id)
			if err != nil {
				respondStoreError(c, route, err, "product not found")
				return
			}

			updated, err := products.SetActive(ctx, id, !existing.IsActive)
			if err != nil {
				respondStoreError(c, route, err, "product not found")
				return
			}

			log.Printf("[%s] toggled product %s isActive=%t", route, id.Hex(), updated.IsActive)
			c.JSON(http.StatusOK, gin.H{
				"message": "product status toggled",
				"product": updated,
			})
		}
	}
}

func RestoreProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/products/:id/restore"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := products.SetActive(ctx, id, true)
		if err != nil {
			respondStoreError(c, route, err, "product not found")
			return
		}

		if err := products.AttachCreator(ctx, &updated); err != nil {
			log.Printf("[%s] creator lookup failed: %v", route, err)
		}

		log.Printf("[%s] restored product %s", route, id.Hex())
		c.JSON(http.StatusOK, gin.H{
			"message": "product restored",
			"product": updated,
		})
	}
}
