package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"masstok/internal/models"
	"masstok/internal/store"
)

/* =======================
   REQUEST MODELS
======================= */

type AccessoryCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors"`
	Status      string   `json:"status"`
	Image       string   `json:"image"`
	Stock       *int     `json:"stock"`
}

type AccessoryUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Colors      *[]string `json:"colors"`
	Status      *string   `json:"status"`
	Image       *string   `json:"image"`
	Stock       *int      `json:"stock"`
}

type AccessoryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

/* =======================
   VALIDATION
======================= */

func validAccessoryStatus(status string) bool {
	return status == models.AccessoryStatusActive || status == models.AccessoryStatusInactive
}

func sanitizeColorNames(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, color := range colors {
		if trimmed := strings.TrimSpace(color); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validateAccessoryCreate(req AccessoryCreateRequest) (models.Accessory, []FieldError) {
	var errs []FieldError

	validateRequiredText(&errs, "name", req.Name)
	validatePrice(&errs, "price", req.Price)

	status := req.Status
	if status == "" {
		status = models.AccessoryStatusActive
	}
	if !validAccessoryStatus(status) {
		errs = append(errs, FieldError{Field: "status", Message: "status must be active or inactive"})
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	if stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock cannot be negative"})
	}

	if len(errs) > 0 {
		return models.Accessory{}, errs
	}

	return models.Accessory{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Category:    store.NormalizeCategoryName(req.Category),
		Colors:      sanitizeColorNames(req.Colors),
		Status:      status,
		Image:       strings.TrimSpace(req.Image),
		Stock:       stock,
	}, nil
}

func buildAccessoryUpdate(req AccessoryUpdateRequest) (bson.M, []FieldError) {
	var errs []FieldError
	set := bson.M{}

	if req.Name != nil {
		validateRequiredText(&errs, "name", *req.Name)
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		validatePrice(&errs, "price", req.Price)
		set["price"] = *req.Price
	}
	if req.Category != nil {
		set["category"] = store.NormalizeCategoryName(*req.Category)
	}
	if req.Colors != nil {
		set["colors"] = sanitizeColorNames(*req.Colors)
	}
	if req.Status != nil {
		if !validAccessoryStatus(*req.Status) {
			errs = append(errs, FieldError{Field: "status", Message: "status must be active or inactive"})
		}
		set["status"] = *req.Status
	}
	if req.Image != nil {
		set["image"] = strings.TrimSpace(*req.Image)
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			errs = append(errs, FieldError{Field: "stock", Message: "stock cannot be negative"})
		}
		set["stock"] = *req.Stock
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return set, nil
}

/* =======================
   HANDLERS
======================= */

func GetAccessories(accessories *store.AccessoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/accessories"
		defer handlePanic(c, route)

		filter := store.AccessoryFilter{
			Category: strings.TrimSpace(c.Query("category")),
			Status:   strings.TrimSpace(c.Query("status")),
			Search:   strings.TrimSpace(c.Query("search")),
		}
		if filter.Status != "" && !validAccessoryStatus(filter.Status) {
			respondWithError(c, http.StatusBadRequest, route, "status must be active or inactive")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := accessories.List(ctx, filter)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d accessories", route, len(list))
		c.JSON(http.StatusOK, gin.H{
			"message":     "accessories retrieved",
			"accessories": list,
			"count":       len(list),
		})
	}
}

// GetAccessoryCategories answers a bare array; the admin panel consumes
// the response body directly as a string list.
func GetAccessoryCategories(accessories *store.AccessoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/accessories/categories"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		categories, err := accessories.DistinctCategories(ctx)
		if err != nil {
			respondServerError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d categories", route, len(categories))
		c.JSON(http.StatusOK, categories)
	}
}

func GetAccessory(accessories *store.AccessoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/accessories/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "accessory not found")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		accessory, err := accessories.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, route, err, "accessory not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "accessory retrieved",
			"accessory": accessory,
		})
	}
}

func CreateAccessory(accessories *store.AccessoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/accessories"
		defer handlePanic(c, route)

		var req AccessoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		accessory, errs := validateAccessoryCreate(req)
		if len(errs) > 0 {
			respondValidationErrors(c, route, errs)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := accessories.Insert(ctx, &accessory); err != nil {
			respondStoreError(c, route, err, "accessory not found")
			return
		}

		log.Printf("[%s] created accessory %s", route, accessory.ID.Hex())
		c.JSON(http.StatusCreated, gin.H{
			"message":   "accessory created",
			"accessory": accessory,
		})
	}
}

func UpdateAccessory(accessories *store.AccessoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/accessories/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "accessory not found")
			return
		}

		var req AccessoryUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		set, errs := buildAccessoryUpdate(req)
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

		var previousImage string
		if req.Image != nil {
			existing, err := accessories.GetByID(ctx, id)
			if err != nil {
				respondStoreError(c, route, err, "accessory not found")
				return
			}
			previousImage = existing.Image
		}

		updated, err := accessories.Patch(ctx, id, set)
		if err != nil {
			respondStoreError(c, route, err, "accessory not found")
			return
		}

		if req.Image != nil && previousImage != "" && previousImage != updated.Image {
			if err := safeDeleteUpload(previousImage); err != nil {
				log.Printf("[%s] old image delete failed: %v", route, err)
			}
		}

		log.Printf("[%s] updated accessory %s", route, id.Hex())
		c.JSON(http.StatusOK, gin.H{
			"message":   "accessory updated",
			"accessory": updated,
		})
	}
}

func DeleteAccessory(accessories *store.AccessoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/accessories/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "accessory not found")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		existing, err := accessories.GetByID(ctx, id)
		if err != nil {
			respondStoreError(c, route, err, "accessory not found")
			return
		}

		if err := accessories.Remove(ctx, id); err != nil {
			respondStoreError(c, route, err, "accessory not found")
			return
		}

		if err := safeDeleteUpload(existing.Image); err != nil {
			log.Printf("[%s] image delete failed: %v", route, err)
		}

		log.Printf("[%s] deleted accessory %s", route, id.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "accessory deleted"})
	}
}

func UpdateAccessoryStatus(accessories *store.AccessoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/accessories/:id/status"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "accessory not found")
			return
		}

		var req AccessoryStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "status required")
			return
		}
		if !validAccessoryStatus(req.Status) {
			respondWithError(c, http.StatusBadRequest, route, "status must be active or inactive")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := accessories.SetStatus(ctx, id, req.Status)
		if err != nil {
			respondStoreError(c, route, err, "accessory not found")
			return
		}

		log.Printf("[%s] accessory %s status=%s", route, id.Hex(), updated.Status)
		c.JSON(http.StatusOK, gin.H{
			"message":   "accessory status updated",
			"accessory": updated,
		})
	}
}
