package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"masstok/internal/config"
	"masstok/internal/database"
	"masstok/internal/handlers"
	"masstok/internal/middleware"
	"masstok/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureCategoryIndexes(db); err != nil {
		log.Printf("category index warning: %v", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Printf("admin index warning: %v", err)
	}
	if err := database.EnsureDefaultAdmin(
		db,
		config.AppEnv.AdminName,
		config.AppEnv.AdminEmail,
		config.AppEnv.AdminPassword,
	); err != nil {
		log.Printf("admin seed warning: %v", err)
	}

	products := store.NewProductStore(db)
	accessories := store.NewAccessoryStore(db)
	categories := store.NewCategoryStore(db)

	r := gin.Default()
	r.Use(middleware.CORS(config.AppEnv.AllowedOrigins))
	r.Static("/public", "./public")

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "MAS Teknoloji Admin API",
			"version": "1.0.0",
			"status":  "active",
		})
	})

	adminAuth := middleware.AdminAuth(config.AppEnv.JWTSecret)

	api := r.Group("/api")
	{
		api.POST("/auth/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
		api.GET("/auth/me", adminAuth, handlers.GetMe())

		api.GET("/products/public", handlers.GetPublicProducts(products))
		api.GET("/products/brands/list", handlers.GetProductBrands(products))
		api.GET("/products/categories/list", handlers.GetProductCategories(products))
		api.GET("/products/models/list", handlers.GetProductModels(products))
		api.GET("/products/storages/list", handlers.GetProductStorages(products))
		api.GET("/products/:id", handlers.GetProduct(products))

		api.GET("/products", adminAuth, handlers.GetAllProducts(products))
		api.POST("/products", adminAuth, handlers.CreateProduct(products))
		api.PUT("/products/:id", adminAuth, handlers.UpdateProduct(products))
		api.DELETE("/products/:id", adminAuth, handlers.DeleteProduct(products))
		api.PATCH("/products/:id/restore", adminAuth, handlers.RestoreProduct(products))

		api.GET("/categories", handlers.GetCategories(categories))
		api.POST("/categories", adminAuth, handlers.CreateCategory(categories))

		api.GET("/accessories", handlers.GetAccessories(accessories))
		api.GET("/accessories/categories", handlers.GetAccessoryCategories(accessories))
		api.GET("/accessories/:id", handlers.GetAccessory(accessories))
		api.POST("/accessories", adminAuth, handlers.CreateAccessory(accessories))
		api.PUT("/accessories/:id", adminAuth, handlers.UpdateAccessory(accessories))
		api.DELETE("/accessories/:id", adminAuth, handlers.DeleteAccessory(accessories))
		api.PATCH("/accessories/:id/status", adminAuth, handlers.UpdateAccessoryStatus(accessories))

		api.POST("/uploads", adminAuth, handlers.UploadImage())
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "endpoint not found"})
	})

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
