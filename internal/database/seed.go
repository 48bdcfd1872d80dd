package database

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"masstok/internal/models"
)

// EnsureDefaultAdmin creates the bootstrap admin account when the admins
// collection is empty. Without at least one admin nobody can log in.
func EnsureDefaultAdmin(db *mongo.Database, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		log.Println("EnsureDefaultAdmin: ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping seed")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.Collection("admins").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Name:      strings.TrimSpace(name),
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	if _, err := db.Collection("admins").InsertOne(ctx, admin); err != nil {
		return err
	}

	log.Println("EnsureDefaultAdmin: seeded admin", email)
	return nil
}
