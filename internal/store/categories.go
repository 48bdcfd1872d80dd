package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"masstok/internal/models"
)

// CategoryStore is the registry of accessory category names. Registration
// is idempotent by value: names are uppercased before storage and posting
// an existing name is answered with exists=true instead of a duplicate.
type CategoryStore struct {
	db *mongo.Database
}

func NewCategoryStore(db *mongo.Database) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) col() *mongo.Collection {
	return s.db.Collection("categories")
}

// NormalizeCategoryName trims and uppercases a registry value. "kilif" and
// "KILIF" register the same category.
func NormalizeCategoryName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Ensure registers name if it is new and reports whether it already
// existed. The upsert makes concurrent registrations of the same value
// collapse onto one document.
func (s *CategoryStore) Ensure(ctx context.Context, name string) (string, bool, error) {
	normalized := NormalizeCategoryName(name)
	if normalized == "" {
		return "", false, errors.New("category name required")
	}

	res, err := s.col().UpdateOne(
		ctx,
		bson.M{"name": normalized},
		bson.M{"$setOnInsert": bson.M{
			"name":      normalized,
			"createdAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// A duplicate-key race on the upsert means another request
		// registered the value first.
		if translateMongoError(err) == ErrDuplicateKey {
			return normalized, true, nil
		}
		return "", false, err
	}

	return normalized, res.UpsertedCount == 0, nil
}

// List returns the registered names sorted ascending.
func (s *CategoryStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	sort.Strings(names)
	return names, nil
}
