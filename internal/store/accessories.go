package store

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"masstok/internal/models"
)

// AccessoryFilter narrows the standalone accessory listing.
type AccessoryFilter struct {
	Category string
	Status   string
	Search   string
}

func (f AccessoryFilter) Query() bson.M {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = containsFold(f.Category)
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			{"name": containsFold(f.Search)},
			{"description": containsFold(f.Search)},
		}
	}

	return filter
}

type AccessoryStore struct {
	db *mongo.Database
}

func NewAccessoryStore(db *mongo.Database) *AccessoryStore {
	return &AccessoryStore{db: db}
}

func (s *AccessoryStore) col() *mongo.Collection {
	return s.db.Collection("accessories")
}

func (s *AccessoryStore) Insert(ctx context.Context, a *models.Accessory) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := s.col().InsertOne(ctx, a)
	if err != nil {
		return translateMongoError(err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *AccessoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Accessory, error) {
	var a models.Accessory
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return models.Accessory{}, translateMongoError(err)
	}
	return a, nil
}

func (s *AccessoryStore) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Accessory, error) {
	set["updatedAt"] = time.Now()

	var updated models.Accessory
	err := s.col().FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Accessory{}, translateMongoError(err)
	}
	return updated, nil
}

func (s *AccessoryStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Accessory, error) {
	return s.Patch(ctx, id, bson.M{"status": status})
}

// Remove is a hard delete; accessories have no soft-delete flag, their
// visibility is governed by status instead.
func (s *AccessoryStore) Remove(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateMongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AccessoryStore) List(ctx context.Context, f AccessoryFilter) ([]models.Accessory, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col().Find(ctx, f.Query(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accessories := make([]models.Accessory, 0)
	if err := cursor.All(ctx, &accessories); err != nil {
		return nil, err
	}
	return accessories, nil
}

// DistinctCategories lists the accessory category values in use, sorted
// ascending.
func (s *AccessoryStore) DistinctCategories(ctx context.Context) ([]string, error) {
	raw, err := s.col().Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if value, ok := item.(string); ok && value != "" {
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values, nil
}
