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

// ProductStore owns the products collection. All mutations bump updatedAt;
// uniqueness of the product name is enforced by the name_unique index and
// surfaces as ErrDuplicateKey.
type ProductStore struct {
	db *mongo.Database
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) col() *mongo.Collection {
	return s.db.Collection("products")
}

func (s *ProductStore) Insert(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := s.col().InsertOne(ctx, p)
	if err != nil {
		return translateMongoError(err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *ProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return models.Product{}, translateMongoError(err)
	}
	return p, nil
}

// Patch merges only the supplied fields into the document and returns the
// updated state. Fields absent from set are left untouched.
func (s *ProductStore) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Product, error) {
	set["updatedAt"] = time.Now()

	var updated models.Product
	err := s.col().FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Product{}, translateMongoError(err)
	}
	return updated, nil
}

// SetActive flips the soft-delete flag and nothing else.
func (s *ProductStore) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (models.Product, error) {
	return s.Patch(ctx, id, bson.M{"isActive": active})
}

// Remove permanently deletes the document. There is no recovery path.
func (s *ProductStore) Remove(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateMongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the matching page sorted by descending creation time plus
// the total match count. A nil page returns the full matching set.
func (s *ProductStore) List(ctx context.Context, f ProductFilter, page *Page) ([]models.Product, int64, error) {
	filter := f.Query()

	total, err := s.col().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if page != nil {
		opts.SetSkip(page.Skip()).SetLimit(page.Limit)
	}

	cursor, err := s.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Distinct returns the sorted distinct values of field across active
// documents, optionally narrowed by extra predicates (dependent facets).
func (s *ProductStore) Distinct(ctx context.Context, field string, extra bson.M) ([]string, error) {
	filter := bson.M{"isActive": true}
	for key, value := range extra {
		filter[key] = value
	}

	raw, err := s.col().Distinct(ctx, field, filter)
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

// AttachCreators resolves the createdBy references for a batch of
// products with a single $in lookup against the admins collection.
// Unknown references are left nil rather than failing the read.
func (s *ProductStore) AttachCreators(ctx context.Context, products []models.Product) error {
	seen := map[primitive.ObjectID]struct{}{}
	ids := make([]primitive.ObjectID, 0)
	for _, p := range products {
		if p.CreatedByID.IsZero() {
			continue
		}
		if _, ok := seen[p.CreatedByID]; ok {
			continue
		}
		seen[p.CreatedByID] = struct{}{}
		ids = append(ids, p.CreatedByID)
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := s.db.Collection("admins").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var admins []models.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return err
	}

	refByID := make(map[primitive.ObjectID]models.CreatorRef, len(admins))
	for _, admin := range admins {
		refByID[admin.ID] = admin.Profile()
	}

	for i := range products {
		if ref, ok := refByID[products[i].CreatedByID]; ok {
			creator := ref
			products[i].CreatedBy = &creator
		}
	}
	return nil
}

// AttachCreator is the single-document variant of AttachCreators.
func (s *ProductStore) AttachCreator(ctx context.Context, p *models.Product) error {
	if p == nil || p.CreatedByID.IsZero() {
		return nil
	}

	var admin models.Admin
	err := s.db.Collection("admins").FindOne(ctx, bson.M{"_id": p.CreatedByID}).Decode(&admin)
	if err != nil {
		if translateMongoError(err) == ErrNotFound {
			return nil
		}
		return err
	}

	ref := admin.Profile()
	p.CreatedBy = &ref
	return nil
}
