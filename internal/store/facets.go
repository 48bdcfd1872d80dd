package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Facet reads. Values exist only as the distinct set of strings carried by
// active products; there is no managed taxonomy behind them. The dependent
// facets (models by brand, storages by brand+model) use exact
// case-insensitive matching on the already-chosen upstream value.

func (s *ProductStore) Brands(ctx context.Context) ([]string, error) {
	return s.Distinct(ctx, "brand", nil)
}

func (s *ProductStore) Categories(ctx context.Context) ([]string, error) {
	return s.Distinct(ctx, "category", nil)
}

func (s *ProductStore) Models(ctx context.Context, brand string) ([]string, error) {
	extra := bson.M{}
	if brand != "" {
		extra["brand"] = equalsFold(brand)
	}
	return s.Distinct(ctx, "model", extra)
}

func (s *ProductStore) Storages(ctx context.Context, brand, model string) ([]string, error) {
	extra := bson.M{}
	if brand != "" {
		extra["brand"] = equalsFold(brand)
	}
	if model != "" {
		extra["model"] = equalsFold(model)
	}
	return s.Distinct(ctx, "storage", extra)
}
