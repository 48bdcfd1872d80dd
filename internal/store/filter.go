package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductFilter carries the client-supplied listing facets. Zero values
// mean "no constraint"; IsActive is a tri-state so the admin listing can
// ask for inactive products explicitly while the public listing pins it
// to true.
type ProductFilter struct {
	Category string
	Brand    string
	Search   string
	IsActive *bool
}

// Query builds the mongo predicate for the filter. Substring matches are
// case-insensitive and the user input is always regex-escaped.
func (f ProductFilter) Query() bson.M {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = containsFold(f.Category)
	}
	if f.Brand != "" {
		filter["brand"] = containsFold(f.Brand)
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			{"name": containsFold(f.Search)},
			{"brand": containsFold(f.Search)},
			{"model": containsFold(f.Search)},
		}
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	return filter
}

func containsFold(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

func equalsFold(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

// Page is an optional skip/limit window for List.
type Page struct {
	Number int64
	Limit  int64
}

func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Limit
}

// PageCount computes ceil(total/limit) without floating point.
func PageCount(total, limit int64) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
