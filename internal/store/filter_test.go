package store

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestProductFilterEmptyQueryMatchesEverything(t *testing.T) {
	query := ProductFilter{}.Query()
	if len(query) != 0 {
		t.Fatalf("expected empty predicate, got %v", query)
	}
}

func TestProductFilterFacetsAreCaseInsensitiveSubstrings(t *testing.T) {
	query := ProductFilter{Category: "TELEFON", Brand: "apple"}.Query()

	category, ok := query["category"].(bson.M)
	if !ok {
		t.Fatalf("expected category predicate, got %v", query["category"])
	}
	if category["$regex"] != "TELEFON" || category["$options"] != "i" {
		t.Fatalf("unexpected category predicate: %v", category)
	}

	brand, ok := query["brand"].(bson.M)
	if !ok {
		t.Fatalf("expected brand predicate, got %v", query["brand"])
	}
	if brand["$regex"] != "apple" || brand["$options"] != "i" {
		t.Fatalf("unexpected brand predicate: %v", brand)
	}
}

func TestProductFilterSearchSpansNameBrandModel(t *testing.T) {
	query := ProductFilter{Search: "iphone"}.Query()

	or, ok := query["$or"].([]bson.M)
	if !ok || len(or) != 3 {
		t.Fatalf("expected 3-way $or, got %v", query["$or"])
	}

	fields := make([]string, 0, len(or))
	for _, clause := range or {
		for field := range clause {
			fields = append(fields, field)
		}
	}
	if !reflect.DeepEqual(fields, []string{"name", "brand", "model"}) {
		t.Fatalf("unexpected search fields: %v", fields)
	}
}

func TestProductFilterEscapesRegexMetacharacters(t *testing.T) {
	query := ProductFilter{Search: "c++ (pro)"}.Query()

	or := query["$or"].([]bson.M)
	pattern := or[0]["name"].(bson.M)["$regex"].(string)
	if pattern != `c\+\+ \(pro\)` {
		t.Fatalf("expected escaped pattern, got %q", pattern)
	}
}

func TestProductFilterIsActiveTriState(t *testing.T) {
	if _, ok := (ProductFilter{}).Query()["isActive"]; ok {
		t.Fatal("nil IsActive must not constrain the query")
	}

	inactive := false
	query := ProductFilter{IsActive: &inactive}.Query()
	if query["isActive"] != false {
		t.Fatalf("expected isActive=false, got %v", query["isActive"])
	}
}

func TestEqualsFoldAnchorsThePattern(t *testing.T) {
	predicate := equalsFold("Apple")
	if predicate["$regex"] != "^Apple$" || predicate["$options"] != "i" {
		t.Fatalf("unexpected predicate: %v", predicate)
	}
}

func TestPageSkip(t *testing.T) {
	page := Page{Number: 3, Limit: 10}
	if page.Skip() != 20 {
		t.Fatalf("expected skip 20, got %d", page.Skip())
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.limit); got != tt.want {
			t.Fatalf("PageCount(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestAccessoryFilterStatusIsExactMatch(t *testing.T) {
	query := AccessoryFilter{Status: "inactive"}.Query()
	if query["status"] != "inactive" {
		t.Fatalf("expected exact status match, got %v", query["status"])
	}
}
