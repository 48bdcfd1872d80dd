package handlers

import (
	"testing"

	"masstok/internal/models"
)

func intPtr(v int) *int { return &v }

func TestValidateAccessoryCreateDefaults(t *testing.T) {
	accessory, errs := validateAccessoryCreate(AccessoryCreateRequest{
		Name:     "Telefon Kılıfı",
		Price:    floatPtr(250),
		Category: "kilif",
		Colors:   []string{" Black ", "", "Red"},
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if accessory.Status != models.AccessoryStatusActive {
		t.Fatalf("status must default to active, got %q", accessory.Status)
	}
	if accessory.Stock != 0 {
		t.Fatalf("stock must default to 0, got %d", accessory.Stock)
	}
	if accessory.Category != "KILIF" {
		t.Fatalf("category must be normalized, got %q", accessory.Category)
	}
	if len(accessory.Colors) != 2 || accessory.Colors[0] != "Black" || accessory.Colors[1] != "Red" {
		t.Fatalf("colors not sanitized: %v", accessory.Colors)
	}
}

func TestValidateAccessoryCreateCollectsAllViolations(t *testing.T) {
	_, errs := validateAccessoryCreate(AccessoryCreateRequest{
		Name:   "  ",
		Status: "archived",
		Stock:  intPtr(-1),
	})

	fields := fieldSet(errs)
	for _, field := range []string{"name", "price", "status", "stock"} {
		if !fields[field] {
			t.Fatalf("expected violation for %s, got %v", field, errs)
		}
	}
}

func TestValidateAccessoryCreateRejectsNegativePrice(t *testing.T) {
	_, errs := validateAccessoryCreate(AccessoryCreateRequest{
		Name:  "Kablo",
		Price: floatPtr(-10),
	})
	if !fieldSet(errs)["price"] {
		t.Fatalf("expected price violation, got %v", errs)
	}
}

func TestBuildAccessoryUpdatePartialSemantics(t *testing.T) {
	set, errs := buildAccessoryUpdate(AccessoryUpdateRequest{Price: floatPtr(300)})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if set["price"] != 300.0 {
		t.Fatalf("expected price in update, got %v", set)
	}
	if _, ok := set["name"]; ok {
		t.Fatal("absent fields must not appear in the update")
	}
}

func TestBuildAccessoryUpdateValidatesStatus(t *testing.T) {
	bad := "gone"
	_, errs := buildAccessoryUpdate(AccessoryUpdateRequest{Status: &bad})
	if !fieldSet(errs)["status"] {
		t.Fatalf("expected status violation, got %v", errs)
	}

	good := models.AccessoryStatusInactive
	set, errs := buildAccessoryUpdate(AccessoryUpdateRequest{Status: &good})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if set["status"] != models.AccessoryStatusInactive {
		t.Fatalf("expected status in update, got %v", set)
	}
}

func TestValidAccessoryStatus(t *testing.T) {
	if !validAccessoryStatus("active") || !validAccessoryStatus("inactive") {
		t.Fatal("active and inactive must be accepted")
	}
	for _, status := range []string{"", "Active", "deleted", "ACTIVE"} {
		if validAccessoryStatus(status) {
			t.Fatalf("expected %q to be rejected", status)
		}
	}
}
