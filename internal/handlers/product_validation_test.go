package handlers

import (
	"encoding/json"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func validCreateRequest() ProductCreateRequest {
	return ProductCreateRequest{
		Name:     "iPhone 15",
		Brand:    "Apple",
		Model:    "15",
		Storage:  "128GB",
		Category: "TELEFON",
		Colors: []ProductColorInput{
			{Name: "Black", Hex: "#000000"},
		},
		CashPrice: floatPtr(45000),
		VisaPrice: floatPtr(47000),
	}
}

func fieldSet(errs []FieldError) map[string]bool {
	set := make(map[string]bool, len(errs))
	for _, e := range errs {
		set[e.Field] = true
	}
	return set
}

func TestValidateProductCreateAcceptsValidRequest(t *testing.T) {
	product, errs := validateProductCreate(validCreateRequest())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if !product.IsActive {
		t.Fatal("new products must default to active")
	}
	if product.CashPrice != 45000 || product.VisaPrice != 47000 {
		t.Fatalf("prices not carried over: %+v", product)
	}
	if len(product.Colors) != 1 || product.Colors[0].Hex != "#000000" {
		t.Fatalf("colors not carried over: %+v", product.Colors)
	}
	if !product.Colors[0].Available {
		t.Fatal("color availability must default to true")
	}
}

func TestValidateProductCreateCollectsAllViolations(t *testing.T) {
	_, errs := validateProductCreate(ProductCreateRequest{})

	fields := fieldSet(errs)
	for _, field := range []string{"name", "brand", "model", "storage", "category", "colors", "cashPrice", "visaPrice"} {
		if !fields[field] {
			t.Fatalf("expected violation for %s, got %v", field, errs)
		}
	}
}

func TestValidateProductCreateRejectsWhitespaceOnlyFields(t *testing.T) {
	req := validCreateRequest()
	req.Brand = "   "
	_, errs := validateProductCreate(req)
	if !fieldSet(errs)["brand"] {
		t.Fatalf("expected brand violation, got %v", errs)
	}
}

func TestHexColorValidation(t *testing.T) {
	valid := []string{"#000000", "#FFFFFF", "#abc", "#AbC123", "#fff"}
	for _, hex := range valid {
		if !hexColorPattern.MatchString(hex) {
			t.Fatalf("expected %q to be valid", hex)
		}
	}

	invalid := []string{"", "000000", "#00000", "#0000000", "#ggg", "#12345g", "red", "# fff"}
	for _, hex := range invalid {
		if hexColorPattern.MatchString(hex) {
			t.Fatalf("expected %q to be invalid", hex)
		}
	}
}

func TestValidateProductCreateNamesPositionalColorFields(t *testing.T) {
	req := validCreateRequest()
	req.Colors = []ProductColorInput{
		{Name: "Black", Hex: "#000000"},
		{Name: "", Hex: "nope"},
	}

	_, errs := validateProductCreate(req)
	fields := fieldSet(errs)
	if !fields["colors[1].name"] || !fields["colors[1].hex"] {
		t.Fatalf("expected positional color violations, got %v", errs)
	}
	if fields["colors[0].name"] || fields["colors[0].hex"] {
		t.Fatalf("valid color entry flagged: %v", errs)
	}
}

func TestValidateProductCreateRejectsNegativePrices(t *testing.T) {
	req := validCreateRequest()
	req.CashPrice = floatPtr(-1)
	_, errs := validateProductCreate(req)
	if !fieldSet(errs)["cashPrice"] {
		t.Fatalf("expected cashPrice violation, got %v", errs)
	}
}

func TestSanitizeAccessoriesDropsBlankRows(t *testing.T) {
	var req ProductCreateRequest
	body := `{
		"accessories": [
			{"name": "Charger", "price": 500, "available": true},
			{"name": "", "price": 100},
			{"name": "Case", "price": ""},
			{"name": "Cable", "price": "250.5"}
		]
	}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	var errs []FieldError
	kept := sanitizeAccessories(&errs, req.Accessories)
	if len(errs) != 0 {
		t.Fatalf("blank rows must be dropped silently, got %v", errs)
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept accessories, got %d: %+v", len(kept), kept)
	}
	if kept[0].Name != "Charger" || kept[0].Price != 500 {
		t.Fatalf("unexpected first accessory: %+v", kept[0])
	}
	if kept[1].Name != "Cable" || kept[1].Price != 250.5 {
		t.Fatalf("string price not parsed: %+v", kept[1])
	}
}

func TestSanitizeAccessoriesRejectsNegativePrice(t *testing.T) {
	var req ProductCreateRequest
	body := `{"accessories": [{"name": "Charger", "price": -5}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	var errs []FieldError
	kept := sanitizeAccessories(&errs, req.Accessories)
	if len(kept) != 0 {
		t.Fatalf("negative-price accessory must not be kept: %+v", kept)
	}
	if !fieldSet(errs)["accessories[0].price"] {
		t.Fatalf("expected accessories[0].price violation, got %v", errs)
	}
}

func TestBuildProductUpdateValidatesOnlyPresentFields(t *testing.T) {
	set, errs := buildProductUpdate(ProductUpdateRequest{CashPrice: floatPtr(50000)})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if set["cashPrice"] != 50000.0 {
		t.Fatalf("expected cashPrice in update, got %v", set)
	}
	if _, ok := set["colors"]; ok {
		t.Fatal("absent fields must not appear in the update")
	}
	if _, ok := set["name"]; ok {
		t.Fatal("absent fields must not appear in the update")
	}
}

func TestBuildProductUpdateRejectsEmptyColorsWholesale(t *testing.T) {
	colors := []ProductColorInput{}
	_, errs := buildProductUpdate(ProductUpdateRequest{Colors: &colors})
	if !fieldSet(errs)["colors"] {
		t.Fatalf("supplied colors array must satisfy the full shape rules, got %v", errs)
	}
}

func TestBuildProductUpdateAllowsDeactivation(t *testing.T) {
	inactive := false
	set, errs := buildProductUpdate(ProductUpdateRequest{IsActive: &inactive})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if set["isActive"] != false {
		t.Fatalf("expected isActive=false, got %v", set)
	}
}

func TestPriceValueUnmarshal(t *testing.T) {
	tests := []struct {
		raw   string
		set   bool
		value float64
	}{
		{`100`, true, 100},
		{`100.5`, true, 100.5},
		{`"75"`, true, 75},
		{`""`, false, 0},
		{`"  "`, false, 0},
		{`"abc"`, false, 0},
		{`null`, false, 0},
	}
	for _, tt := range tests {
		var p priceValue
		if err := json.Unmarshal([]byte(tt.raw), &p); err != nil {
			t.Fatalf("unmarshal %s failed: %v", tt.raw, err)
		}
		if p.set != tt.set || p.value != tt.value {
			t.Fatalf("unmarshal %s: got set=%t value=%v, want set=%t value=%v",
				tt.raw, p.set, p.value, tt.set, tt.value)
		}
	}
}
