package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"masstok/internal/models"
)

var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

/* =======================
   REQUEST MODELS
======================= */

type ProductColorInput struct {
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	Available *bool  `json:"available"`
}

// ProductAccessoryInput tolerates the admin form sending price as either
// a number or a numeric string; rows left blank in the form are dropped
// at save time instead of being rejected.
type ProductAccessoryInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       priceValue `json:"price"`
	Available   *bool      `json:"available"`
}

type ProductCreateRequest struct {
	Name        string                  `json:"name"`
	Brand       string                  `json:"brand"`
	Model       string                  `json:"model"`
	Storage     string                  `json:"storage"`
	Category    string                  `json:"category"`
	Colors      []ProductColorInput     `json:"colors"`
	Accessories []ProductAccessoryInput `json:"accessories"`
	CashPrice   *float64                `json:"cashPrice"`
	VisaPrice   *float64                `json:"visaPrice"`
}

type ProductUpdateRequest struct {
	Name        *string                  `json:"name"`
	Brand       *string                  `json:"brand"`
	Model       *string                  `json:"model"`
	Storage     *string                  `json:"storage"`
	Category    *string                  `json:"category"`
	Colors      *[]ProductColorInput     `json:"colors"`
	Accessories *[]ProductAccessoryInput `json:"accessories"`
	CashPrice   *float64                 `json:"cashPrice"`
	VisaPrice   *float64                 `json:"visaPrice"`
	IsActive    *bool                    `json:"isActive"`
}

// priceValue accepts a JSON number or a numeric string. Blank and
// unparsable strings stay unset, mirroring how blank form rows behave.
type priceValue struct {
	value float64
	set   bool
}

func (p *priceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		p.value = parsed
		p.set = true
		return nil
	}

	var parsed float64
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	p.value = parsed
	p.set = true
	return nil
}

/* =======================
   VALIDATION
======================= */

func validateRequiredText(errs *[]FieldError, field, value string) {
	if strings.TrimSpace(value) == "" {
		*errs = append(*errs, FieldError{Field: field, Message: field + " is required"})
	}
}

func validateColors(errs *[]FieldError, colors []ProductColorInput) {
	if len(colors) == 0 {
		*errs = append(*errs, FieldError{Field: "colors", Message: "at least one color is required"})
		return
	}
	for i, color := range colors {
		if strings.TrimSpace(color.Name) == "" {
			*errs = append(*errs, FieldError{
				Field:   fmt.Sprintf("colors[%d].name", i),
				Message: "color name is required",
			})
		}
		if !hexColorPattern.MatchString(strings.TrimSpace(color.Hex)) {
			*errs = append(*errs, FieldError{
				Field:   fmt.Sprintf("colors[%d].hex", i),
				Message: "valid hex color code is required",
			})
		}
	}
}

func validatePrice(errs *[]FieldError, field string, price *float64) {
	if price == nil {
		*errs = append(*errs, FieldError{Field: field, Message: field + " must be numeric"})
		return
	}
	if *price < 0 {
		*errs = append(*errs, FieldError{Field: field, Message: field + " cannot be negative"})
	}
}

// sanitizeAccessories keeps only rows with a non-blank name and a parsed
// price; partially filled form rows are silently dropped. Kept rows with
// a negative price are a validation error.
func sanitizeAccessories(errs *[]FieldError, inputs []ProductAccessoryInput) []models.ProductAccessory {
	kept := make([]models.ProductAccessory, 0, len(inputs))
	for i, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" || !input.Price.set {
			continue
		}
		if input.Price.value < 0 {
			*errs = append(*errs, FieldError{
				Field:   fmt.Sprintf("accessories[%d].price", i),
				Message: "accessory price cannot be negative",
			})
			continue
		}
		available := true
		if input.Available != nil {
			available = *input.Available
		}
		kept = append(kept, models.ProductAccessory{
			Name:        name,
			Description: strings.TrimSpace(input.Description),
			Price:       input.Price.value,
			Available:   available,
		})
	}
	return kept
}

func buildColors(inputs []ProductColorInput) []models.ProductColor {
	colors := make([]models.ProductColor, 0, len(inputs))
	for _, input := range inputs {
		available := true
		if input.Available != nil {
			available = *input.Available
		}
		colors = append(colors, models.ProductColor{
			Name:      strings.TrimSpace(input.Name),
			Hex:       strings.TrimSpace(input.Hex),
			Available: available,
		})
	}
	return colors
}

// validateProductCreate checks the full rule set and returns the document
// fields alongside every violation found.
func validateProductCreate(req ProductCreateRequest) (models.Product, []FieldError) {
	var errs []FieldError

	validateRequiredText(&errs, "name", req.Name)
	validateRequiredText(&errs, "brand", req.Brand)
	validateRequiredText(&errs, "model", req.Model)
	validateRequiredText(&errs, "storage", req.Storage)
	validateRequiredText(&errs, "category", req.Category)
	validateColors(&errs, req.Colors)
	validatePrice(&errs, "cashPrice", req.CashPrice)
	validatePrice(&errs, "visaPrice", req.VisaPrice)

	accessories := sanitizeAccessories(&errs, req.Accessories)

	if len(errs) > 0 {
		return models.Product{}, errs
	}

	return models.Product{
		Name:        strings.TrimSpace(req.Name),
		Brand:       strings.TrimSpace(req.Brand),
		Model:       strings.TrimSpace(req.Model),
		Storage:     strings.TrimSpace(req.Storage),
		Category:    strings.TrimSpace(req.Category),
		Colors:      buildColors(req.Colors),
		Accessories: accessories,
		CashPrice:   *req.CashPrice,
		VisaPrice:   *req.VisaPrice,
		IsActive:    true,
	}, nil
}

// buildProductUpdate applies the create rules only to fields present in
// the request and produces the partial $set document. A supplied colors
// array replaces the stored one wholesale, so it must pass the full
// shape rules again.
func buildProductUpdate(req ProductUpdateRequest) (bson.M, []FieldError) {
	var errs []FieldError
	set := bson.M{}

	if req.Name != nil {
		validateRequiredText(&errs, "name", *req.Name)
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Brand != nil {
		validateRequiredText(&errs, "brand", *req.Brand)
		set["brand"] = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		validateRequiredText(&errs, "model", *req.Model)
		set["model"] = strings.TrimSpace(*req.Model)
	}
	if req.Storage != nil {
		validateRequiredText(&errs, "storage", *req.Storage)
		set["storage"] = strings.TrimSpace(*req.Storage)
	}
	if req.Category != nil {
		validateRequiredText(&errs, "category", *req.Category)
		set["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Colors != nil {
		validateColors(&errs, *req.Colors)
		set["colors"] = buildColors(*req.Colors)
	}
	if req.Accessories != nil {
		set["accessories"] = sanitizeAccessories(&errs, *req.Accessories)
	}
	if req.CashPrice != nil {
		validatePrice(&errs, "cashPrice", req.CashPrice)
		set["cashPrice"] = *req.CashPrice
	}
	if req.VisaPrice != nil {
		validatePrice(&errs, "visaPrice", req.VisaPrice)
		set["visaPrice"] = *req.VisaPrice
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return set, nil
}
