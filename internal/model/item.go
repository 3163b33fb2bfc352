package model

import (
	"strings"

	"github.com/google/uuid"
)

// Category classifies an inventory item into one of the four fixed
// product groups used throughout the app.
type Category string

const (
	CategoryColor     Category = "color"
	CategoryLayer     Category = "layer"
	CategoryAccessory Category = "accessory"
	CategoryDesign    Category = "design"
)

// Categories returns the four categories in their canonical display order.
func Categories() []Category {
	return []Category{CategoryColor, CategoryLayer, CategoryAccessory, CategoryDesign}
}

// ParseCategory converts a raw string to a Category.
// Returns the category and true, or empty and false if unrecognized.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryColor:
		return CategoryColor, true
	case CategoryLayer:
		return CategoryLayer, true
	case CategoryAccessory:
		return CategoryAccessory, true
	case CategoryDesign:
		return CategoryDesign, true
	default:
		return "", false
	}
}

// Valid reports whether c is one of the four fixed categories.
func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// Label returns a capitalized display name for UI tabs and cards.
func (c Category) Label() string {
	switch c {
	case CategoryColor:
		return "Colors"
	case CategoryLayer:
		return "Layers"
	case CategoryAccessory:
		return "Accessories"
	case CategoryDesign:
		return "Designs"
	default:
		return string(c)
	}
}

// InventoryItem represents a single nail-art product in the user's supply.
// All fields except ID may change through the edit flow; ID is assigned at
// creation and immutable thereafter.
type InventoryItem struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Type     string   `json:"type"`   // product name
	Color    string   `json:"color"`  // optional
	Finish   string   `json:"finish"` // optional, e.g. glossy, matte, chrome
	Image    string   `json:"image"`  // optional path or URL to a preview image
}

// NewInventoryItem creates an item with a generated ID.
func NewInventoryItem(category Category, productType, color, finish, image string) InventoryItem {
	return InventoryItem{
		ID:       uuid.New().String(),
		Category: category,
		Type:     strings.TrimSpace(productType),
		Color:    strings.TrimSpace(color),
		Finish:   finish,
		Image:    strings.TrimSpace(image),
	}
}

// Summary returns the color/finish line shown under the product name.
func (it InventoryItem) Summary() string {
	return strings.TrimSpace(strings.TrimSpace(it.Color) + " " + strings.TrimSpace(it.Finish))
}

// HasImage reports whether the item carries a preview image reference.
func (it InventoryItem) HasImage() bool {
	return strings.TrimSpace(it.Image) != ""
}
