package domain

import (
	"fmt"
	"strings"
)

// Category is the product category used to select a commission rate.
type Category string

const (
	CategoryMobile      Category = "mobile"
	CategoryTablet      Category = "tablet"
	CategoryLaptop      Category = "laptop"
	CategoryAccessories Category = "accessories"
)

var knownCategories = []Category{
	CategoryMobile,
	CategoryTablet,
	CategoryLaptop,
	CategoryAccessories,
}

// IsValid reports whether c is one of the four known categories.
func (c Category) IsValid() bool {
	for _, k := range knownCategories {
		if k == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input (case-insensitive) into a Category.
func ParseCategory(value string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category %q", value)
	}
	return c, nil
}

// OrderType distinguishes marketplace buy orders from sell-back orders.
type OrderType string

const (
	OrderTypeBuy  OrderType = "buy"
	OrderTypeSell OrderType = "sell"
)

// IsValid reports whether t is buy or sell.
func (t OrderType) IsValid() bool {
	return t == OrderTypeBuy || t == OrderTypeSell
}

// ParseOrderType converts raw input into an OrderType.
func ParseOrderType(value string) (OrderType, error) {
	t := OrderType(strings.ToLower(strings.TrimSpace(value)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid order type %q", value)
	}
	return t, nil
}

// SuperCategory is the top-level grouping a catalog category belongs to.
type SuperCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryRef is the catalog category a product is attached to.
type CategoryRef struct {
	Name          string         `json:"name"`
	SuperCategory *SuperCategory `json:"superCategory,omitempty"`
}

// Product is the product snapshot carried on an order line.
type Product struct {
	ID         string       `json:"id,omitempty"`
	Name       string       `json:"name,omitempty"`
	Brand      string       `json:"brand,omitempty"`
	Category   string       `json:"category,omitempty"`
	CategoryID *CategoryRef `json:"categoryId,omitempty"`
}

// CategoryFromProduct classifies a product when explicit category metadata
// may be missing. Rules are evaluated in order and the first match wins:
// explicit category, super category, catalog category name, then keywords
// in name+brand. Anything unmatched is an accessory.
func CategoryFromProduct(p Product) Category {
	if c, err := ParseCategory(p.Category); err == nil {
		return c
	}

	if p.CategoryID != nil {
		if sc := p.CategoryID.SuperCategory; sc != nil {
			text := strings.ToLower(sc.Name + " " + sc.Slug)
			switch {
			case strings.Contains(text, "mobile"):
				return CategoryMobile
			case strings.Contains(text, "tablet"):
				return CategoryTablet
			case strings.Contains(text, "laptop"):
				return CategoryLaptop
			}
		}

		name := strings.ToLower(p.CategoryID.Name)
		switch {
		case containsAny(name, "mobile", "phone"):
			return CategoryMobile
		case containsAny(name, "tablet", "ipad"):
			return CategoryTablet
		case containsAny(name, "laptop", "computer"):
			return CategoryLaptop
		}
	}

	text := strings.ToLower(p.Name + " " + p.Brand)
	switch {
	case containsAny(text, "iphone", "samsung", "mobile", "phone"):
		return CategoryMobile
	case containsAny(text, "ipad", "tablet", "tab"):
		return CategoryTablet
	case containsAny(text, "laptop", "macbook", "computer"):
		return CategoryLaptop
	}

	return CategoryAccessories
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
