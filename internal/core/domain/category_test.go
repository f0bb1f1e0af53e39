package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromProduct(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    Category
	}{
		{"empty product", Product{}, CategoryAccessories},
		{"iphone by name", Product{Name: "iPhone 14", Brand: "Apple"}, CategoryMobile},
		{"explicit category", Product{Category: "Laptop", Name: "iPhone case"}, CategoryLaptop},
		{"explicit category unknown falls through", Product{Category: "gadgets", Name: "Galaxy Tab S8"}, CategoryTablet},
		{
			"super category laptops",
			Product{CategoryID: &CategoryRef{SuperCategory: &SuperCategory{Name: "Laptops", Slug: "laptops"}}},
			CategoryLaptop,
		},
		{
			"super category beats category name",
			Product{CategoryID: &CategoryRef{Name: "Phones", SuperCategory: &SuperCategory{Name: "Tablets", Slug: "tablets"}}},
			CategoryTablet,
		},
		{
			"super category beats product name",
			Product{Name: "MacBook Air", CategoryID: &CategoryRef{SuperCategory: &SuperCategory{Slug: "mobile"}}},
			CategoryMobile,
		},
		{"category name phone", Product{CategoryID: &CategoryRef{Name: "Smart Phones"}}, CategoryMobile},
		{"category name ipad", Product{CategoryID: &CategoryRef{Name: "iPad"}}, CategoryTablet},
		{"category name computer", Product{CategoryID: &CategoryRef{Name: "Computers"}}, CategoryLaptop},
		{
			"unmatched category ref falls through to name",
			Product{Name: "Samsung Galaxy S23", CategoryID: &CategoryRef{Name: "Refurbished"}},
			CategoryMobile,
		},
		{"brand samsung", Product{Name: "Galaxy S21", Brand: "Samsung"}, CategoryMobile},
		{"ipad by name", Product{Name: "iPad Air", Brand: "Apple"}, CategoryTablet},
		{"macbook by name", Product{Name: "MacBook Pro 14", Brand: "Apple"}, CategoryLaptop},
		{"charger", Product{Name: "USB-C Charger", Brand: "Anker"}, CategoryAccessories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFromProduct(tt.product))
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Mobile ")
	require.NoError(t, err)
	assert.Equal(t, CategoryMobile, c)

	_, err = ParseCategory("wearables")
	assert.Error(t, err)
}

func TestParseOrderType(t *testing.T) {
	ot, err := ParseOrderType("SELL")
	require.NoError(t, err)
	assert.Equal(t, OrderTypeSell, ot)

	_, err = ParseOrderType("rent")
	assert.Error(t, err)
}
