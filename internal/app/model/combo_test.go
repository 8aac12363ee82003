package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombo_RecalculatePrice(t *testing.T) {
	tests := []struct {
		name          string
		originalPrice float64
		discount      float64
		initialPrice  float64
		wantPrice     float64
	}{
		{
			name:          "Standard discount",
			originalPrice: 1000,
			discount:      20,
			wantPrice:     800,
		},
		{
			name:          "Full discount",
			originalPrice: 500,
			discount:      100,
			wantPrice:     0,
		},
		{
			name:          "Fractional discount preserved without rounding",
			originalPrice: 999,
			discount:      33.5,
			wantPrice:     999 * (1 - 33.5/100),
		},
		{
			name:          "Zero discount leaves stored price untouched",
			originalPrice: 1000,
			discount:      0,
			initialPrice:  750,
			wantPrice:     750,
		},
		{
			name:          "Missing original price leaves stored price untouched",
			originalPrice: 0,
			discount:      20,
			initialPrice:  750,
			wantPrice:     750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo := &Combo{
				OriginalPrice:      tt.originalPrice,
				DiscountPercentage: tt.discount,
				ComboPrice:         tt.initialPrice,
			}
			combo.RecalculatePrice()
			assert.Equal(t, tt.wantPrice, combo.ComboPrice)
		})
	}
}

func TestProduct_DeriveSlug(t *testing.T) {
	product := &Product{Name: "Walnut Coffee Table"}
	product.DeriveSlug()
	assert.Equal(t, "walnut-coffee-table", product.Slug)

	// Renaming recomputes the slug deterministically
	product.Name = "Walnut Coffee Table (v2)"
	product.DeriveSlug()
	assert.Equal(t, "walnut-coffee-table-v2", product.Slug)
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusShipped))
	assert.False(t, ValidOrderStatus("refunded"))
}

func TestValidContactStatus(t *testing.T) {
	assert.True(t, ValidContactStatus(ContactStatusResolved))
	assert.False(t, ValidContactStatus("archived"))
}
