package models

import "github.com/shopspring/decimal"

// Product is a catalog item as served by the remote API. Products are
// transient: fetched fresh per screen and never cached locally, except for
// the detail-view fallback snapshot passed around by the caller.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Category           string   `json:"category,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage,omitempty"`
	Rating             float64  `json:"rating,omitempty"`
	Stock              int      `json:"stock,omitempty"`
	SKU                string   `json:"sku,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	Reviews            []Review `json:"reviews,omitempty"`
}

// Review is a customer review attached to a product.
type Review struct {
	ReviewerName string  `json:"reviewerName"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment,omitempty"`
	Date         string  `json:"date,omitempty"`
}

// HasDiscount reports whether a discount badge applies.
func (p *Product) HasDiscount() bool {
	return p.DiscountPercentage > 0
}

// EffectivePrice returns the price after discount, rounded to two decimals.
// It is always derived on demand and never stored: price × (1 − discount/100)
// when a discount applies, the plain price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	price := decimal.NewFromFloat(p.Price)
	if !p.HasDiscount() {
		return price.Round(2)
	}
	factor := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(p.DiscountPercentage))
	return price.Mul(factor).Div(decimal.NewFromInt(100)).Round(2)
}
