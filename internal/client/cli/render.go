package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/arifsetiawan/womshop/internal/client/loaders"
	"github.com/arifsetiawan/womshop/internal/client/models"
)

// renderProductList writes the catalog snapshot: an error banner, an empty
// state, or one line per product.
func renderProductList(w io.Writer, state loaders.ListState) {
	if state.Error != "" {
		fmt.Fprintln(w, state.Error)
		fmt.Fprintln(w, "Ketik 'retry' untuk mencoba lagi")
		return
	}
	if len(state.Items) == 0 {
		fmt.Fprintln(w, "Tidak ada data")
		return
	}
	for _, p := range state.Items {
		fmt.Fprintln(w, productLine(&p))
	}
}

// productLine renders one catalog row, e.g.
//
//	[1] Essence Mascara Lash Princess — $9.27 (-7%, $9.99) ★4.9
func productLine(p *models.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s — $%s", p.ID, p.Title, p.EffectivePrice().StringFixed(2))
	if p.HasDiscount() {
		fmt.Fprintf(&b, " (-%d%%, $%.2f)", int(math.Round(p.DiscountPercentage)), p.Price)
	}
	if p.Rating > 0 {
		fmt.Fprintf(&b, " ★%.1f", p.Rating)
	}
	return b.String()
}

// renderProductDetail writes the detail snapshot. A non-empty error with a
// non-nil item is the degraded case: stale data plus the error banner.
func renderProductDetail(w io.Writer, state loaders.DetailState) {
	if state.Error != "" {
		fmt.Fprintln(w, state.Error)
	}
	if state.Item == nil {
		fmt.Fprintln(w, "Produk tidak ditemukan")
		return
	}

	p := state.Item
	fmt.Fprintf(w, "%s\n", p.Title)
	if p.Brand != "" {
		fmt.Fprintf(w, "Brand:    %s\n", p.Brand)
	}
	if p.Category != "" {
		fmt.Fprintf(w, "Kategori: %s\n", p.Category)
	}
	if p.SKU != "" {
		fmt.Fprintf(w, "SKU:      %s\n", p.SKU)
	}
	fmt.Fprintf(w, "Rating:   %s %.1f / 5\n", stars(p.Rating), p.Rating)
	fmt.Fprintf(w, "Stok:     %d\n", p.Stock)

	fmt.Fprintf(w, "Harga Asli: $%.2f\n", p.Price)
	if p.HasDiscount() {
		fmt.Fprintf(w, "Diskon:     -%d%%\n", int(math.Round(p.DiscountPercentage)))
		fmt.Fprintf(w, "Harga Final: $%s\n", p.EffectivePrice().StringFixed(2))
	}

	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if len(p.Reviews) > 0 {
		fmt.Fprintf(w, "\nUlasan (%d):\n", len(p.Reviews))
		for _, r := range p.Reviews {
			fmt.Fprintf(w, "  %s %s — %s\n", stars(r.Rating), r.ReviewerName, r.Comment)
		}
	}
}

// stars renders a rating as five glyphs, e.g. "★★★★☆".
func stars(rating float64) string {
	full := int(math.Floor(rating))
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
