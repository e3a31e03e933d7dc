package stubapi

import "github.com/arifsetiawan/womshop/internal/client/models"

// sampleCatalog returns a fixed slice of the dummyjson beauty catalog, enough
// to exercise pagination, discounts, and the detail view.
func sampleCatalog() []models.Product {
	return []models.Product{
		{
			ID:                 1,
			Title:              "Essence Mascara Lash Princess",
			Description:        "The Essence Mascara Lash Princess is a popular mascara known for its volumizing and lengthening effects.",
			Category:           "beauty",
			Brand:              "Essence",
			Price:              9.99,
			DiscountPercentage: 7.17,
			Rating:             4.94,
			Stock:              5,
			SKU:                "BEA-ESS-ESS-001",
			Thumbnail:          "https://cdn.dummyjson.com/products/images/beauty/Essence%20Mascara%20Lash%20Princess/thumbnail.png",
			Tags:               []string{"beauty", "mascara"},
			Reviews: []models.Review{
				{ReviewerName: "Eleanor Collins", Rating: 3, Comment: "Would not recommend!", Date: "2024-05-23T08:56:21.618Z"},
				{ReviewerName: "Lucas Gordon", Rating: 4, Comment: "Very satisfied!", Date: "2024-05-23T08:56:21.618Z"},
			},
		},
		{
			ID:                 2,
			Title:              "Eyeshadow Palette with Mirror",
			Description:        "The Eyeshadow Palette with Mirror offers a versatile range of eyeshadow shades for creating stunning eye looks.",
			Category:           "beauty",
			Brand:              "Glamour Beauty",
			Price:              19.99,
			DiscountPercentage: 5.5,
			Rating:             3.28,
			Stock:              44,
			SKU:                "BEA-GLA-EYE-002",
			Tags:               []string{"beauty", "eyeshadow"},
			Reviews: []models.Review{
				{ReviewerName: "Liam Garcia", Rating: 5, Comment: "Very happy with my purchase!", Date: "2024-05-23T08:56:21.618Z"},
			},
		},
		{
			ID:                 3,
			Title:              "Powder Canister",
			Description:        "The Powder Canister is a finely milled setting powder designed to set makeup and control shine.",
			Category:           "beauty",
			Brand:              "Velvet Touch",
			Price:              14.99,
			DiscountPercentage: 18.14,
			Rating:             3.82,
			Stock:              59,
			SKU:                "BEA-VEL-POW-003",
			Tags:               []string{"beauty", "face powder"},
		},
		{
			ID:          4,
			Title:       "Red Lipstick",
			Description: "The Red Lipstick is a classic and bold choice for adding a pop of color to your lips.",
			Category:    "beauty",
			Brand:       "Chic Cosmetics",
			Price:       12.99,
			Rating:      2.51,
			Stock:       68,
			SKU:         "BEA-CHI-LIP-004",
			Tags:        []string{"beauty", "lipstick"},
		},
		{
			ID:                 5,
			Title:              "Red Nail Polish",
			Description:        "The Red Nail Polish offers a rich and glossy red hue for vibrant and polished nails.",
			Category:           "beauty",
			Brand:              "Nail Couture",
			Price:              8.99,
			DiscountPercentage: 11.44,
			Rating:             3.91,
			Stock:              71,
			SKU:                "BEA-NAI-NAI-005",
			Tags:               []string{"beauty", "nail polish"},
		},
		{
			ID:                 6,
			Title:              "Calvin Klein CK One",
			Description:        "CK One by Calvin Klein is a classic unisex fragrance known for its fresh and clean scent.",
			Category:           "fragrances",
			Brand:              "Calvin Klein",
			Price:              49.99,
			DiscountPercentage: 1.89,
			Rating:             4.37,
			Stock:              29,
			SKU:                "FRA-CAL-CAL-006",
			Tags:               []string{"fragrances", "perfumes"},
		},
	}
}
