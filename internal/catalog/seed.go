package catalog

import "github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"

func int64Ptr(v int64) *int64 { return &v }

// Seed returns the built-in catalog. Callers receive a fresh slice on every
// call so filtered views can never alias the seed data.
func Seed() []domain.Product {
	products := []domain.Product{
		{
			ID:             "m1",
			Name:           "Walkaroo Sporty Red Kicks",
			Price:          1299,
			OriginalPrice:  int64Ptr(1599),
			Category:       domain.CategoryMen,
			Type:           domain.TypeSports,
			ImageURL:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&q=80&w=600",
			Description:    "High-performance sporty sneakers in a bold red colorway. Breathable mesh upper.",
			AvailableSizes: []int{7, 8, 9, 10, 11},
			Rating:         4.5,
			ReviewsCount:   120,
			IsNew:          true,
		},
		{
			ID:             "m2",
			Name:           "Walkaroo Navy Canvas Sneakers",
			Price:          899,
			Category:       domain.CategoryMen,
			Type:           domain.TypeCasual,
			ImageURL:       "https://images.unsplash.com/photo-1607522370275-f14206abe5d3?auto=format&fit=crop&q=80&w=600",
			Description:    "Classic canvas sneakers in navy. Timeless design for everyday comfort.",
			AvailableSizes: []int{6, 7, 8, 9, 10},
			Rating:         4.2,
			ReviewsCount:   85,
		},
		{
			ID:             "m3",
			Name:           "Walkaroo Urban White High-Tops",
			Price:          2499,
			OriginalPrice:  int64Ptr(2999),
			Category:       domain.CategoryMen,
			Type:           domain.TypeCasual,
			ImageURL:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&q=80&w=600",
			Description:    "Premium leather high-top sneakers. Clean, minimalist white design for the urban explorer.",
			AvailableSizes: []int{7, 8, 9, 10, 11},
			Rating:         4.8,
			ReviewsCount:   45,
		},
		{
			ID:             "m4",
			Name:           "Walkaroo Comfort Slides",
			Price:          599,
			Category:       domain.CategoryMen,
			Type:           domain.TypeSlippers,
			ImageURL:       "https://images.unsplash.com/photo-1603487742131-4160d6e66c6e?auto=format&fit=crop&q=80&w=600",
			Description:    "Ergonomic slides with arch support. Perfect for post-workout or home use.",
			AvailableSizes: []int{6, 7, 8, 9, 10},
			Rating:         4.0,
			ReviewsCount:   200,
		},
		{
			ID:             "w1",
			Name:           "Walkaroo Pink Running Shoes",
			Price:          1199,
			OriginalPrice:  int64Ptr(1499),
			Category:       domain.CategoryWomen,
			Type:           domain.TypeSports,
			ImageURL:       "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?auto=format&fit=crop&q=80&w=600",
			Description:    "Lightweight runners in a vibrant pink. Cushioned sole for long distance comfort.",
			AvailableSizes: []int{4, 5, 6, 7, 8},
			Rating:         4.6,
			ReviewsCount:   150,
			IsNew:          true,
		},
		{
			ID:             "w2",
			Name:           "Walkaroo Beach Flip-Flops",
			Price:          499,
			Category:       domain.CategoryWomen,
			Type:           domain.TypeSlippers,
			ImageURL:       "https://images.unsplash.com/photo-1621252179027-94459d27d3ee?auto=format&fit=crop&q=80&w=600",
			Description:    "Durable and colorful flip-flops, essential for your beach bag.",
			AvailableSizes: []int{4, 5, 6, 7, 8},
			Rating:         4.3,
			ReviewsCount:   92,
		},
		{
			ID:             "w3",
			Name:           "Walkaroo Cozy House Slippers",
			Price:          349,
			Category:       domain.CategoryWomen,
			Type:           domain.TypeSlippers,
			ImageURL:       "https://plus.unsplash.com/premium_photo-1673966524316-c7447d48601c?auto=format&fit=crop&q=80&w=600",
			Description:    "Soft faux-fur lined slippers to keep your toes warm and cozy.",
			AvailableSizes: []int{4, 5, 6, 7, 8},
			Rating:         4.1,
			ReviewsCount:   320,
		},
		{
			ID:             "k1",
			Name:           "Walkaroo Kids Velcro Sneakers",
			Price:          999,
			Category:       domain.CategoryKids,
			Type:           domain.TypeSports,
			ImageURL:       "https://images.unsplash.com/photo-1514989940723-e8875ea01cd7?auto=format&fit=crop&q=80&w=600",
			Description:    "Rugged velcro sneakers for active kids. Easy on and off.",
			AvailableSizes: []int{1, 2, 3, 4, 5},
			Rating:         4.7,
			ReviewsCount:   60,
		},
		{
			ID:             "k2",
			Name:           "Walkaroo Kids Garden Clogs",
			Price:          499,
			Category:       domain.CategoryKids,
			Type:           domain.TypeSlippers,
			ImageURL:       "https://images.unsplash.com/photo-1614165936126-2ed18e471b10?auto=format&fit=crop&q=80&w=600",
			Description:    "Waterproof clogs with back strap. Fun, safe, and easy to clean.",
			AvailableSizes: []int{1, 2, 3, 4, 5},
			Rating:         4.4,
			ReviewsCount:   110,
		},
		{
			ID:             "m5",
			Name:           "Walkaroo Marathon Runner",
			Price:          1499,
			Category:       domain.CategoryMen,
			Type:           domain.TypeSports,
			ImageURL:       "https://images.unsplash.com/photo-1460353581641-37baddab0fa2?auto=format&fit=crop&q=80&w=600",
			Description:    "Pro-level running shoes with advanced shock absorption.",
			AvailableSizes: []int{7, 8, 9, 10},
			Rating:         4.5,
			ReviewsCount:   30,
		},
		{
			ID:             "w4",
			Name:           "Walkaroo Casual Slip-Ons",
			Price:          899,
			Category:       domain.CategoryWomen,
			Type:           domain.TypeCasual,
			ImageURL:       "https://images.unsplash.com/photo-1535043934128-cf0b28d52f95?auto=format&fit=crop&q=80&w=600",
			Description:    "Effortless slip-on sneakers for a casual, laid-back look.",
			AvailableSizes: []int{5, 6, 7, 8},
			Rating:         4.2,
			ReviewsCount:   45,
		},
		{
			ID:             "m6",
			Name:           "Walkaroo Retro Street Sneaker",
			Price:          2199,
			Category:       domain.CategoryMen,
			Type:           domain.TypeCasual,
			ImageURL:       "https://images.unsplash.com/photo-1552346154-21d32810aba3?auto=format&fit=crop&q=80&w=600",
			Description:    "Retro-inspired street sneakers with premium build quality.",
			AvailableSizes: []int{8, 9, 10, 11},
			Rating:         4.6,
			ReviewsCount:   12,
		},
	}
	return products
}
