package catalog

import "github.com/shopspring/decimal"

// The demo dataset the store boots with when nothing has been persisted yet.
// ResetToDefaults writes the same data back over the catalog keys.

func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Classic T-Shirt",
			Description: "Premium cotton t-shirt with a comfortable fit",
			Price:       decimal.NewFromInt(2999),
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
				"https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=500",
			},
			Category: "clothing",
			InStock:  true,
			Featured: true,
			Variants: []string{"Small", "Medium", "Large", "XL"},
		},
		{
			ID:          "2",
			Name:        "Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       decimal.NewFromInt(45000),
			Images: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
				"https://images.unsplash.com/photo-1583394838336-acd977736f90?w=500",
			},
			Category: "electronics",
			InStock:  true,
			Featured: true,
		},
		{
			ID:          "3",
			Name:        "Leather Backpack",
			Description: "Stylish and durable leather backpack for everyday use",
			Price:       decimal.NewFromInt(12000),
			Images: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
			},
			Category: "accessories",
			InStock:  true,
		},
		{
			ID:          "4",
			Name:        "Smart Watch Pro",
			Description: "Advanced fitness tracking and notifications on your wrist",
			Price:       decimal.NewFromInt(56000),
			Images: []string{
				"https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=500",
				"https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1?w=500",
			},
			Category: "electronics",
			InStock:  true,
			Featured: true,
			Variants: []string{"Black", "Silver", "Rose Gold"},
		},
		{
			ID:          "5",
			Name:        "Denim Jacket",
			Description: "Classic denim jacket with modern styling",
			Price:       decimal.NewFromInt(4500),
			Images: []string{
				"https://images.unsplash.com/photo-1495105787522-5334e3ffa0ef?w=500",
				"https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=500",
			},
			Category: "clothing",
			InStock:  true,
			Variants: []string{"Small", "Medium", "Large", "XL"},
		},
		{
			ID:          "6",
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard with premium switches",
			Price:       decimal.NewFromInt(12000),
			Images: []string{
				"https://images.unsplash.com/photo-1601445638532-3c6f6c3aa1d6?w=500",
			},
			Category: "electronics",
			InStock:  true,
		},
		{
			ID:          "7",
			Name:        "Sunglasses",
			Description: "UV protection sunglasses with polarized lenses",
			Price:       decimal.NewFromInt(15000),
			Images: []string{
				"https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=500",
			},
			Category: "accessories",
			InStock:  true,
			Featured: true,
			Variants: []string{"Black", "Tortoise", "Gold"},
		},
		{
			ID:          "8",
			Name:        "Running Shoes",
			Description: "Lightweight and breathable running shoes",
			Price:       decimal.NewFromFloat(9000.99),
			Images: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
				"https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=500",
			},
			Category: "clothing",
			InStock:  true,
			Featured: true,
			Variants: []string{"US 7", "US 8", "US 9", "US 10", "US 11"},
		},
	}
}

func DefaultCategories() []Category {
	return []Category{
		{ID: "clothing", Name: "Clothing", Description: "Apparel and garments"},
		{ID: "electronics", Name: "Electronics", Description: "Electronic devices and accessories"},
		{ID: "accessories", Name: "Accessories", Description: "Fashion accessories and more"},
	}
}

func DefaultSettings() StoreSettings {
	return StoreSettings{
		StoreName:        "E-Mart Store",
		StoreDescription: "Your one-stop shop for quality products",
		WhatsAppNumber:   "+12345678900",
		Currency:         "₦",
		ThemeColor:       "#25D366",
		Logo:             "https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=200",
		WelcomeMessage:   "Welcome to E-Mart! How can we help you today?",
		Footer:           "© 2025 E-Mart Store. All rights reserved.",
		EmailContact:     "demo@emart.com",
		FacebookURL:      "https://facebook.com/emart",
		InstagramURL:     "https://instagram.com/emart",
		Mission:          "To provide quality products at affordable prices",
		Established:      "2025",
		Location:         "123 Demo Street, Shopping District, 12345",
	}
}
