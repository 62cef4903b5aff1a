package catalog

import "github.com/shopspring/decimal"

// Product is a catalog entry. JSON field names match the persisted
// snapshot format, so stored data stays readable across releases.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured,omitempty"`
	Variants    []string        `json:"variants,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// StoreSettings is consumed read-only by the cart engine and the order
// transcript builder.
type StoreSettings struct {
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"storeDescription"`
	WhatsAppNumber   string `json:"whatsappNumber"`
	Currency         string `json:"currency"`
	ThemeColor       string `json:"themeColor"`
	Logo             string `json:"logo"`
	WelcomeMessage   string `json:"welcomeMessage"`
	Footer           string `json:"footer"`
	FacebookURL      string `json:"facebookUrl,omitempty"`
	InstagramURL     string `json:"instagramUrl,omitempty"`
	EmailContact     string `json:"emailContact,omitempty"`
	Mission          string `json:"mission,omitempty"`
	Established      string `json:"established,omitempty"`
	Location         string `json:"location,omitempty"`
}

// ProductInput holds the fields accepted when creating a product. The id is
// generated by the service; field constraints are the API layer's concern.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Images      []string
	Category    string
	InStock     bool
	Featured    bool
	Variants    []string
}

// ProductPatch holds optional mutation values for a product.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Images      *[]string
	Category    *string
	InStock     *bool
	Featured    *bool
	Variants    *[]string
}

type CategoryInput struct {
	Name        string
	Description string
}

type CategoryPatch struct {
	Name        *string
	Description *string
}

// SettingsPatch holds optional mutation values shallow-merged into the
// current store settings.
type SettingsPatch struct {
	StoreName        *string
	StoreDescription *string
	WhatsAppNumber   *string
	Currency         *string
	ThemeColor       *string
	Logo             *string
	WelcomeMessage   *string
	Footer           *string
	FacebookURL      *string
	InstagramURL     *string
	EmailContact     *string
	Mission          *string
	Established      *string
	Location         *string
}
