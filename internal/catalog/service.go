package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/metrics"
)

// Persister is the slice of the persistence adapter the catalog needs.
// Saves are fire-and-forget: failures are logged and swallowed at the
// adapter boundary, in-memory state stays authoritative.
type Persister interface {
	SaveProducts(ctx context.Context, products []Product)
	SaveCategories(ctx context.Context, categories []Category)
	SaveSettings(ctx context.Context, settings StoreSettings)
	LoadProducts(ctx context.Context) ([]Product, bool, error)
	LoadCategories(ctx context.Context) ([]Category, bool, error)
	LoadSettings(ctx context.Context) (StoreSettings, bool, error)
}

// Service owns the product list, category list and store settings.
// All mutations apply in call order and persist a whole-collection
// snapshot synchronously.
type Service struct {
	mu         sync.Mutex
	products   []Product
	categories []Category
	settings   StoreSettings

	persist Persister
	metrics *metrics.StoreMetrics
}

// NewService builds a catalog seeded with the demo dataset. Call Reload to
// overlay any persisted snapshots.
func NewService(persist Persister, m *metrics.StoreMetrics) (*Service, error) {
	if persist == nil {
		return nil, fmt.Errorf("catalog persister required")
	}
	return &Service{
		products:   DefaultProducts(),
		categories: DefaultCategories(),
		settings:   DefaultSettings(),
		persist:    persist,
		metrics:    m,
	}, nil
}

// Reload replaces in-memory state with the persisted snapshots. Keys that
// were never written keep the seeded defaults, mirroring a first boot.
func (s *Service) Reload(ctx context.Context) error {
	products, foundP, err := s.persist.LoadProducts(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products snapshot")
	}
	categories, foundC, err := s.persist.LoadCategories(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load categories snapshot")
	}
	settings, foundS, err := s.persist.LoadSettings(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if foundP {
		s.products = products
	} else {
		s.products = DefaultProducts()
	}
	if foundC {
		s.categories = categories
	} else {
		s.categories = DefaultCategories()
	}
	if foundS {
		s.settings = settings
	} else {
		s.settings = DefaultSettings()
	}
	return nil
}

// Products returns a copy of the product list in insertion order.
func (s *Service) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks up a product by id.
func (s *Service) ProductByID(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// AddProduct assigns a fresh id and appends the product.
func (s *Service) AddProduct(ctx context.Context, input ProductInput) Product {
	product := Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		Category:    input.Category,
		InStock:     input.InStock,
		Featured:    input.Featured,
		Variants:    input.Variants,
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	snapshot := s.productsSnapshot()
	s.mu.Unlock()

	s.persist.SaveProducts(ctx, snapshot)
	s.metrics.IncCatalogMutation("product", "add")
	return product
}

// UpdateProduct merges the patch into the matching product.
func (s *Service) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error) {
	s.mu.Lock()
	idx := s.productIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	p := &s.products[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Variants != nil {
		p.Variants = *patch.Variants
	}
	updated := *p
	snapshot := s.productsSnapshot()
	s.mu.Unlock()

	s.persist.SaveProducts(ctx, snapshot)
	s.metrics.IncCatalogMutation("product", "update")
	return updated, nil
}

// DeleteProduct removes the matching product.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.productIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	snapshot := s.productsSnapshot()
	s.mu.Unlock()

	s.persist.SaveProducts(ctx, snapshot)
	s.metrics.IncCatalogMutation("product", "delete")
	return nil
}

// Categories returns a copy of the category list in insertion order.
func (s *Service) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryByID degrades gracefully: a missing category returns ok=false and
// the caller renders its own fallback. Deleting a category never touches
// products that reference it.
func (s *Service) CategoryByID(id string) (Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// AddCategory assigns a fresh id and appends the category.
func (s *Service) AddCategory(ctx context.Context, input CategoryInput) Category {
	category := Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
	}

	s.mu.Lock()
	s.categories = append(s.categories, category)
	snapshot := s.categoriesSnapshot()
	s.mu.Unlock()

	s.persist.SaveCategories(ctx, snapshot)
	s.metrics.IncCatalogMutation("category", "add")
	return category
}

// UpdateCategory merges the patch into the matching category.
func (s *Service) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (Category, error) {
	s.mu.Lock()
	idx := s.categoryIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return Category{}, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}

	c := &s.categories[idx]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	updated := *c
	snapshot := s.categoriesSnapshot()
	s.mu.Unlock()

	s.persist.SaveCategories(ctx, snapshot)
	s.metrics.IncCatalogMutation("category", "update")
	return updated, nil
}

// DeleteCategory removes the matching category. Products referencing it are
// left untouched.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.categoryIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	snapshot := s.categoriesSnapshot()
	s.mu.Unlock()

	s.persist.SaveCategories(ctx, snapshot)
	s.metrics.IncCatalogMutation("category", "delete")
	return nil
}

// Settings returns the current store settings.
func (s *Service) Settings() StoreSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings shallow-merges the patch into the current settings.
func (s *Service) UpdateSettings(ctx context.Context, patch SettingsPatch) StoreSettings {
	s.mu.Lock()
	applySettingsPatch(&s.settings, patch)
	updated := s.settings
	s.mu.Unlock()

	s.persist.SaveSettings(ctx, updated)
	s.metrics.IncCatalogMutation("settings", "update")
	return updated
}

// WhatsAppConfigured reports whether the settings carry a usable contact
// number (at least one digit).
func (s *Service) WhatsAppConfigured() bool {
	number := s.Settings().WhatsAppNumber
	return strings.ContainsAny(number, "0123456789")
}

func (s *Service) productIndex(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) categoryIndex(id string) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) productsSnapshot() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) categoriesSnapshot() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func applySettingsPatch(settings *StoreSettings, patch SettingsPatch) {
	if patch.StoreName != nil {
		settings.StoreName = *patch.StoreName
	}
	if patch.StoreDescription != nil {
		settings.StoreDescription = *patch.StoreDescription
	}
	if patch.WhatsAppNumber != nil {
		settings.WhatsAppNumber = *patch.WhatsAppNumber
	}
	if patch.Currency != nil {
		settings.Currency = *patch.Currency
	}
	if patch.ThemeColor != nil {
		settings.ThemeColor = *patch.ThemeColor
	}
	if patch.Logo != nil {
		settings.Logo = *patch.Logo
	}
	if patch.WelcomeMessage != nil {
		settings.WelcomeMessage = *patch.WelcomeMessage
	}
	if patch.Footer != nil {
		settings.Footer = *patch.Footer
	}
	if patch.FacebookURL != nil {
		settings.FacebookURL = *patch.FacebookURL
	}
	if patch.InstagramURL != nil {
		settings.InstagramURL = *patch.InstagramURL
	}
	if patch.EmailContact != nil {
		settings.EmailContact = *patch.EmailContact
	}
	if patch.Mission != nil {
		settings.Mission = *patch.Mission
	}
	if patch.Established != nil {
		settings.Established = *patch.Established
	}
	if patch.Location != nil {
		settings.Location = *patch.Location
	}
}
