package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/usman-51/Dream-shop/models"

	"gorm.io/gorm"
)

// PageSize is the fixed number of products per storefront page.
const PageSize = 9

// CatalogStore serves the read paths over categories and products and owns
// the explicit cascading deletes at the storage boundary.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// BrowseQuery carries the optional storefront facets. Gender accepts the
// friendly values "men" and "women"; ProductType accepts the friendly keys
// used by the storefront navigation (clothingMen, clothingWomen,
// clothingAccessMen, clothingAccessWomen).
type BrowseQuery struct {
	CategorySlug string
	Gender       string
	ProductType  string
	Page         int
}

// BrowsePage is one page of available products plus the total matching count.
type BrowsePage struct {
	Products     []models.Product `json:"products"`
	ProductCount int64            `json:"product_count"`
	Page         int              `json:"page"`
	TotalPages   int              `json:"total_pages"`
	PageTitle    string           `json:"page_title"`
}

// SearchResult is the keyword search payload.
type SearchResult struct {
	Products     []models.Product `json:"products"`
	ProductCount int64            `json:"product_count"`
}

// HomeView is the landing page payload: up to three featured products plus
// the category menu links grouped by product type.
type HomeView struct {
	Products   []models.Product  `json:"products"`
	WomenLinks []models.Category `json:"women_links"`
	MenLinks   []models.Category `json:"men_links"`
	WomenAcc   []models.Category `json:"women_acc"`
	MenAcc     []models.Category `json:"men_acc"`
}

// Browse filters available products by the optional facets, ordered by id and
// paginated at PageSize. Out-of-range pages clamp to the nearest valid page.
func (s *CatalogStore) Browse(ctx context.Context, q BrowseQuery) (*BrowsePage, error) {
	db := s.db.WithContext(ctx)

	query := db.Model(&models.Product{}).Where("products.is_available = ?", true)
	title := "Collection Complète"

	if q.CategorySlug != "" {
		var category models.Category
		if err := db.Where("slug = ?", q.CategorySlug).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		query = query.Where("products.category_id = ?", category.ID)
		title = category.Name
	} else {
		joined := false
		join := func() {
			if !joined {
				query = query.Joins("JOIN categories ON categories.id = products.category_id")
				joined = true
			}
		}

		switch q.Gender {
		case "men":
			join()
			query = query.Where("categories.gender = ?", models.GenderMen)
			title = "Collection Homme"
		case "women":
			join()
			query = query.Where("categories.gender = ?", models.GenderWomen)
			title = "Collection Femme"
		}

		if code, name, ok := productTypeFacet(q.ProductType); ok {
			join()
			query = query.Where("categories.product_type = ?", code)
			title = name
		}
	}

	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, err
	}

	totalPages := int((count + PageSize - 1) / PageSize)
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var products []models.Product
	if err := query.Session(&gorm.Session{}).Select("products.*").Order("products.id").
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(&products).Error; err != nil {
		return nil, err
	}

	return &BrowsePage{
		Products:     products,
		ProductCount: count,
		Page:         page,
		TotalPages:   totalPages,
		PageTitle:    title,
	}, nil
}

// Search matches the keyword case-insensitively against product name or
// description, newest first. An empty keyword yields no products, not all.
func (s *CatalogStore) Search(ctx context.Context, keyword string) (*SearchResult, error) {
	if keyword == "" {
		return &SearchResult{Products: []models.Product{}}, nil
	}

	pattern := "%" + strings.ToLower(keyword) + "%"
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return &SearchResult{Products: products, ProductCount: int64(len(products))}, nil
}

// ProductBySlug looks up a single product under its category for the detail page.
func (s *CatalogStore) ProductBySlug(ctx context.Context, categorySlug, productSlug string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Variations", "is_active = ?", true).
		Select("products.*").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.slug = ? AND products.slug = ?", categorySlug, productSlug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Featured builds the landing page: up to three available products from the
// "Best seller" category and the navigation links per product type.
func (s *CatalogStore) Featured(ctx context.Context) (*HomeView, error) {
	db := s.db.WithContext(ctx)
	view := &HomeView{Products: []models.Product{}}

	var bestSeller models.Category
	err := db.Where("category_online = ?", "Best seller").First(&bestSeller).Error
	if err == nil {
		if err := db.Where("category_id = ? AND is_available = ?", bestSeller.ID, true).
			Order("id").Limit(3).Find(&view.Products).Error; err != nil {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	links := map[string]*[]models.Category{
		models.TypeClothingWomen:    &view.WomenLinks,
		models.TypeClothingMen:      &view.MenLinks,
		models.TypeAccessoriesWomen: &view.WomenAcc,
		models.TypeAccessoriesMen:   &view.MenAcc,
	}
	for code, dst := range links {
		if err := db.Where("product_type = ?", code).Order("id").Find(dst).Error; err != nil {
			return nil, err
		}
	}
	return view, nil
}

// DeleteCategory removes a category and everything hanging off it: products,
// their variations and any cart items referencing those products. The cascade
// is explicit and transactional rather than delegated to the schema.
func (s *CatalogStore) DeleteCategory(ctx context.Context, categoryID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		var productIDs []uint
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if err := deleteProductRows(tx, productIDs); err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

// DeleteProduct removes one product with the same explicit cascade.
func (s *CatalogStore) DeleteProduct(ctx context.Context, productID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		return deleteProductRows(tx, []uint{product.ID})
	})
}

func deleteProductRows(tx *gorm.DB, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}

	var itemIDs []uint
	if err := tx.Model(&models.CartItem{}).
		Where("product_id IN ?", productIDs).
		Pluck("id", &itemIDs).Error; err != nil {
		return err
	}
	if len(itemIDs) > 0 {
		if err := tx.Exec("DELETE FROM cart_item_variations WHERE cart_item_id IN ?", itemIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", itemIDs).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Variation{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", productIDs).Delete(&models.Product{}).Error
}

// productTypeFacet maps a friendly navigation key to its category code and
// page title.
func productTypeFacet(key string) (code, title string, ok bool) {
	switch key {
	case "clothingMen":
		return models.TypeClothingMen, "Vêtements Homme", true
	case "clothingWomen":
		return models.TypeClothingWomen, "Vêtements Femme", true
	case "clothingAccessMen":
		return models.TypeAccessoriesMen, "Accessoires Homme", true
	case "clothingAccessWomen":
		return models.TypeAccessoriesWomen, "Accessoires Femme", true
	}
	return "", "", false
}
