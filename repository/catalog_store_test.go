package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/usman-51/Dream-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseByCategorySlug(t *testing.T) {
	db := newTestDB(t)
	category, product, _ := seedCatalog(t, db)
	store := NewCatalogStore(db)
	ctx := context.Background()

	// A second category whose products must not leak into the result.
	other := models.Category{Name: "Other", Slug: "other", Gender: models.GenderWomen, ProductType: models.TypeClothingWomen}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Other Dress", Slug: "other-dress", Price: 80, IsAvailable: true, CategoryID: other.ID,
	}).Error)

	// Unavailable products stay hidden even in the right category.
	require.NoError(t, db.Create(&models.Product{
		Name: "Hidden Shirt", Slug: "hidden-shirt", Price: 10, IsAvailable: false, CategoryID: category.ID,
	}).Error)

	page, err := store.Browse(ctx, BrowseQuery{CategorySlug: "test-category", Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.ProductCount)
	require.Len(t, page.Products, 1)
	assert.Equal(t, product.ID, page.Products[0].ID)
	assert.Equal(t, category.Name, page.PageTitle)

	_, err = store.Browse(ctx, BrowseQuery{CategorySlug: "no-such-category"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestBrowsePagination(t *testing.T) {
	db := newTestDB(t)
	category, _, _ := seedCatalog(t, db)
	store := NewCatalogStore(db)
	ctx := context.Background()

	// 11 more products for 12 available in total: two pages of 9 and 3.
	for i := 0; i < 11; i++ {
		require.NoError(t, db.Create(&models.Product{
			Name:        fmt.Sprintf("Bulk Product %02d", i),
			Slug:        fmt.Sprintf("bulk-product-%02d", i),
			Price:       10,
			IsAvailable: true,
			CategoryID:  category.ID,
		}).Error)
	}

	page, err := store.Browse(ctx, BrowseQuery{Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 12, page.ProductCount)
	assert.Len(t, page.Products, PageSize)
	assert.Equal(t, 2, page.TotalPages)

	// Out-of-range pages clamp instead of erroring.
	page, err = store.Browse(ctx, BrowseQuery{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Products, 3)

	page, err = store.Browse(ctx, BrowseQuery{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Products, PageSize)
}

func TestBrowseFacets(t *testing.T) {
	db := newTestDB(t)
	_, menShirt, _ := seedCatalog(t, db) // men's clothing category
	store := NewCatalogStore(db)
	ctx := context.Background()

	women := models.Category{Name: "Dresses", Slug: "dresses", Gender: models.GenderWomen, ProductType: models.TypeClothingWomen}
	require.NoError(t, db.Create(&women).Error)
	dress := models.Product{Name: "Summer Dress", Slug: "summer-dress", Price: 60, IsAvailable: true, CategoryID: women.ID}
	require.NoError(t, db.Create(&dress).Error)

	page, err := store.Browse(ctx, BrowseQuery{Gender: "men"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, menShirt.ID, page.Products[0].ID)
	assert.Equal(t, "Collection Homme", page.PageTitle)

	page, err = store.Browse(ctx, BrowseQuery{Gender: "women"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, dress.ID, page.Products[0].ID)

	page, err = store.Browse(ctx, BrowseQuery{ProductType: "clothingWomen"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, dress.ID, page.Products[0].ID)
	assert.Equal(t, "Vêtements Femme", page.PageTitle)
}

func TestSearch(t *testing.T) {
	db := newTestDB(t)
	category, shirt, _ := seedCatalog(t, db) // name "Test Shirt", description "A plain shirt"
	store := NewCatalogStore(db)
	ctx := context.Background()

	older := models.Product{
		Name:        "Wool Jumper",
		Slug:        "wool-jumper",
		Description: "Warm shirt-like knit",
		Price:       70,
		IsAvailable: true,
		CategoryID:  category.ID,
		CreatedAt:   time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Leather Belt", Slug: "leather-belt", Price: 30, IsAvailable: true, CategoryID: category.ID,
	}).Error)

	result, err := store.Search(ctx, "SHIRT")
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.ProductCount)
	require.Len(t, result.Products, 2)
	// Newest first.
	assert.Equal(t, shirt.ID, result.Products[0].ID)
	assert.Equal(t, older.ID, result.Products[1].ID)

	// Empty keyword means no results, never the whole catalog.
	result, err = store.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Zero(t, result.ProductCount)
}

func TestProductBySlug(t *testing.T) {
	db := newTestDB(t)
	_, product, _ := seedCatalog(t, db)
	store := NewCatalogStore(db)
	ctx := context.Background()

	found, err := store.ProductBySlug(ctx, "test-category", "test-shirt")
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, "Test Category", found.Category.Name)
	// Only the two active variations come back.
	assert.Len(t, found.Variations, 2)

	_, err = store.ProductBySlug(ctx, "test-category", "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = store.ProductBySlug(ctx, "wrong-category", "test-shirt")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFeatured(t *testing.T) {
	db := newTestDB(t)
	_, _, _ = seedCatalog(t, db)
	store := NewCatalogStore(db)
	ctx := context.Background()

	best := models.Category{Name: "Best Seller", CategoryOnline: "Best seller", Slug: "best-seller"}
	require.NoError(t, db.Create(&best).Error)
	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Product{
			Name:        fmt.Sprintf("Featured %d", i),
			Slug:        fmt.Sprintf("featured-%d", i),
			Price:       20,
			IsAvailable: true,
			CategoryID:  best.ID,
		}).Error)
	}

	view, err := store.Featured(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Products, 3) // capped at three
	assert.Len(t, view.MenLinks, 1) // seeded men's clothing category
	assert.Empty(t, view.WomenLinks)
}

func TestDeleteCategoryCascades(t *testing.T) {
	db := newTestDB(t)
	category, product, variations := seedCatalog(t, db)
	catalog := NewCatalogStore(db)
	carts := NewCartStore(db)
	ctx := context.Background()

	cart, err := carts.Resolve(ctx, "session-a")
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, cart.CartID, product.ID, []VariationPair{{Category: "color", Value: "red"}})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteCategory(ctx, category.ID))

	var n int64
	require.NoError(t, db.Model(&models.Product{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&models.Variation{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Table("cart_item_variations").Count(&n).Error)
	assert.Zero(t, n)

	// The cart itself survives, only its items are gone.
	require.NoError(t, db.Model(&models.Cart{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	assert.ErrorIs(t, catalog.DeleteCategory(ctx, category.ID), ErrCategoryNotFound)
	_ = variations
}

func TestDeleteProductCascades(t *testing.T) {
	db := newTestDB(t)
	category, product, _ := seedCatalog(t, db)
	catalog := NewCatalogStore(db)
	carts := NewCartStore(db)
	ctx := context.Background()

	keeper := models.Product{Name: "Keeper", Slug: "keeper", Price: 5, IsAvailable: true, CategoryID: category.ID}
	require.NoError(t, db.Create(&keeper).Error)

	cart, err := carts.Resolve(ctx, "session-a")
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, cart.CartID, product.ID, nil)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, cart.CartID, keeper.ID, nil)
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, product.ID))

	var n int64
	require.NoError(t, db.Model(&models.Product{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	require.NoError(t, db.Model(&models.Variation{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	assert.ErrorIs(t, catalog.DeleteProduct(ctx, product.ID), ErrProductNotFound)
}
