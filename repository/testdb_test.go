package repository

import (
	"testing"

	"github.com/usman-51/Dream-shop/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see an empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Category{},
		&models.Product{},
		&models.Variation{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

// seedCatalog creates one category with one product and three variations:
// active color/red, active size/m and inactive color/blue.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.Product, map[string]models.Variation) {
	t.Helper()

	category := models.Category{
		Name:        "Test Category",
		Slug:        "test-category",
		Gender:      models.GenderMen,
		ProductType: models.TypeClothingMen,
	}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:        "Test Shirt",
		Slug:        "test-shirt",
		Description: "A plain shirt",
		Price:       100,
		Stock:       10,
		IsAvailable: true,
		CategoryID:  category.ID,
	}
	require.NoError(t, db.Create(&product).Error)

	variations := map[string]models.Variation{}
	for _, v := range []models.Variation{
		{ProductID: product.ID, Category: models.VariationColor, Value: "red", IsActive: true},
		{ProductID: product.ID, Category: models.VariationSize, Value: "m", IsActive: true},
		{ProductID: product.ID, Category: models.VariationColor, Value: "blue", IsActive: false},
	} {
		v := v
		require.NoError(t, db.Create(&v).Error)
		variations[v.Value] = v
	}
	return category, product, variations
}
