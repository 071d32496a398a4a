package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/usman-51/Dream-shop/models"

	"gorm.io/gorm"
)

// CartStore owns cart resolution and cart item aggregation. All mutations run
// against the transaction handle they are given.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// VariationPair is one submitted (category, value) selection, e.g. ("color", "red").
type VariationPair struct {
	Category string
	Value    string
}

// CartTotals is the cart view: active lines plus the recomputed sums.
// Nothing here is persisted, it is rebuilt from the rows on every call.
type CartTotals struct {
	Items      []models.CartItem `json:"items"`
	Quantity   int               `json:"quantity"`
	Total      float64           `json:"total"`
	Tax        float64           `json:"tax"`
	GrandTotal float64           `json:"grand_total"`
}

// taxRatePercent is the fixed storefront tax rate.
const taxRatePercent = 20

// Resolve maps a session ID to its cart, creating one on first use. Repeated
// calls for the same session return the same row.
func (s *CartStore) Resolve(ctx context.Context, sessionID string) (*models.Cart, error) {
	db := s.db.WithContext(ctx)

	var cart models.Cart
	err := db.Where("session_id = ?", sessionID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{SessionID: sessionID}
	if createErr := db.Create(&cart).Error; createErr != nil {
		// Two near-simultaneous first requests can both miss the lookup; the
		// unique index on session_id rejects the loser, so re-read.
		var existing models.Cart
		if err := db.Where("session_id = ?", sessionID).First(&existing).Error; err == nil {
			return &existing, nil
		}
		return nil, createErr
	}
	return &cart, nil
}

// AddItem adds one unit of a product with the submitted variation selection.
// Pairs that do not resolve to an active variation of the product are dropped.
// An existing line with a set-equal variation selection is incremented instead
// of duplicated; otherwise a new quantity-1 line is created.
func (s *CartStore) AddItem(ctx context.Context, cartID uint, productID uint, selection []VariationPair) (*models.CartItem, error) {
	db := s.db.WithContext(ctx)

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	resolved, err := s.resolveSelection(db, product.ID, selection)
	if err != nil {
		return nil, err
	}

	var result *models.CartItem
	err = db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Variations").
			Where("cart_id = ? AND product_id = ?", cartID, product.ID).
			Order("id").
			Find(&items).Error; err != nil {
			return err
		}

		for i := range items {
			if sameVariationSet(items[i].Variations, resolved) {
				items[i].Quantity++
				if err := tx.Save(&items[i]).Error; err != nil {
					return err
				}
				result = &items[i]
				return nil
			}
		}

		item := models.CartItem{
			CartID:    cartID,
			ProductID: product.ID,
			Quantity:  1,
			IsActive:  true,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if len(resolved) > 0 {
			if err := tx.Model(&item).Association("Variations").Append(toVariationPtrs(resolved)...); err != nil {
				return err
			}
		}
		item.Variations = resolved
		result = &item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveItem decrements a line, deleting it when the quantity reaches zero.
// A line that does not belong to the given cart and product is a no-op.
func (s *CartStore) RemoveItem(ctx context.Context, cartID, productID, itemID uint) error {
	db := s.db.WithContext(ctx)

	var item models.CartItem
	err := db.Where("id = ? AND cart_id = ? AND product_id = ?", itemID, cartID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if item.Quantity > 1 {
		item.Quantity--
		return db.Save(&item).Error
	}
	return db.Select("Variations").Delete(&item).Error
}

// PurgeItem deletes a line regardless of quantity.
func (s *CartStore) PurgeItem(ctx context.Context, cartID, productID, itemID uint) error {
	db := s.db.WithContext(ctx)

	var item models.CartItem
	err := db.Where("id = ? AND cart_id = ? AND product_id = ?", itemID, cartID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}
	return db.Select("Variations").Delete(&item).Error
}

// Totals recomputes the cart view from the active lines: summed quantity,
// pre-tax total and a fixed 20% tax on top of it.
func (s *CartStore) Totals(ctx context.Context, cartID uint) (*CartTotals, error) {
	db := s.db.WithContext(ctx)

	var items []models.CartItem
	if err := db.Preload("Product").Preload("Variations").
		Where("cart_id = ? AND is_active = ?", cartID, true).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}

	totals := &CartTotals{Items: items}
	for i := range items {
		totals.Total += items[i].SubTotal()
		totals.Quantity += items[i].Quantity
	}
	totals.Tax = (taxRatePercent * totals.Total) / 100
	totals.GrandTotal = totals.Total + totals.Tax
	return totals, nil
}

// TotalsBySession is the cart view for a browser session. A session with no
// cart yet gets an empty view, not an error, and no cart is created.
func (s *CartStore) TotalsBySession(ctx context.Context, sessionID string) (*CartTotals, error) {
	db := s.db.WithContext(ctx)

	var cart models.Cart
	err := db.Where("session_id = ?", sessionID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CartTotals{Items: []models.CartItem{}}, nil
		}
		return nil, err
	}
	return s.Totals(ctx, cart.CartID)
}

// Count sums the quantities of the session's cart for the header badge.
// No cart yet means zero, not an error.
func (s *CartStore) Count(ctx context.Context, sessionID string) (int, error) {
	db := s.db.WithContext(ctx)

	var cart models.Cart
	err := db.Where("session_id = ?", sessionID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
		return 0, err
	}
	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count, nil
}

// InCart reports whether the session's cart already holds the product.
func (s *CartStore) InCart(ctx context.Context, sessionID string, productID uint) (bool, error) {
	db := s.db.WithContext(ctx)

	var n int64
	err := db.Model(&models.CartItem{}).
		Joins("JOIN carts ON carts.cart_id = cart_items.cart_id").
		Where("carts.session_id = ? AND cart_items.product_id = ?", sessionID, productID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// resolveSelection matches submitted pairs against the product's active
// variations, case-insensitively. Unresolvable pairs are silently dropped, and
// repeated pairs collapse to one variation so the selection stays a set.
func (s *CartStore) resolveSelection(db *gorm.DB, productID uint, selection []VariationPair) ([]models.Variation, error) {
	var resolved []models.Variation
	seen := make(map[uint]bool, len(selection))
	for _, pair := range selection {
		var v models.Variation
		err := db.Where(
			"product_id = ? AND LOWER(category) = ? AND LOWER(value) = ? AND is_active = ?",
			productID, strings.ToLower(pair.Category), strings.ToLower(pair.Value), true,
		).First(&v).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if seen[v.ID] {
			continue
		}
		seen[v.ID] = true
		resolved = append(resolved, v)
	}
	return resolved, nil
}

// sameVariationSet compares two variation collections as sets of IDs,
// order irrelevant.
func sameVariationSet(a, b []models.Variation) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[uint]bool, len(a))
	for i := range a {
		ids[a[i].ID] = true
	}
	for i := range b {
		if !ids[b[i].ID] {
			return false
		}
	}
	return true
}

func toVariationPtrs(vs []models.Variation) []interface{} {
	ptrs := make([]interface{}, len(vs))
	for i := range vs {
		ptrs[i] = &vs[i]
	}
	return ptrs
}
