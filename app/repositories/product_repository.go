package repositories

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/productos/app/models"
	"github.com/shashiranjanraj/productos/pkg/cache"
	"github.com/shashiranjanraj/productos/pkg/orm"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound is returned when an id resolves to no live row.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSKU is returned when the products.sku unique index rejects
	// a write. The index is the authoritative guard; the service-level
	// pre-check only exists to fail fast.
	ErrDuplicateSKU = errors.New("duplicate sku")
)

const (
	listCacheKey = "productos:list"
	listCacheTTL = time.Minute
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// List returns all products, newest first. The id tiebreak keeps ordering
// deterministic when rows share a created_at timestamp.
func (r *ProductRepository) List() ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := orm.DB().
		Model(&models.Product{}).
		Order("created_at DESC, id DESC").
		Cache(listCacheKey, listCacheTTL, &products)
	return products, err
}

// Find looks up a product by primary key.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	if err := orm.DB().Create(product); err != nil {
		return translate(err)
	}
	cache.Forget(listCacheKey)
	return nil
}

// Update persists changes to an existing product, writing all fields.
func (r *ProductRepository) Update(product *models.Product) error {
	if err := orm.DB().Save(product); err != nil {
		return translate(err)
	}
	cache.Forget(listCacheKey)
	return nil
}

// Delete removes a product permanently.
func (r *ProductRepository) Delete(id uint) error {
	affected, err := orm.DB().Delete(&models.Product{}, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	cache.Forget(listCacheKey)
	return nil
}

// SKUExists reports whether another product already uses sku. Rows with
// excludeID are ignored so an update can keep its own SKU.
func (r *ProductRepository) SKUExists(sku int64, excludeID uint) (bool, error) {
	return orm.DB().
		Model(&models.Product{}).
		Where("sku = ?", sku).
		Not("id = ?", excludeID).
		Exists()
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSKU
	}
	return err
}
