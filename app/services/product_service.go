package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/productos/app/models"
	"github.com/shashiranjanraj/productos/app/repositories"
	"github.com/shashiranjanraj/productos/app/requests"
	"github.com/shopspring/decimal"
)

// ProductService owns the create/update/delete workflow: SKU uniqueness,
// total computation, persistence. Field-format validation happens earlier,
// at bind time.
type ProductService struct {
	repo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		repo: repositories.NewProductRepository(),
	}
}

// ComputeTotal is the derived-field rule: total = quantity × price, in exact
// decimal arithmetic. Whatever the client sent as total is discarded.
func ComputeTotal(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price)
}

// List returns all products, newest first.
func (s *ProductService) List() ([]models.Product, error) {
	return s.repo.List()
}

// Find returns one product or repositories.ErrProductNotFound.
func (s *ProductService) Find(id uint) (models.Product, error) {
	return s.repo.Find(id)
}

// Create validates SKU uniqueness, computes the total, and persists.
// A non-empty error map means the input was rejected; err reports
// infrastructure failures only.
func (s *ProductService) Create(in requests.ProductInput) (models.Product, map[string]string, error) {
	taken, err := s.repo.SKUExists(in.SKU, 0)
	if err != nil {
		return models.Product{}, nil, fmt.Errorf("check sku: %w", err)
	}
	if taken {
		return models.Product{}, skuTaken(), nil
	}

	product := build(in)
	if err := s.repo.Create(&product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSKU) {
			// Lost the race against a concurrent create; the unique index is
			// the final word, so report it like the validation pre-check.
			return models.Product{}, skuTaken(), nil
		}
		return models.Product{}, nil, err
	}

	return product, nil, nil
}

// Update applies the same rule set to an existing product. The uniqueness
// check excludes the product's own row so it may keep its current SKU.
// Returns repositories.ErrProductNotFound when id does not resolve.
func (s *ProductService) Update(id uint, in requests.ProductInput) (models.Product, map[string]string, error) {
	product, err := s.repo.Find(id)
	if err != nil {
		return models.Product{}, nil, err
	}

	taken, err := s.repo.SKUExists(in.SKU, id)
	if err != nil {
		return models.Product{}, nil, fmt.Errorf("check sku: %w", err)
	}
	if taken {
		return models.Product{}, skuTaken(), nil
	}

	quantity := toDecimal(in.Quantity)
	price := toDecimal(in.Price)

	product.SKU = in.SKU
	product.Name = in.Name
	product.Description = in.Description
	product.Quantity = quantity
	product.Price = price
	product.Total = ComputeTotal(quantity, price)

	if err := s.repo.Update(&product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSKU) {
			return models.Product{}, skuTaken(), nil
		}
		return models.Product{}, nil, err
	}

	return product, nil, nil
}

// Delete removes a product permanently.
// Returns repositories.ErrProductNotFound when id does not resolve.
func (s *ProductService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func build(in requests.ProductInput) models.Product {
	quantity := toDecimal(in.Quantity)
	price := toDecimal(in.Price)

	return models.Product{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    quantity,
		Price:       price,
		Total:       ComputeTotal(quantity, price),
	}
}

// toDecimal converts a bound JSON number to the stored decimal(10,2) scale.
func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

func skuTaken() map[string]string {
	return map[string]string{"sku": requests.MsgSKUTaken}
}
