package seeders

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shashiranjanraj/productos/app/models"
	"github.com/shashiranjanraj/productos/app/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	Register("products", SeedProducts)
}

// seedProductCount is how many fake products `productos seed` inserts.
const seedProductCount = 50

// SeedProducts fills the catalogue with generated demo products.
func SeedProducts(db *gorm.DB) error {
	factory := NewProductFactory(rand.Uint64())

	for i := 0; i < seedProductCount; i++ {
		product := factory.Make()
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}

// ProductFactory generates fake products with unique SKUs. Not safe for
// concurrent use; make one per goroutine.
type ProductFactory struct {
	rng  *rand.Rand
	used map[int64]bool
}

func NewProductFactory(seed uint64) *ProductFactory {
	return &ProductFactory{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		used: make(map[int64]bool),
	}
}

// Make returns one product satisfying the catalogue invariants:
// SKU unique in 100000–999999, quantity 1–100, price 1.00–9999.00,
// total = quantity × price.
func (f *ProductFactory) Make() models.Product {
	quantity := decimal.NewFromInt(f.rng.Int64N(100) + 1)
	// Price drawn in whole cents so the decimal is exact.
	price := decimal.New(f.rng.Int64N(999801)+100, -2)

	return models.Product{
		SKU:         f.nextSKU(),
		Name:        f.words(3),
		Description: f.sentence(),
		Quantity:    quantity,
		Price:       price,
		Total:       services.ComputeTotal(quantity, price),
	}
}

func (f *ProductFactory) nextSKU() int64 {
	for {
		sku := f.rng.Int64N(900000) + 100000
		if !f.used[sku] {
			f.used[sku] = true
			return sku
		}
	}
}

var fakeWords = []string{
	"caja", "mesa", "silla", "lámpara", "teclado", "monitor", "cable",
	"taza", "libro", "botella", "mochila", "reloj", "altavoz", "ratón",
	"papel", "tornillo", "martillo", "pintura", "cuaderno", "ventilador",
}

func (f *ProductFactory) words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fakeWords[f.rng.IntN(len(fakeWords))]
	}
	return strings.Join(parts, " ")
}

func (f *ProductFactory) sentence() string {
	return fmt.Sprintf("Un %s de gran calidad para uso diario.", f.words(1))
}
