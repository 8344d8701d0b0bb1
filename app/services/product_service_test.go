package services_test

import (
	"path/filepath"
	"testing"

	"github.com/shashiranjanraj/productos/app/models"
	"github.com/shashiranjanraj/productos/app/repositories"
	"github.com/shashiranjanraj/productos/app/requests"
	"github.com/shashiranjanraj/productos/app/services"
	"github.com/shashiranjanraj/productos/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
}

func input() requests.ProductInput {
	return requests.ProductInput{
		SKU:      123456,
		Name:     "Widget",
		Quantity: 10,
		Price:    2.50,
	}
}

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		quantity, price, want string
	}{
		{"10", "2.50", "25"},
		{"20", "2.50", "50"},
		{"1", "1", "1"},
		{"3", "0.10", "0.30"}, // floats would drift here; decimals must not
		{"100", "9999.00", "999900"},
	}

	for _, tc := range cases {
		got := services.ComputeTotal(
			decimal.RequireFromString(tc.quantity),
			decimal.RequireFromString(tc.price),
		)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"%s × %s = %s, want %s", tc.quantity, tc.price, got, tc.want)
	}
}

func TestCreateComputesTotal(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	product, errs, err := svc.Create(input())
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.True(t, product.Total.Equal(decimal.RequireFromString("25")), "total = %s", product.Total)

	stored, err := svc.Find(product.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("25")))
}

func TestCreateRejectsDuplicateSKU(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	_, errs, err := svc.Create(input())
	require.NoError(t, err)
	require.Empty(t, errs)

	_, errs, err = svc.Create(input())
	require.NoError(t, err)
	assert.Equal(t, requests.MsgSKUTaken, errs["sku"])

	products, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, products, 1, "store must contain exactly one row with the SKU")
}

func TestUpdateRecomputesTotal(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	product, _, err := svc.Create(input())
	require.NoError(t, err)

	in := input()
	in.Quantity = 20
	updated, errs, err := svc.Update(product.ID, in)
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.True(t, updated.Total.Equal(decimal.RequireFromString("50")), "total = %s", updated.Total)
}

func TestUpdateKeepsOwnSKU(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	product, _, err := svc.Create(input())
	require.NoError(t, err)

	// Same SKU, new name: must not trip the uniqueness check.
	in := input()
	in.Name = "Gadget"
	updated, errs, err := svc.Update(product.ID, in)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "Gadget", updated.Name)
}

func TestUpdateRejectsAnotherProductsSKU(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	_, _, err := svc.Create(input())
	require.NoError(t, err)

	second := input()
	second.SKU = 654321
	product, _, err := svc.Create(second)
	require.NoError(t, err)

	in := input() // sku 123456, already owned by the first product
	_, errs, err := svc.Update(product.ID, in)
	require.NoError(t, err)
	assert.Equal(t, requests.MsgSKUTaken, errs["sku"])
}

func TestUpdateMissingProduct(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	_, _, err := svc.Update(42, input())
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	products, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, products, "failed update must not write")
}

func TestDeleteMissingProduct(t *testing.T) {
	setupDB(t)
	svc := services.NewProductService()

	err := svc.Delete(42)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
