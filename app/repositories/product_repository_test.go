package repositories_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shashiranjanraj/productos/app/models"
	"github.com/shashiranjanraj/productos/app/repositories"
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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
}

func fixture(sku int64) models.Product {
	quantity := decimal.NewFromInt(10)
	price := decimal.RequireFromString("2.50")
	return models.Product{
		SKU:      sku,
		Name:     "Widget",
		Quantity: quantity,
		Price:    price,
		Total:    quantity.Mul(price),
	}
}

func TestCreateAndFind(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	p := fixture(123456)
	require.NoError(t, repo.Create(&p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.Find(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(123456), got.SKU)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("25")), "total = %s", got.Total)
}

func TestFindMissing(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	_, err := repo.Find(42)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestDuplicateSKURejectedByIndex(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	first := fixture(123456)
	require.NoError(t, repo.Create(&first))

	second := fixture(123456)
	err := repo.Create(&second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateSKU)

	n, err := repo.SKUExists(123456, 0)
	require.NoError(t, err)
	assert.True(t, n)

	products, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, products, 1, "losing write must not add a row")
}

func TestSKUExistsExcludesOwnRow(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	p := fixture(123456)
	require.NoError(t, repo.Create(&p))

	taken, err := repo.SKUExists(123456, p.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a product keeping its own SKU is not a conflict")

	taken, err = repo.SKUExists(123456, 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestListNewestFirst(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	base := time.Now().Add(-time.Hour)
	for i, sku := range []int64{111111, 222222, 333333} {
		p := fixture(sku)
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(&p))
	}

	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, int64(333333), products[0].SKU)
	assert.Equal(t, int64(222222), products[1].SKU)
	assert.Equal(t, int64(111111), products[2].SKU)
}

func TestUpdateOverwritesFields(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	p := fixture(123456)
	require.NoError(t, repo.Create(&p))

	p.Name = "Gadget"
	p.Quantity = decimal.NewFromInt(20)
	p.Total = p.Quantity.Mul(p.Price)
	require.NoError(t, repo.Update(&p))

	got, err := repo.Find(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gadget", got.Name)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("50")), "total = %s", got.Total)
}

func TestDeleteIsHardAndIdempotencyFails(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProductRepository()

	p := fixture(123456)
	require.NoError(t, repo.Create(&p))

	require.NoError(t, repo.Delete(p.ID))

	_, err := repo.Find(p.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	err = repo.Delete(p.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	products, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, products)
}
