package seeders_test

import (
	"path/filepath"
	"testing"

	"github.com/shashiranjanraj/productos/app/models"
	"github.com/shashiranjanraj/productos/database/seeders"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return db
}

func TestFactoryInvariants(t *testing.T) {
	factory := seeders.NewProductFactory(1)
	seen := make(map[int64]bool)

	minPrice := decimal.RequireFromString("1.00")
	maxPrice := decimal.RequireFromString("9999.00")

	for i := 0; i < 500; i++ {
		p := factory.Make()

		assert.GreaterOrEqual(t, p.SKU, int64(100000))
		assert.LessOrEqual(t, p.SKU, int64(999999))
		assert.False(t, seen[p.SKU], "SKU %d repeated", p.SKU)
		seen[p.SKU] = true

		assert.True(t, p.Quantity.GreaterThanOrEqual(decimal.NewFromInt(1)))
		assert.True(t, p.Quantity.LessThanOrEqual(decimal.NewFromInt(100)))
		assert.True(t, p.Price.GreaterThanOrEqual(minPrice), "price = %s", p.Price)
		assert.True(t, p.Price.LessThanOrEqual(maxPrice), "price = %s", p.Price)

		assert.True(t, p.Total.Equal(p.Quantity.Mul(p.Price)),
			"total %s != %s × %s", p.Total, p.Quantity, p.Price)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
	}
}

func TestSeedProducts(t *testing.T) {
	db := openDB(t)

	require.NoError(t, seeders.SeedProducts(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 50, count)
}

func TestSeedUsers(t *testing.T) {
	db := openDB(t)

	require.NoError(t, seeders.SeedUsers(db))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 10)

	for _, u := range users {
		assert.NotEmpty(t, u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")),
			"user %s must carry the fixture password", u.Email)
	}
}
