package migrations

import (
	"github.com/shashiranjanraj/productos/app/models"
	"github.com/shashiranjanraj/productos/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260201000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260201000001_create_products_table", &CreateProductsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: products --------
// The unique index on sku is the authoritative uniqueness guard; the
// application-level check only exists to fail fast.

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}
