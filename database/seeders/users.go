package seeders

import (
	"github.com/shashiranjanraj/productos/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	Register("users", SeedUsers)
}

// seedPassword is the shared fixture password ("password123", hashed).
const seedPassword = "password123"

var seedUsers = []struct {
	name  string
	email string
}{
	{"Juan Pérez", "juanperez@example.com"},
	{"María Gómez", "mariagomez@example.com"},
	{"Carlos Sánchez", "carlossanchez@example.com"},
	{"Ana Martínez", "anamartinez@example.com"},
	{"Luis Rodríguez", "luisrodriguez@example.com"},
	{"Sofía Díaz", "sofiadiaz@example.com"},
	{"Miguel Torres", "migueltorres@example.com"},
	{"Laura Fernández", "laurafernandez@example.com"},
	{"Pedro Morales", "pedromorales@example.com"},
	{"Elena Ruiz", "elenaruiz@example.com"},
}

// SeedUsers inserts the fixed set of demo users.
func SeedUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, u := range seedUsers {
		user := models.User{Name: u.name, Email: u.email, Password: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}
