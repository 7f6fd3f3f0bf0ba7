package admins

import (
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"not null;uniqueIndex:idx_admin_users_email" json:"email"`
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnsureDefaultAdmin creates the bootstrap admin account when the table is
// empty and credentials are supplied through the environment.
func EnsureDefaultAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing AdminUser
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := AdminUser{Email: email, Password: string(hashed)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created default admin account for %s", email)
	return nil
}
