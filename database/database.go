package database

import (
	"errors"
	"fmt"
	"strings"

	"mlmsite-api/internal/domain/plans"
	"mlmsite-api/internal/domain/users"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		logrus.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err := Migrate(db); err != nil {
		logrus.WithError(err).Fatal("AutoMigrate error")
	}

	DB = db
	logrus.Info("Connected and migrated successfully")
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&plans.Plan{},
	)
}

// EnsureAdmin creates the bootstrap admin account, or promotes and resets
// the password of an existing account with the same email.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	if password == "" {
		return errors.New("admin password is empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	h := string(hashed)

	var user users.User
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = users.User{
			Name:         "Admin",
			Email:        email,
			Password:     &h,
			AuthProvider: users.ProviderLocal,
			Role:         users.RoleAdmin,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		logrus.WithField("email", email).Info("Admin account created")
		return nil
	case err != nil:
		return fmt.Errorf("lookup admin: %w", err)
	}

	if err := db.Model(&user).Updates(map[string]any{
		"password": h,
		"role":     users.RoleAdmin,
	}).Error; err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	logrus.WithField("email", email).Info("Admin account refreshed")
	return nil
}
