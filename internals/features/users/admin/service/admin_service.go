package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/users/admin/model"
)

const accessTokenTTL = 12 * time.Hour

// Login verifies credentials and returns the signed access token plus the
// admin record. The controller decides how to hand the token back (JSON +
// cookie).
func Login(ctx context.Context, db *gorm.DB, email, password string) (string, *model.AdminUserModel, error) {
	var admin model.AdminUserModel
	if err := db.WithContext(ctx).First(&admin, "admin_user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up account")
	}
	if !admin.AdminUserIsActive {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "This account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminUserPasswordHash), []byte(password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id":   admin.AdminUserID,
		"admin_role": admin.AdminUserRole,
		"iat":        now.Unix(),
		"exp":        now.Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return token, &admin, nil
}

// SeedFromEnv creates the first admin account when ADMIN_SEED_EMAIL and
// ADMIN_SEED_PASSWORD are set and no account with that email exists yet.
func SeedFromEnv(db *gorm.DB) error {
	email := configs.GetEnv("ADMIN_SEED_EMAIL")
	password := configs.GetEnv("ADMIN_SEED_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var cnt int64
	if err := db.Model(&model.AdminUserModel{}).
		Where("admin_user_email = ?", email).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.AdminUserModel{
		AdminUserEmail:        email,
		AdminUserPasswordHash: string(hash),
		AdminUserRole:         constants.RoleSuperAdmin,
		AdminUserIsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[INFO] seeded admin account %s", email)
	return nil
}
