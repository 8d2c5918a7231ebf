package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/users/admin/model"
)

func openAdminDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "admin.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AdminUserModel{}))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string, active bool) model.AdminUserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := model.AdminUserModel{
		AdminUserEmail:        email,
		AdminUserPasswordHash: string(hash),
		AdminUserRole:         constants.RoleAdmin,
		AdminUserIsActive:     active,
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func adminErrCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestLogin_Success(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := openAdminDB(t)
	admin := seedAdmin(t, db, "admin@example.com", "s3cret", true)

	token, got, err := Login(context.Background(), db, "admin@example.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, admin.AdminUserID, got.AdminUserID)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, admin.AdminUserID, claims["admin_id"])
	assert.Equal(t, constants.RoleAdmin, claims["admin_role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := openAdminDB(t)
	seedAdmin(t, db, "admin@example.com", "s3cret", true)

	_, _, err := Login(context.Background(), db, "admin@example.com", "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, adminErrCode(t, err))
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := openAdminDB(t)
	_, _, err := Login(context.Background(), db, "nobody@example.com", "x")
	assert.Equal(t, fiber.StatusUnauthorized, adminErrCode(t, err))
}

func TestLogin_InactiveAccount(t *testing.T) {
	db := openAdminDB(t)
	seedAdmin(t, db, "gone@example.com", "s3cret", false)

	_, _, err := Login(context.Background(), db, "gone@example.com", "s3cret")
	assert.Equal(t, fiber.StatusForbidden, adminErrCode(t, err))
}

func TestSeedFromEnv(t *testing.T) {
	db := openAdminDB(t)
	t.Setenv("ADMIN_SEED_EMAIL", "seed@example.com")
	t.Setenv("ADMIN_SEED_PASSWORD", "bootstrap")

	require.NoError(t, SeedFromEnv(db))

	var admin model.AdminUserModel
	require.NoError(t, db.First(&admin, "admin_user_email = ?", "seed@example.com").Error)
	assert.Equal(t, constants.RoleSuperAdmin, admin.AdminUserRole)
	assert.True(t, admin.AdminUserIsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.AdminUserPasswordHash), []byte("bootstrap")))

	// idempotent on a second run
	require.NoError(t, SeedFromEnv(db))
	var cnt int64
	require.NoError(t, db.Model(&model.AdminUserModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestSeedFromEnv_NoEnvIsNoop(t *testing.T) {
	db := openAdminDB(t)
	t.Setenv("ADMIN_SEED_EMAIL", "")
	t.Setenv("ADMIN_SEED_PASSWORD", "")

	require.NoError(t, SeedFromEnv(db))
	var cnt int64
	require.NoError(t, db.Model(&model.AdminUserModel{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}
