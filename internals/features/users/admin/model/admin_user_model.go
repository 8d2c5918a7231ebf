package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUserModel struct {
	AdminUserID           string    `gorm:"column:admin_user_id;primaryKey;type:uuid" json:"admin_user_id"`
	AdminUserEmail        string    `gorm:"column:admin_user_email;type:varchar(255);not null;uniqueIndex" json:"admin_user_email"`
	AdminUserPasswordHash string    `gorm:"column:admin_user_password_hash;type:text;not null" json:"-"`
	AdminUserRole         string    `gorm:"column:admin_user_role;type:varchar(30);not null;default:admin" json:"admin_user_role"`
	// no default tag: GORM would skip the field on insert when false,
	// storing a deactivated account as active
	AdminUserIsActive  bool      `gorm:"column:admin_user_is_active;not null" json:"admin_user_is_active"`
	AdminUserCreatedAt time.Time `gorm:"column:admin_user_created_at;autoCreateTime" json:"admin_user_created_at"`
	AdminUserUpdatedAt time.Time `gorm:"column:admin_user_updated_at;autoUpdateTime" json:"admin_user_updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}

func (m *AdminUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminUserID == "" {
		m.AdminUserID = uuid.NewString()
	}
	return nil
}
