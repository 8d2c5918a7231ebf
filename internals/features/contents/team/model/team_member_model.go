package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberModel struct {
	TeamMemberID             string    `gorm:"column:team_member_id;primaryKey;type:uuid" json:"team_member_id"`
	TeamMemberName           string    `gorm:"column:team_member_name;type:varchar(150);not null" json:"team_member_name"`
	TeamMemberRole           string    `gorm:"column:team_member_role;type:varchar(100);not null" json:"team_member_role"`
	TeamMemberProvinceNumber int       `gorm:"column:team_member_province_number;not null;index" json:"team_member_province_number"`
	TeamMemberPhotoPath      *string   `gorm:"column:team_member_photo_path;type:text" json:"team_member_photo_path,omitempty"`
	TeamMemberOrder          int       `gorm:"column:team_member_order" json:"team_member_order"`
	TeamMemberCreatedAt      time.Time `gorm:"column:team_member_created_at;autoCreateTime" json:"team_member_created_at"`
	TeamMemberUpdatedAt      time.Time `gorm:"column:team_member_updated_at;autoUpdateTime" json:"team_member_updated_at"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}

func (m *TeamMemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeamMemberID == "" {
		m.TeamMemberID = uuid.NewString()
	}
	return nil
}
