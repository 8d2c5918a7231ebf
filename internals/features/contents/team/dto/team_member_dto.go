package dto

import (
	"time"

	"shikshaksangh_backend/internals/features/contents/team/model"
)

type TeamMemberDTO struct {
	TeamMemberID             string    `json:"team_member_id"`
	TeamMemberName           string    `json:"team_member_name"`
	TeamMemberRole           string    `json:"team_member_role"`
	TeamMemberProvinceNumber int       `json:"team_member_province_number"`
	TeamMemberPhotoPath      *string   `json:"team_member_photo_path,omitempty"`
	TeamMemberOrder          int       `json:"team_member_order"`
	TeamMemberCreatedAt      time.Time `json:"team_member_created_at"`
	TeamMemberUpdatedAt      time.Time `json:"team_member_updated_at"`
}

type CreateTeamMemberRequest struct {
	TeamMemberName           string `json:"team_member_name" form:"team_member_name" validate:"required"`
	TeamMemberRole           string `json:"team_member_role" form:"team_member_role" validate:"required"`
	TeamMemberProvinceNumber int    `json:"team_member_province_number" form:"team_member_province_number" validate:"required,min=1,max=7"`
	TeamMemberOrder          int    `json:"team_member_order" form:"team_member_order"`
}

func ToTeamMemberDTO(m model.TeamMemberModel) TeamMemberDTO {
	return TeamMemberDTO{
		TeamMemberID:             m.TeamMemberID,
		TeamMemberName:           m.TeamMemberName,
		TeamMemberRole:           m.TeamMemberRole,
		TeamMemberProvinceNumber: m.TeamMemberProvinceNumber,
		TeamMemberPhotoPath:      m.TeamMemberPhotoPath,
		TeamMemberOrder:          m.TeamMemberOrder,
		TeamMemberCreatedAt:      m.TeamMemberCreatedAt,
		TeamMemberUpdatedAt:      m.TeamMemberUpdatedAt,
	}
}
