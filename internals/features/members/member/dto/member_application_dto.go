package dto

import (
	"strings"
	"time"

	"shikshaksangh_backend/internals/features/members/member/model"
)

// ============================
// Response DTO
// ============================

type MemberApplicationDTO struct {
	MemberID                    string     `json:"member_id"`
	MemberIsNew                 bool       `json:"member_is_new"`
	MemberMembershipNumber      *string    `json:"member_membership_number,omitempty"`
	MemberMembershipDate        *string    `json:"member_membership_date,omitempty"`
	MemberSchoolAppointmentDate *string    `json:"member_school_appointment_date,omitempty"`
	MemberEmail                 string     `json:"member_email"`
	MemberFirstName             string     `json:"member_first_name"`
	MemberLastName              string     `json:"member_last_name"`
	MemberPhoneNumber           string     `json:"member_phone_number"`
	MemberDistrict              string     `json:"member_district"`
	MemberMunicipality          string     `json:"member_municipality"`
	MemberWardNo                string     `json:"member_ward_no"`
	MemberSchoolName            string     `json:"member_school_name"`
	MemberSchoolAddress         string     `json:"member_school_address"`
	MemberAppointmentType       string     `json:"member_appointment_type"`
	MemberVoucherPath           *string    `json:"member_voucher_path,omitempty"`
	MemberCertificatePath       *string    `json:"member_certificate_path,omitempty"`
	MemberIsApproved            bool       `json:"member_is_approved"`
	MemberCreatedAt             time.Time  `json:"member_created_at"`
	MemberUpdatedAt             time.Time  `json:"member_updated_at"`
}

// ============================
// Request DTOs
// ============================

type CreateMemberRequest struct {
	MemberIsNew                 bool   `json:"member_is_new" form:"member_is_new"`
	MemberMembershipNumber      string `json:"member_membership_number" form:"member_membership_number"`
	MemberMembershipDate        string `json:"member_membership_date" form:"member_membership_date"`
	MemberSchoolAppointmentDate string `json:"member_school_appointment_date" form:"member_school_appointment_date"`
	MemberEmail                 string `json:"member_email" form:"member_email" validate:"required,email"`
	MemberFirstName             string `json:"member_first_name" form:"member_first_name" validate:"required"`
	MemberLastName              string `json:"member_last_name" form:"member_last_name" validate:"required"`
	MemberPhoneNumber           string `json:"member_phone_number" form:"member_phone_number" validate:"required"`
	MemberDistrict              string `json:"member_district" form:"member_district" validate:"required"`
	MemberMunicipality          string `json:"member_municipality" form:"member_municipality" validate:"required"`
	MemberWardNo                string `json:"member_ward_no" form:"member_ward_no" validate:"required"`
	MemberSchoolName            string `json:"member_school_name" form:"member_school_name" validate:"required"`
	MemberSchoolAddress         string `json:"member_school_address" form:"member_school_address" validate:"required"`
	MemberAppointmentType       string `json:"member_appointment_type" form:"member_appointment_type" validate:"required"`
}

// UpdateMemberRequest is a patch: blank/absent fields are dropped before
// merge, so an update can never clear a stored value to blank.
type UpdateMemberRequest struct {
	MemberMembershipNumber      *string `json:"member_membership_number" form:"member_membership_number"`
	MemberMembershipDate        *string `json:"member_membership_date" form:"member_membership_date"`
	MemberSchoolAppointmentDate *string `json:"member_school_appointment_date" form:"member_school_appointment_date"`
	MemberEmail                 *string `json:"member_email" form:"member_email" validate:"omitempty,email"`
	MemberFirstName             *string `json:"member_first_name" form:"member_first_name"`
	MemberLastName              *string `json:"member_last_name" form:"member_last_name"`
	MemberPhoneNumber           *string `json:"member_phone_number" form:"member_phone_number"`
	MemberDistrict              *string `json:"member_district" form:"member_district"`
	MemberMunicipality          *string `json:"member_municipality" form:"member_municipality"`
	MemberWardNo                *string `json:"member_ward_no" form:"member_ward_no"`
	MemberSchoolName            *string `json:"member_school_name" form:"member_school_name"`
	MemberSchoolAddress         *string `json:"member_school_address" form:"member_school_address"`
	MemberAppointmentType       *string `json:"member_appointment_type" form:"member_appointment_type"`
}

type ApproveMemberRequest struct {
	MemberMembershipNumber string `json:"member_membership_number" form:"member_membership_number"`
	MemberMembershipDate   string `json:"member_membership_date" form:"member_membership_date"`
}

// RejectMemberRequest carries the admin's reason. The reason is accepted
// for UI symmetry but not persisted anywhere; reject is an unconditional
// delete.
type RejectMemberRequest struct {
	Reason string `json:"reason" form:"reason"`
}

// ============================
// Patch filtering
// ============================

// Patch returns the column→value map for the update, dropping nil pointers
// and blank strings.
func (r UpdateMemberRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	put := func(col string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			patch[col] = strings.TrimSpace(*v)
		}
	}
	put("member_membership_number", r.MemberMembershipNumber)
	put("member_membership_date", r.MemberMembershipDate)
	put("member_school_appointment_date", r.MemberSchoolAppointmentDate)
	put("member_email", r.MemberEmail)
	put("member_first_name", r.MemberFirstName)
	put("member_last_name", r.MemberLastName)
	put("member_phone_number", r.MemberPhoneNumber)
	put("member_district", r.MemberDistrict)
	put("member_municipality", r.MemberMunicipality)
	put("member_ward_no", r.MemberWardNo)
	put("member_school_name", r.MemberSchoolName)
	put("member_school_address", r.MemberSchoolAddress)
	put("member_appointment_type", r.MemberAppointmentType)
	return patch
}

// ============================
// Converter
// ============================

func ToMemberApplicationDTO(m model.MemberApplicationModel) MemberApplicationDTO {
	return MemberApplicationDTO{
		MemberID:                    m.MemberID,
		MemberIsNew:                 m.MemberIsNew,
		MemberMembershipNumber:      m.MemberMembershipNumber,
		MemberMembershipDate:        m.MemberMembershipDate,
		MemberSchoolAppointmentDate: m.MemberSchoolAppointmentDate,
		MemberEmail:                 m.MemberEmail,
		MemberFirstName:             m.MemberFirstName,
		MemberLastName:              m.MemberLastName,
		MemberPhoneNumber:           m.MemberPhoneNumber,
		MemberDistrict:              m.MemberDistrict,
		MemberMunicipality:          m.MemberMunicipality,
		MemberWardNo:                m.MemberWardNo,
		MemberSchoolName:            m.MemberSchoolName,
		MemberSchoolAddress:         m.MemberSchoolAddress,
		MemberAppointmentType:       m.MemberAppointmentType,
		MemberVoucherPath:           m.MemberVoucherPath,
		MemberCertificatePath:       m.MemberCertificatePath,
		MemberIsApproved:            m.MemberIsApproved,
		MemberCreatedAt:             m.MemberCreatedAt,
		MemberUpdatedAt:             m.MemberUpdatedAt,
	}
}
