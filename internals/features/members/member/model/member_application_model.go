package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MemberApplicationModel struct {
	MemberID string `gorm:"column:member_id;primaryKey;type:uuid" json:"member_id"`

	// true = first-time registration (needs a payment voucher),
	// false = renewal (needs membership number; certificate optional).
	// No column default: a default tag would make GORM skip the field on
	// insert when it is false, turning every renewal into a new registration.
	MemberIsNew bool `gorm:"column:member_is_new;not null" json:"member_is_new"`

	// nullable + unique index: NULLs don't collide, so uniqueness is sparse
	MemberMembershipNumber *string `gorm:"column:member_membership_number;type:varchar(50);uniqueIndex" json:"member_membership_number,omitempty"`

	// free-form Bikram Sambat date strings, presence only
	MemberMembershipDate        *string `gorm:"column:member_membership_date;type:varchar(50)" json:"member_membership_date,omitempty"`
	MemberSchoolAppointmentDate *string `gorm:"column:member_school_appointment_date;type:varchar(50)" json:"member_school_appointment_date,omitempty"`

	MemberEmail string `gorm:"column:member_email;type:varchar(255);not null;uniqueIndex" json:"member_email"`

	MemberFirstName       string `gorm:"column:member_first_name;type:varchar(100);not null" json:"member_first_name"`
	MemberLastName        string `gorm:"column:member_last_name;type:varchar(100);not null" json:"member_last_name"`
	MemberPhoneNumber     string `gorm:"column:member_phone_number;type:varchar(30);not null" json:"member_phone_number"`
	MemberDistrict        string `gorm:"column:member_district;type:varchar(100);not null" json:"member_district"`
	MemberMunicipality    string `gorm:"column:member_municipality;type:varchar(100);not null" json:"member_municipality"`
	MemberWardNo          string `gorm:"column:member_ward_no;type:varchar(10);not null" json:"member_ward_no"`
	MemberSchoolName      string `gorm:"column:member_school_name;type:varchar(255);not null" json:"member_school_name"`
	MemberSchoolAddress   string `gorm:"column:member_school_address;type:varchar(255);not null" json:"member_school_address"`
	MemberAppointmentType string `gorm:"column:member_appointment_type;type:varchar(50);not null" json:"member_appointment_type"`

	// relative paths under the upload root, set only after the file is on disk
	MemberVoucherPath     *string `gorm:"column:member_voucher_path;type:text" json:"member_voucher_path,omitempty"`
	MemberCertificatePath *string `gorm:"column:member_certificate_path;type:text" json:"member_certificate_path,omitempty"`

	MemberIsApproved bool `gorm:"column:member_is_approved;not null;default:false" json:"member_is_approved"`

	// filtered submission payload as received (audit trail)
	MemberSubmission datatypes.JSON `gorm:"column:member_submission" json:"-"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
}

func (MemberApplicationModel) TableName() string {
	return "member_applications"
}

func (m *MemberApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == "" {
		m.MemberID = uuid.NewString()
	}
	return nil
}
