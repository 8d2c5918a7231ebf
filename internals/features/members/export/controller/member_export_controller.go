package controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/features/members/member/service"
	helper "shikshaksangh_backend/internals/helpers"
)

type MemberExportController struct {
	Service *service.MemberService
}

func NewMemberExportController(db *gorm.DB) *MemberExportController {
	return &MemberExportController{Service: service.NewMemberService(db, configs.UploadRoot())}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ExportCSV dumps member applications as a timestamped CSV attachment.
// Accepts the usual pagination params plus ?approved=true|false; without
// params it exports everything up to the export hard cap.
func (ctrl *MemberExportController) ExportCSV(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.ExportOpts)

	var approved *bool
	switch c.Query("approved") {
	case "true":
		v := true
		approved = &v
	case "false":
		v := false
		approved = &v
	}

	items, _, err := ctrl.Service.List(c.UserContext(), p.Limit(), p.Offset(), approved)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{
		"id", "is_new", "membership_number", "membership_date", "school_appointment_date",
		"email", "first_name", "last_name", "phone_number", "district", "municipality",
		"ward_no", "school_name", "school_address", "appointment_type",
		"voucher_path", "certificate_path", "is_approved", "created_at",
	})
	for _, m := range items {
		_ = w.Write([]string{
			m.MemberID,
			fmt.Sprintf("%t", m.MemberIsNew),
			deref(m.MemberMembershipNumber),
			deref(m.MemberMembershipDate),
			deref(m.MemberSchoolAppointmentDate),
			m.MemberEmail,
			m.MemberFirstName,
			m.MemberLastName,
			m.MemberPhoneNumber,
			m.MemberDistrict,
			m.MemberMunicipality,
			m.MemberWardNo,
			m.MemberSchoolName,
			m.MemberSchoolAddress,
			m.MemberAppointmentType,
			deref(m.MemberVoucherPath),
			deref(m.MemberCertificatePath),
			fmt.Sprintf("%t", m.MemberIsApproved),
			m.MemberCreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build CSV")
	}

	filename := fmt.Sprintf("members-%s.csv", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
