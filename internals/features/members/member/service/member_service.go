// Member intake + approval workflows over the member_applications table.
//
// The duplicate pre-checks here are advisory: the unique indexes on
// member_email and member_membership_number are what actually reject a
// racing write (gorm.ErrDuplicatedKey is mapped to the same 400).
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/members/member/dto"
	"shikshaksangh_backend/internals/features/members/member/model"
	"shikshaksangh_backend/internals/helpers/mailer"
	"shikshaksangh_backend/internals/helpers/storage"
)

type MemberService struct {
	DB         *gorm.DB
	UploadRoot string
}

func NewMemberService(db *gorm.DB, uploadRoot string) *MemberService {
	return &MemberService{DB: db, UploadRoot: uploadRoot}
}

var (
	voucherSlot     = storage.Slot{Folder: constants.FolderVouchers, MimeTypes: constants.VoucherMimeTypes}
	certificateSlot = storage.Slot{Folder: constants.FolderCertificates, MimeTypes: constants.CertificateMimeTypes}
)

func strPtrIfNotEmpty(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

// ==========================
// Uniqueness checks
// ==========================

func (s *MemberService) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	q := s.DB.WithContext(ctx).Model(&model.MemberApplicationModel{}).
		Where("member_email = ?", strings.TrimSpace(email))
	if excludeID != "" {
		q = q.Where("member_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (s *MemberService) membershipNumberTaken(ctx context.Context, number, excludeID string) (bool, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return false, nil
	}
	q := s.DB.WithContext(ctx).Model(&model.MemberApplicationModel{}).
		Where("member_membership_number = ?", number)
	if excludeID != "" {
		q = q.Where("member_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (s *MemberService) checkUnique(ctx context.Context, email, number, excludeID string) error {
	if email != "" {
		taken, err := s.emailTaken(ctx, email, excludeID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
		}
		if taken {
			return fiber.NewError(fiber.StatusBadRequest, "Email is already registered")
		}
	}
	if strings.TrimSpace(number) != "" {
		taken, err := s.membershipNumberTaken(ctx, number, excludeID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check membership number")
		}
		if taken {
			return fiber.NewError(fiber.StatusBadRequest, "Membership number is already in use")
		}
	}
	return nil
}

func mapStorageErr(err error) error {
	if errors.Is(err, storage.ErrMimeNotAllowed) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to store uploaded file")
}

// ==========================
// Intake workflow
// ==========================

// Register runs the public submission pipeline: uniqueness pre-check,
// blank-field filtering, base record create, then one upload per present
// slot named after the record id. If an upload fails the fresh record is
// removed again (best effort) so no half-submitted application survives.
func (s *MemberService) Register(ctx context.Context, req dto.CreateMemberRequest, voucher, certificate *multipart.FileHeader) (*model.MemberApplicationModel, error) {
	if req.MemberIsNew && voucher == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payment voucher is required for new registrations")
	}
	if !req.MemberIsNew && strings.TrimSpace(req.MemberMembershipNumber) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Membership number is required for renewals")
	}

	if err := s.checkUnique(ctx, req.MemberEmail, req.MemberMembershipNumber, ""); err != nil {
		return nil, err
	}

	// validate declared MIME types up front: nothing is created when an
	// upload is going to be rejected anyway
	if voucher != nil && !voucherSlot.Allows(voucher.Header.Get("Content-Type")) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Voucher must be a JPEG or PNG image")
	}
	if certificate != nil && !certificateSlot.Allows(certificate.Header.Get("Content-Type")) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Certificate must be a PDF, JPEG or PNG")
	}

	m := model.MemberApplicationModel{
		MemberIsNew:                 req.MemberIsNew,
		MemberMembershipNumber:      strPtrIfNotEmpty(req.MemberMembershipNumber),
		MemberMembershipDate:        strPtrIfNotEmpty(req.MemberMembershipDate),
		MemberSchoolAppointmentDate: strPtrIfNotEmpty(req.MemberSchoolAppointmentDate),
		MemberEmail:                 strings.TrimSpace(req.MemberEmail),
		MemberFirstName:             strings.TrimSpace(req.MemberFirstName),
		MemberLastName:              strings.TrimSpace(req.MemberLastName),
		MemberPhoneNumber:           strings.TrimSpace(req.MemberPhoneNumber),
		MemberDistrict:              strings.TrimSpace(req.MemberDistrict),
		MemberMunicipality:          strings.TrimSpace(req.MemberMunicipality),
		MemberWardNo:                strings.TrimSpace(req.MemberWardNo),
		MemberSchoolName:            strings.TrimSpace(req.MemberSchoolName),
		MemberSchoolAddress:         strings.TrimSpace(req.MemberSchoolAddress),
		MemberAppointmentType:       strings.TrimSpace(req.MemberAppointmentType),
	}
	if snap, err := json.Marshal(req); err == nil {
		m.MemberSubmission = snap
	}

	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email or membership number is already registered")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create member application")
	}

	// uploads, named after the record id
	paths := map[string]interface{}{}
	if voucher != nil {
		rel, err := storage.SaveUpload(s.UploadRoot, voucherSlot, m.MemberID, voucher)
		if err != nil {
			s.compensate(ctx, &m, paths)
			return nil, mapStorageErr(err)
		}
		paths["member_voucher_path"] = rel
	}
	if certificate != nil {
		rel, err := storage.SaveUpload(s.UploadRoot, certificateSlot, m.MemberID, certificate)
		if err != nil {
			s.compensate(ctx, &m, paths)
			return nil, mapStorageErr(err)
		}
		paths["member_certificate_path"] = rel
	}

	if len(paths) > 0 {
		if err := s.DB.WithContext(ctx).Model(&m).Updates(paths).Error; err != nil {
			s.compensate(ctx, &m, paths)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to attach uploaded files")
		}
		if v, ok := paths["member_voucher_path"].(string); ok {
			m.MemberVoucherPath = &v
		}
		if v, ok := paths["member_certificate_path"].(string); ok {
			m.MemberCertificatePath = &v
		}
	}

	return &m, nil
}

// compensate removes the partial record and any files already written when a
// later intake step fails.
func (s *MemberService) compensate(ctx context.Context, m *model.MemberApplicationModel, paths map[string]interface{}) {
	for _, v := range paths {
		if rel, ok := v.(string); ok {
			_ = storage.Remove(s.UploadRoot, rel)
		}
	}
	_ = s.DB.WithContext(ctx).Delete(&model.MemberApplicationModel{}, "member_id = ?", m.MemberID).Error
}

// ==========================
// Record store operations
// ==========================

func (s *MemberService) Get(ctx context.Context, id string) (*model.MemberApplicationModel, error) {
	var m model.MemberApplicationModel
	if err := s.DB.WithContext(ctx).First(&m, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Member application not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load member application")
	}
	return &m, nil
}

func (s *MemberService) List(ctx context.Context, limit, offset int, approved *bool) ([]model.MemberApplicationModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.MemberApplicationModel{})
	if approved != nil {
		q = q.Where("member_is_approved = ?", *approved)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count member applications")
	}
	var items []model.MemberApplicationModel
	if err := q.Order("member_created_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list member applications")
	}
	return items, total, nil
}

// Update applies a filtered patch (blank values dropped) and an optional
// replacement certificate. Email/number uniqueness is re-checked only when
// the patch actually changes the stored value.
func (s *MemberService) Update(ctx context.Context, id string, req dto.UpdateMemberRequest, certificate *multipart.FileHeader) (*model.MemberApplicationModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := req.Patch()

	checkEmail := ""
	if v, ok := patch["member_email"].(string); ok && v != m.MemberEmail {
		checkEmail = v
	} else {
		delete(patch, "member_email")
	}
	checkNumber := ""
	if v, ok := patch["member_membership_number"].(string); ok {
		if m.MemberMembershipNumber == nil || v != *m.MemberMembershipNumber {
			checkNumber = v
		} else {
			delete(patch, "member_membership_number")
		}
	}
	if err := s.checkUnique(ctx, checkEmail, checkNumber, m.MemberID); err != nil {
		return nil, err
	}

	oldCert := m.MemberCertificatePath
	if certificate != nil {
		rel, err := storage.SaveUpload(s.UploadRoot, certificateSlot, m.MemberID, certificate)
		if err != nil {
			return nil, mapStorageErr(err)
		}
		patch["member_certificate_path"] = rel
	}

	if len(patch) > 0 {
		if err := s.DB.WithContext(ctx).Model(m).Updates(patch).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Email or membership number is already registered")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update member application")
		}
		s.removeReplacedCertificate(oldCert, patch)
	}
	return s.Get(ctx, id)
}

// removeReplacedCertificate drops the previous certificate file once a
// patch carrying a new path has been committed.
func (s *MemberService) removeReplacedCertificate(old *string, patch map[string]interface{}) {
	rel, ok := patch["member_certificate_path"].(string)
	if !ok || old == nil || *old == rel {
		return
	}
	_ = storage.Remove(s.UploadRoot, *old)
}

// ==========================
// Approval workflow
// ==========================

// Approve marks an application approved. First-time registrations need the
// admin to supply a fresh membership number and a certificate file;
// renewals are a plain confirmation.
func (s *MemberService) Approve(ctx context.Context, id string, req dto.ApproveMemberRequest, certificate *multipart.FileHeader) (*model.MemberApplicationModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{"member_is_approved": true}
	oldCert := m.MemberCertificatePath

	if m.MemberIsNew {
		number := strings.TrimSpace(req.MemberMembershipNumber)
		if number == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Membership number is required to approve a new member")
		}
		if certificate == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Membership certificate is required to approve a new member")
		}
		if err := s.checkUnique(ctx, "", number, m.MemberID); err != nil {
			return nil, err
		}
		rel, err := storage.SaveUpload(s.UploadRoot, certificateSlot, m.MemberID, certificate)
		if err != nil {
			return nil, mapStorageErr(err)
		}
		patch["member_membership_number"] = number
		patch["member_certificate_path"] = rel
		if d := strings.TrimSpace(req.MemberMembershipDate); d != "" {
			patch["member_membership_date"] = d
		}
	}

	if err := s.DB.WithContext(ctx).Model(m).Updates(patch).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Membership number is already in use")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to approve member application")
	}
	s.removeReplacedCertificate(oldCert, patch)

	out, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	mailer.SendAsync(out.MemberEmail, "Membership approved",
		fmt.Sprintf("<p>Dear %s %s,</p><p>Your membership application has been approved.</p>",
			out.MemberFirstName, out.MemberLastName))

	return out, nil
}

// Reject deletes the application outright, files included. The reason
// string is accepted by the DTO but intentionally not persisted or
// forwarded.
func (s *MemberService) Reject(ctx context.Context, id string) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&model.MemberApplicationModel{}, "member_id = ?", m.MemberID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete member application")
	}
	if m.MemberVoucherPath != nil {
		_ = storage.Remove(s.UploadRoot, *m.MemberVoucherPath)
	}
	if m.MemberCertificatePath != nil {
		_ = storage.Remove(s.UploadRoot, *m.MemberCertificatePath)
	}
	return nil
}
