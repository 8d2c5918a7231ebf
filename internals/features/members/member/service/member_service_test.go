package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shikshaksangh_backend/internals/features/members/member/dto"
	"shikshaksangh_backend/internals/features/members/member/model"
)

func newTestService(t *testing.T) *MemberService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "members.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.MemberApplicationModel{}))
	return NewMemberService(db, t.TempDir())
}

func upload(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func newRequest(email string) dto.CreateMemberRequest {
	return dto.CreateMemberRequest{
		MemberIsNew:           true,
		MemberEmail:           email,
		MemberFirstName:       "Sita",
		MemberLastName:        "Sharma",
		MemberPhoneNumber:     "9841000000",
		MemberDistrict:        "Kaski",
		MemberMunicipality:    "Pokhara",
		MemberWardNo:          "5",
		MemberSchoolName:      "Shree Janata Ma Vi",
		MemberSchoolAddress:   "Pokhara-5",
		MemberAppointmentType: "permanent",
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func countMembers(t *testing.T, s *MemberService) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.DB.Model(&model.MemberApplicationModel{}).Count(&n).Error)
	return n
}

// ==========================
// Register
// ==========================

func TestRegister_NewMemberWithVoucher(t *testing.T) {
	s := newTestService(t)

	m, err := s.Register(context.Background(), newRequest("sita@example.com"),
		upload(t, "voucher.png", "image/png", []byte("png")), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, m.MemberID)
	assert.False(t, m.MemberIsApproved)
	assert.Nil(t, m.MemberMembershipNumber)
	require.NotNil(t, m.MemberVoucherPath)
	assert.Equal(t, "vouchers/"+m.MemberID+".png", *m.MemberVoucherPath)

	_, statErr := os.Stat(filepath.Join(s.UploadRoot, filepath.FromSlash(*m.MemberVoucherPath)))
	assert.NoError(t, statErr)

	assert.NotEmpty(t, m.MemberSubmission, "submission snapshot must be kept")
}

func TestRegister_NewMemberWithoutVoucherRejected(t *testing.T) {
	s := newTestService(t)

	_, err := s.Register(context.Background(), newRequest("sita@example.com"), nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	assert.EqualValues(t, 0, countMembers(t, s))
}

func TestRegister_RenewalNeedsMembershipNumber(t *testing.T) {
	s := newTestService(t)

	req := newRequest("ram@example.com")
	req.MemberIsNew = false
	_, err := s.Register(context.Background(), req, nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	req.MemberMembershipNumber = "KS-1001"
	m, err := s.Register(context.Background(), req, nil,
		upload(t, "cert.pdf", "application/pdf", []byte("pdf")))
	require.NoError(t, err)
	require.NotNil(t, m.MemberMembershipNumber)
	assert.Equal(t, "KS-1001", *m.MemberMembershipNumber)
	require.NotNil(t, m.MemberCertificatePath)
	assert.Equal(t, "certificates/"+m.MemberID+".pdf", *m.MemberCertificatePath)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, newRequest("dup@example.com"), upload(t, "v.png", "image/png", []byte("a")), nil)
	require.NoError(t, err)

	_, err = s.Register(ctx, newRequest("dup@example.com"), upload(t, "v.png", "image/png", []byte("b")), nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	assert.EqualValues(t, 1, countMembers(t, s))
}

func TestRegister_DuplicateMembershipNumberRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	req := newRequest("one@example.com")
	req.MemberIsNew = false
	req.MemberMembershipNumber = "KS-7"
	_, err := s.Register(ctx, req, nil, nil)
	require.NoError(t, err)

	req2 := newRequest("two@example.com")
	req2.MemberIsNew = false
	req2.MemberMembershipNumber = "KS-7"
	_, err = s.Register(ctx, req2, nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	assert.EqualValues(t, 1, countMembers(t, s))
}

func TestRegister_BadVoucherMimeLeavesNothingBehind(t *testing.T) {
	s := newTestService(t)

	_, err := s.Register(context.Background(), newRequest("zip@example.com"),
		upload(t, "v.zip", "application/zip", []byte("zip")), nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	assert.EqualValues(t, 0, countMembers(t, s))
	entries, readErr := os.ReadDir(s.UploadRoot)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

// ==========================
// Update
// ==========================

func TestUpdate_BlankFieldsAreDropped(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	m, err := s.Register(ctx, newRequest("patch@example.com"), upload(t, "v.png", "image/png", []byte("v")), nil)
	require.NoError(t, err)

	blank := "   "
	phone := "9860000000"
	out, err := s.Update(ctx, m.MemberID, dto.UpdateMemberRequest{
		MemberFirstName:   &blank,
		MemberPhoneNumber: &phone,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Sita", out.MemberFirstName, "blank patch value must not clear the field")
	assert.Equal(t, "9860000000", out.MemberPhoneNumber)
}

func TestUpdate_SameEmailIsNotADuplicate(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	m, err := s.Register(ctx, newRequest("same@example.com"), upload(t, "v.png", "image/png", []byte("v")), nil)
	require.NoError(t, err)

	email := "same@example.com"
	_, err = s.Update(ctx, m.MemberID, dto.UpdateMemberRequest{MemberEmail: &email}, nil)
	assert.NoError(t, err)
}

func TestUpdate_TakenEmailRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, newRequest("a@example.com"), upload(t, "v.png", "image/png", []byte("v")), nil)
	require.NoError(t, err)
	b, err := s.Register(ctx, newRequest("b@example.com"), upload(t, "v.png", "image/png", []byte("v")), nil)
	require.NoError(t, err)

	email := "a@example.com"
	_, err = s.Update(ctx, b.MemberID, dto.UpdateMemberRequest{MemberEmail: &email}, nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestUpdate_NotFound(t *testing.T) {
	s := newTestService(t)
	_, err := s.Update(context.Background(), "00000000-0000-0000-0000-000000000000", dto.UpdateMemberRequest{}, nil)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

// ==========================
// Approve / Reject
// ==========================

func TestApprove_NewMemberNeedsNumberAndCertificate(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	m, err := s.Register(ctx, newRequest("new@example.com"), upload(t, "v.png", "image/png", []byte("v")), nil)
	require.NoError(t, err)

	_, err = s.Approve(ctx, m.MemberID, dto.ApproveMemberRequest{}, nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = s.Approve(ctx, m.MemberID, dto.ApproveMemberRequest{MemberMembershipNumber: "KS-100"}, nil)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	out, err := s.Approve(ctx, m.MemberID,
		dto.ApproveMemberRequest{MemberMembershipNumber: "KS-100", MemberMembershipDate: "2082-05-01"},
		upload(t, "cert.pdf", "application/pdf", []byte("pdf")))
	require.NoError(t, err)

	assert.True(t, out.MemberIsApproved)
	require.NotNil(t, out.MemberMembershipNumber)
	assert.Equal(t, "KS-100", *out.MemberMembershipNumber)
	require.NotNil(t, out.MemberMembershipDate)
	assert.Equal(t, "2082-05-01", *out.MemberMembershipDate)
	require.NotNil(t, out.MemberCertificatePath)
	_, statErr := os.Stat(filepath.Join(s.UploadRoot, filepath.FromSlash(*out.MemberCertificatePath)))
	assert.NoError(t, statErr)
}

func TestApprove_UsedMembershipNumberRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	renewal := newRequest("old@example.com")
	renewal.MemberIsNew = false
	renewal.MemberMembershipNumber = "KS-42"
	_, err := s.Register(ctx, renewal, nil, nil)
	require.NoError(t, err)

	m, err := s.Register(ctx, newRequest("new@example.com"), upload(t, "v.png", "image/png", []byte("v")), nil)
	require.NoError(t, err)

	_, err = s.Approve(ctx, m.MemberID,
		dto.ApproveMemberRequest{MemberMembershipNumber: "KS-42"},
		upload(t, "cert.pdf", "application/pdf", []byte("pdf")))
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	got, err := s.Get(ctx, m.MemberID)
	require.NoError(t, err)
	assert.False(t, got.MemberIsApproved)
}

func TestApprove_RenewalIsPlainConfirmation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	req := newRequest("renew@example.com")
	req.MemberIsNew = false
	req.MemberMembershipNumber = "KS-9"
	m, err := s.Register(ctx, req, nil, upload(t, "cert.pdf", "application/pdf", []byte("pdf")))
	require.NoError(t, err)

	out, err := s.Approve(ctx, m.MemberID, dto.ApproveMemberRequest{}, nil)
	require.NoError(t, err)
	assert.True(t, out.MemberIsApproved)
	require.NotNil(t, out.MemberMembershipNumber)
	assert.Equal(t, "KS-9", *out.MemberMembershipNumber)
}

func TestReject_DeletesRecordAndFiles(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	m, err := s.Register(ctx, newRequest("reject@example.com"), upload(t, "v.png", "image/png", []byte("v")), nil)
	require.NoError(t, err)
	voucherPath := filepath.Join(s.UploadRoot, filepath.FromSlash(*m.MemberVoucherPath))

	require.NoError(t, s.Reject(ctx, m.MemberID))

	_, err = s.Get(ctx, m.MemberID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	_, statErr := os.Stat(voucherPath)
	assert.True(t, os.IsNotExist(statErr))

	err = s.Reject(ctx, m.MemberID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

// ==========================
// List
// ==========================

func TestList_ApprovedFilter(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := newRequest(fmt.Sprintf("m%d@example.com", i))
		req.MemberIsNew = false
		req.MemberMembershipNumber = fmt.Sprintf("KS-%d", i)
		_, err := s.Register(ctx, req, nil, nil)
		require.NoError(t, err)
	}
	items, total, err := s.List(ctx, 10, 0, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 3)

	_, err = s.Approve(ctx, items[0].MemberID, dto.ApproveMemberRequest{}, nil)
	require.NoError(t, err)

	approved := true
	got, total, err := s.List(ctx, 10, 0, &approved)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, items[0].MemberID, got[0].MemberID)

	pending := false
	got, total, err = s.List(ctx, 10, 0, &pending)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, got, 2)
}

func TestRegister_RenewalPersistedAsRenewal(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	req := newRequest("renewal@example.com")
	req.MemberIsNew = false
	req.MemberMembershipNumber = "KS-999"
	m, err := s.Register(ctx, req, nil, nil)
	require.NoError(t, err)

	// read the row back: a column default must not flip the flag on insert
	var stored model.MemberApplicationModel
	require.NoError(t, s.DB.First(&stored, "member_id = ?", m.MemberID).Error)
	assert.False(t, stored.MemberIsNew)

	// and approval stays a plain confirmation
	out, err := s.Approve(ctx, m.MemberID, dto.ApproveMemberRequest{}, nil)
	require.NoError(t, err)
	assert.True(t, out.MemberIsApproved)
}

func TestUpdate_ReplacementCertificateRemovesOldFile(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	req := newRequest("cert@example.com")
	req.MemberIsNew = false
	req.MemberMembershipNumber = "KS-55"
	m, err := s.Register(ctx, req, nil, upload(t, "cert.pdf", "application/pdf", []byte("old")))
	require.NoError(t, err)
	require.NotNil(t, m.MemberCertificatePath)
	oldPath := filepath.Join(s.UploadRoot, filepath.FromSlash(*m.MemberCertificatePath))

	out, err := s.Update(ctx, m.MemberID, dto.UpdateMemberRequest{},
		upload(t, "cert2.pdf", "application/pdf", []byte("new")))
	require.NoError(t, err)
	require.NotNil(t, out.MemberCertificatePath)
	assert.NotEqual(t, *m.MemberCertificatePath, *out.MemberCertificatePath)

	_, statErr := os.Stat(filepath.Join(s.UploadRoot, filepath.FromSlash(*out.MemberCertificatePath)))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(statErr), "replaced certificate must be removed")
}

func TestApprove_ReplacesIntakeCertificate(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	m, err := s.Register(ctx, newRequest("intakecert@example.com"),
		upload(t, "v.png", "image/png", []byte("v")),
		upload(t, "cert.pdf", "application/pdf", []byte("old")))
	require.NoError(t, err)
	require.NotNil(t, m.MemberCertificatePath)
	oldPath := filepath.Join(s.UploadRoot, filepath.FromSlash(*m.MemberCertificatePath))

	out, err := s.Approve(ctx, m.MemberID,
		dto.ApproveMemberRequest{MemberMembershipNumber: "KS-77"},
		upload(t, "cert-final.pdf", "application/pdf", []byte("new")))
	require.NoError(t, err)
	require.NotNil(t, out.MemberCertificatePath)
	assert.NotEqual(t, *m.MemberCertificatePath, *out.MemberCertificatePath)

	_, statErr := os.Stat(oldPath)
	assert.True(t, os.IsNotExist(statErr), "intake certificate must be replaced, not orphaned")
}
