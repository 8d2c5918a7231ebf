package controller

import (
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/features/members/member/dto"
	"shikshaksangh_backend/internals/features/members/member/service"
	helper "shikshaksangh_backend/internals/helpers"
)

var validateMember = validator.New()

type MemberController struct {
	Service *service.MemberService
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{Service: service.NewMemberService(db, configs.UploadRoot())}
}

// formFile returns the upload for a slot key, or nil when absent.
func formFile(c *fiber.Ctx, key string) *multipart.FileHeader {
	fh, err := c.FormFile(key)
	if err != nil || fh == nil {
		return nil
	}
	return fh
}

// =============================
// ➕ Register (public, multipart)
// =============================
func (ctrl *MemberController) RegisterMember(c *fiber.Ctx) error {
	var body dto.CreateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMember.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	voucher := formFile(c, "voucher")
	certificate := formFile(c, "membershipCertificate")

	m, err := ctrl.Service.Register(c.UserContext(), body, voucher, certificate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Member application submitted", dto.ToMemberApplicationDTO(*m))
}

// =============================
// 📄 List (admin)
// =============================
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	var approved *bool
	switch c.Query("approved") {
	case "true":
		v := true
		approved = &v
	case "false":
		v := false
		approved = &v
	}

	items, total, err := ctrl.Service.List(c.UserContext(), p.Limit(), p.Offset(), approved)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]dto.MemberApplicationDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.ToMemberApplicationDTO(m))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": out,
		"meta":  helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get by ID (admin)
// =============================
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	m, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", dto.ToMemberApplicationDTO(*m))
}

// =============================
// 🔄 Update (admin, multipart or JSON)
// =============================
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	var body dto.UpdateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMember.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.Service.Update(c.UserContext(), c.Params("id"), body, formFile(c, "membershipCertificate"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Member application updated", dto.ToMemberApplicationDTO(*m))
}

// =============================
// ✅ Approve (admin)
// =============================
func (ctrl *MemberController) ApproveMember(c *fiber.Ctx) error {
	var body dto.ApproveMemberRequest
	if err := c.BodyParser(&body); err != nil && err != fiber.ErrUnprocessableEntity {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := ctrl.Service.Approve(c.UserContext(), c.Params("id"), body, formFile(c, "membershipCertificate"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Member approved", dto.ToMemberApplicationDTO(*m))
}

// =============================
// 🗑️ Reject (admin) — unconditional delete
// =============================
func (ctrl *MemberController) RejectMember(c *fiber.Ctx) error {
	var body dto.RejectMemberRequest
	_ = c.BodyParser(&body) // reason accepted but not persisted

	if err := ctrl.Service.Reject(c.UserContext(), c.Params("id")); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Member application rejected", nil)
}

