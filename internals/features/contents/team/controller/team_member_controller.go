package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	"shikshaksangh_backend/internals/constants"
	"shikshaksangh_backend/internals/features/contents/team/dto"
	"shikshaksangh_backend/internals/features/contents/team/model"
	helper "shikshaksangh_backend/internals/helpers"
	"shikshaksangh_backend/internals/helpers/storage"
)

var validateTeam = validator.New()

var teamPhotoSlot = storage.Slot{Folder: constants.FolderTeam, MimeTypes: constants.ImageMimeTypes}

type TeamMemberController struct {
	DB *gorm.DB
}

func NewTeamMemberController(db *gorm.DB) *TeamMemberController {
	return &TeamMemberController{DB: db}
}

// =============================
// ➕ Create Team Member (optional portrait)
// =============================
func (ctrl *TeamMemberController) CreateTeamMember(c *fiber.Ctx) error {
	var body dto.CreateTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeam.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	member := model.TeamMemberModel{
		TeamMemberID:             uuid.NewString(),
		TeamMemberName:           body.TeamMemberName,
		TeamMemberRole:           body.TeamMemberRole,
		TeamMemberProvinceNumber: body.TeamMemberProvinceNumber,
		TeamMemberOrder:          body.TeamMemberOrder,
	}

	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		rel, err := storage.SaveImageAsWebp(configs.UploadRoot(), teamPhotoSlot, member.TeamMemberID, fh)
		if err != nil {
			if errors.Is(err, storage.ErrMimeNotAllowed) {
				return helper.Error(c, fiber.StatusBadRequest, "Photo must be a JPEG or PNG")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to store photo")
		}
		member.TeamMemberPhotoPath = &rel
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&member).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create team member")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Team member created", dto.ToTeamMemberDTO(member))
}

// =============================
// 🗑️ Delete Team Member
// =============================
func (ctrl *TeamMemberController) DeleteTeamMember(c *fiber.Ctx) error {
	if err := ctrl.DB.Delete(&model.TeamMemberModel{}, "team_member_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete team member")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Get All / By Province (public)
// =============================
func (ctrl *TeamMemberController) GetAllTeamMembers(c *fiber.Ctx) error {
	var items []model.TeamMemberModel
	if err := ctrl.DB.Order("team_member_order ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve team members")
	}
	out := make([]dto.TeamMemberDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.ToTeamMemberDTO(m))
	}
	return helper.Success(c, "OK", out)
}

func (ctrl *TeamMemberController) GetTeamByProvince(c *fiber.Ctx) error {
	province, err := strconv.Atoi(c.Params("province"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid province number")
	}

	var items []model.TeamMemberModel
	if err := ctrl.DB.Where("team_member_province_number = ?", province).
		Order("team_member_order ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve team members")
	}
	out := make([]dto.TeamMemberDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.ToTeamMemberDTO(m))
	}
	return helper.Success(c, "OK", out)
}
