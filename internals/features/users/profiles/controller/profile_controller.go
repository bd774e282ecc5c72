package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	profileDTO "deeco_backend/internals/features/users/profiles/dto"
	profileModel "deeco_backend/internals/features/users/profiles/model"
	helper "deeco_backend/internals/helpers"
)

// ProfileController is read-only: profiles are owned by the auth signup
// flow and only resolved here for display and assignment dropdowns.
type ProfileController struct{ DB *gorm.DB }

func NewProfileController(db *gorm.DB) *ProfileController { return &ProfileController{DB: db} }

// ===================== LIST =====================
// GET /profiles/list (alphabetical, stable)
func (h *ProfileController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "first_name", "asc", helper.LookupOpts)

	tx := h.DB.WithContext(c.UserContext()).Model(&profileModel.ProfileModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"LOWER(COALESCE(first_name,'')) LIKE ? OR LOWER(COALESCE(last_name,'')) LIKE ? OR LOWER(COALESCE(email,'')) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sortMap := map[string]string{
		"first_name": "first_name",
		"last_name":  "last_name",
		"email":      "email",
		"created_at": "created_at",
	}
	orderExpr, err := p.SafeOrderClause(sortMap, "first_name", "id ASC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []profileModel.ProfileModel
	if err := tx.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]*profileDTO.ProfileResponse, 0, len(rows))
	for i := range rows {
		items = append(items, profileDTO.NewProfileResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildMeta(total, p))
}

// ===================== OPTIONS =====================
// GET /profiles/options — dropdown feed, always the full alphabetical set
func (h *ProfileController) Options(c *fiber.Ctx) error {
	var rows []profileModel.ProfileModel
	if err := h.DB.WithContext(c.UserContext()).
		Select("id, first_name, last_name").
		Order("first_name ASC, id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	opts := make([]profileDTO.ProfileOption, 0, len(rows))
	for i := range rows {
		opts = append(opts, profileDTO.NewProfileOption(&rows[i]))
	}
	return helper.JsonOK(c, "", opts)
}

// ===================== GET BY ID =====================
// GET /profiles/:id
func (h *ProfileController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var m profileModel.ProfileModel
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", profileDTO.NewProfileResponse(&m))
}
