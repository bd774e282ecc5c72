package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	reelDTO "deeco_backend/internals/features/marketing/reels/dto"
	reelModel "deeco_backend/internals/features/marketing/reels/model"
	helper "deeco_backend/internals/helpers"
)

type ReelController struct {
	*crud.Controller[reelModel.ReelModel, reelDTO.CreateReelRequest, reelDTO.UpdateReelRequest, *reelDTO.ReelResponse]
}

func NewReelController(db *gorm.DB) *ReelController {
	base := crud.NewController[reelModel.ReelModel, reelDTO.CreateReelRequest, reelDTO.UpdateReelRequest, *reelDTO.ReelResponse](
		db,
		crud.Resource{
			Name:             "reel",
			DefaultSortKey:   "published_at",
			DefaultSortOrder: "desc",
			SortColumns: map[string]string{
				"published_at": "published_at",
				"view_count":   "view_count",
				"title":        "title",
			},
		},
		reelDTO.NewReelResponse,
	)

	base.FormOf = func(m *reelModel.ReelModel) any {
		return reelDTO.NewReelForm(m)
	}

	return &ReelController{Controller: base}
}

// ===================== CREATE FORM =====================
// GET /reels/form/defaults
func (h *ReelController) FormDefaults(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", reelDTO.DefaultReelForm())
}

// ===================== PUBLIC LIST =====================
// GET /api/public/reels — active reels, newest publication first.
func (h *ReelController) PublicList(c *fiber.Ctx) error {
	var rows []reelModel.ReelModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Order("published_at DESC, id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	items := make([]*reelDTO.ReelResponse, 0, len(rows))
	for i := range rows {
		items = append(items, reelDTO.NewReelResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}
