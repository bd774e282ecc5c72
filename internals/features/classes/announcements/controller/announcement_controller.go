package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	annDTO "deeco_backend/internals/features/classes/announcements/dto"
	annModel "deeco_backend/internals/features/classes/announcements/model"
	helper "deeco_backend/internals/helpers"
	"deeco_backend/internals/lookup"
)

type AnnouncementController struct {
	*crud.Controller[annModel.AnnouncementModel, annDTO.CreateAnnouncementRequest, annDTO.UpdateAnnouncementRequest, *annDTO.AnnouncementResponse]
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	base := crud.NewController[annModel.AnnouncementModel, annDTO.CreateAnnouncementRequest, annDTO.UpdateAnnouncementRequest, *annDTO.AnnouncementResponse](
		db,
		crud.Resource{
			Name:             "announcement",
			DefaultSortKey:   "created_at",
			DefaultSortOrder: "desc",
			SortColumns: map[string]string{
				"created_at": "created_at",
				"priority":   "priority",
				"title":      "title",
			},
		},
		annDTO.NewAnnouncementResponse,
	)

	base.FormOf = func(m *annModel.AnnouncementModel) any {
		return annDTO.NewAnnouncementForm(m)
	}

	base.Decorate = func(c *fiber.Ctx, rows []annModel.AnnouncementModel, resps []*annDTO.AnnouncementResponse) error {
		classIDs := make([]uuid.UUID, 0, len(rows))
		for i := range rows {
			if rows[i].ClassID != nil {
				classIDs = append(classIDs, *rows[i].ClassID)
			}
		}
		titles, err := lookup.ClassTitles(db.WithContext(c.UserContext()), classIDs)
		if err != nil {
			return err
		}
		for _, resp := range resps {
			if resp.ClassID != nil {
				resp.ClassTitle = lookup.Resolve(titles, resp.ClassID)
			}
		}
		return nil
	}

	// The audience label tracks the final scoping pair, whichever side of
	// it came from this draft.
	base.BeforeUpdate = func(c *fiber.Ctx, existing *annModel.AnnouncementModel, changes map[string]any) error {
		classID := existing.ClassID
		userID := existing.UserID
		if v, ok := changes["class_id"]; ok {
			classID, _ = v.(*uuid.UUID)
		}
		if v, ok := changes["user_id"]; ok {
			userID, _ = v.(*uuid.UUID)
		}
		changes["target_audience"] = annDTO.DeriveTargetAudience(classID, userID)
		return nil
	}

	return &AnnouncementController{Controller: base}
}

// ===================== CREATE FORM =====================
// GET /announcements/form/defaults
func (h *AnnouncementController) FormDefaults(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", annDTO.DefaultAnnouncementForm())
}
