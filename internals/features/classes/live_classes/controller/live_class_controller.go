package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	classDTO "deeco_backend/internals/features/classes/live_classes/dto"
	classModel "deeco_backend/internals/features/classes/live_classes/model"
	helper "deeco_backend/internals/helpers"
	"deeco_backend/internals/lookup"
)

type LiveClassController struct {
	*crud.Controller[classModel.LiveClassModel, classDTO.CreateLiveClassRequest, classDTO.UpdateLiveClassRequest, *classDTO.LiveClassResponse]

	// Clock exists so tests can pin "now"; live status and the upcoming
	// window are recomputed against it on every request.
	Clock func() time.Time
}

func NewLiveClassController(db *gorm.DB) *LiveClassController {
	base := crud.NewController[classModel.LiveClassModel, classDTO.CreateLiveClassRequest, classDTO.UpdateLiveClassRequest, *classDTO.LiveClassResponse](
		db,
		crud.Resource{
			Name:             "live class",
			DefaultSortKey:   "scheduled_datetime",
			DefaultSortOrder: "asc",
			SortColumns: map[string]string{
				"scheduled_datetime": "scheduled_datetime",
				"created_at":         "created_at",
				"title":              "title",
			},
		},
		nil,
	)

	ctl := &LiveClassController{Controller: base, Clock: time.Now}

	base.NewResponse = func(m *classModel.LiveClassModel) *classDTO.LiveClassResponse {
		return classDTO.NewLiveClassResponse(m, ctl.Clock())
	}
	base.FormOf = func(m *classModel.LiveClassModel) any {
		return classDTO.NewLiveClassForm(m)
	}

	// The list shows upcoming/ongoing classes; past ones only on request.
	base.Scope = func(c *fiber.Ctx, tx *gorm.DB) *gorm.DB {
		if strings.EqualFold(c.Query("include_past"), "true") {
			return tx
		}
		return tx.Where("end_datetime >= ?", ctl.Clock())
	}

	base.Decorate = func(c *fiber.Ctx, rows []classModel.LiveClassModel, resps []*classDTO.LiveClassResponse) error {
		ids := make([]uuid.UUID, 0, len(rows))
		for i := range rows {
			ids = append(ids, rows[i].UserID)
		}
		names, err := lookup.UserNames(db.WithContext(c.UserContext()), ids)
		if err != nil {
			return err
		}
		for _, resp := range resps {
			resp.AssignedUserName = lookup.ResolveID(names, resp.UserID)
		}
		return nil
	}

	// Keep end_datetime = scheduled + duration when either side changes.
	base.BeforeUpdate = func(c *fiber.Ctx, existing *classModel.LiveClassModel, changes map[string]any) error {
		if len(changes) == 0 {
			return nil
		}
		scheduled := existing.ScheduledDatetime
		duration := existing.DurationMinutes
		touched := false
		if v, ok := changes["scheduled_datetime"].(time.Time); ok {
			scheduled = v
			touched = true
		}
		if v, ok := changes["duration_minutes"].(int); ok {
			duration = v
			touched = true
		}
		if touched {
			changes["end_datetime"] = scheduled.Add(time.Duration(duration) * time.Minute)
		}
		return nil
	}

	return ctl
}

// ===================== LIVE NOW =====================
// GET /live-classes/live-now — classes in session at this instant.
func (h *LiveClassController) LiveNow(c *fiber.Ctx) error {
	now := h.Clock()

	var rows []classModel.LiveClassModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("scheduled_datetime <= ? AND end_datetime >= ?", now, now).
		Order("scheduled_datetime ASC, id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]*classDTO.LiveClassResponse, 0, len(rows))
	for i := range rows {
		items = append(items, classDTO.NewLiveClassResponse(&rows[i], now))
	}
	return helper.JsonOK(c, "", items)
}

// ===================== CREATE DEFAULTS =====================
// GET /live-classes/form/defaults — the empty create draft.
func (h *LiveClassController) FormDefaults(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", classDTO.DefaultLiveClassForm())
}

// ===================== OPTIONS =====================
// GET /live-classes/options — dropdown feed (id + title, chronological).
func (h *LiveClassController) Options(c *fiber.Ctx) error {
	var rows []classModel.LiveClassModel
	if err := h.DB.WithContext(c.UserContext()).
		Select("id, title, scheduled_datetime").
		Order("scheduled_datetime ASC, id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	opts := make([]classDTO.ClassOption, 0, len(rows))
	for i := range rows {
		opts = append(opts, classDTO.ClassOption{ID: rows[i].ID, Title: rows[i].Title})
	}
	return helper.JsonOK(c, "", opts)
}
