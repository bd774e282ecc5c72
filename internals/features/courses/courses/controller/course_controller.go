package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	courseDTO "deeco_backend/internals/features/courses/courses/dto"
	courseModel "deeco_backend/internals/features/courses/courses/model"
	helper "deeco_backend/internals/helpers"
)

type CourseController struct {
	*crud.Controller[courseModel.CourseModel, courseDTO.CreateCourseRequest, courseDTO.UpdateCourseRequest, *courseDTO.CourseResponse]
}

func NewCourseController(db *gorm.DB) *CourseController {
	base := crud.NewController[courseModel.CourseModel, courseDTO.CreateCourseRequest, courseDTO.UpdateCourseRequest, *courseDTO.CourseResponse](
		db,
		crud.Resource{
			Name:             "course",
			DefaultSortKey:   "created_at",
			DefaultSortOrder: "desc",
			SortColumns: map[string]string{
				"created_at": "created_at",
				"title":      "title",
				"level":      "level",
				"price":      "price",
			},
		},
		courseDTO.NewCourseResponse,
	)

	base.FormOf = func(m *courseModel.CourseModel) any {
		return courseDTO.NewCourseForm(m)
	}

	return &CourseController{Controller: base}
}

// ===================== CREATE FORM =====================
// GET /courses/form/defaults
func (h *CourseController) FormDefaults(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", courseDTO.DefaultCourseForm())
}

// ===================== PUBLIC LIST =====================
// GET /api/public/courses — the catalog the public site shows: active
// courses only, newest first.
func (h *CourseController) PublicList(c *fiber.Ctx) error {
	var rows []courseModel.CourseModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Order("created_at DESC, id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	items := make([]*courseDTO.CourseResponse, 0, len(rows))
	for i := range rows {
		items = append(items, courseDTO.NewCourseResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", items)
}
