package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annModel "deeco_backend/internals/features/classes/announcements/model"
	enrollModel "deeco_backend/internals/features/classes/enrollments/model"
	classModel "deeco_backend/internals/features/classes/live_classes/model"
	noteModel "deeco_backend/internals/features/classes/notes/model"
	recModel "deeco_backend/internals/features/classes/recordings/model"
	courseModel "deeco_backend/internals/features/courses/courses/model"
	dashDTO "deeco_backend/internals/features/home/dashboard/dto"
	reelModel "deeco_backend/internals/features/marketing/reels/model"
	msgModel "deeco_backend/internals/features/support/messages/model"
	profileModel "deeco_backend/internals/features/users/profiles/model"
	helper "deeco_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// ===================== OVERVIEW =====================
// GET /dashboard
func (h *DashboardController) Overview(c *fiber.Ctx) error {
	tx := h.DB.WithContext(c.UserContext())

	counts := map[string]int64{}
	countables := []struct {
		key   string
		model any
	}{
		{"profiles", &profileModel.ProfileModel{}},
		{"live_classes", &classModel.LiveClassModel{}},
		{"enrollments", &enrollModel.EnrollmentModel{}},
		{"announcements", &annModel.AnnouncementModel{}},
		{"notes", &noteModel.NoteModel{}},
		{"recordings", &recModel.RecordingModel{}},
		{"courses", &courseModel.CourseModel{}},
		{"reels", &reelModel.ReelModel{}},
		{"messages", &msgModel.MessageModel{}},
	}
	for _, ct := range countables {
		var n int64
		if err := tx.Model(ct.model).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		counts[ct.key] = n
	}

	byStatus := map[string]int64{}
	for _, status := range msgModel.Statuses {
		byStatus[status] = 0
	}
	var rows []struct {
		Status string
		N      int64
	}
	if err := tx.Model(&msgModel.MessageModel{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	for _, r := range rows {
		byStatus[r.Status] = r.N
	}

	return helper.JsonOK(c, "", dashDTO.DashboardResponse{
		Counts:           counts,
		MessagesByStatus: byStatus,
	})
}
