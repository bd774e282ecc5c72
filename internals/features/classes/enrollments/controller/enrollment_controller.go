package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	enrollDTO "deeco_backend/internals/features/classes/enrollments/dto"
	enrollModel "deeco_backend/internals/features/classes/enrollments/model"
	profileDTO "deeco_backend/internals/features/users/profiles/dto"
	profileModel "deeco_backend/internals/features/users/profiles/model"
	helper "deeco_backend/internals/helpers"
	"deeco_backend/internals/lookup"
)

type EnrollmentController struct {
	*crud.Controller[enrollModel.EnrollmentModel, enrollDTO.CreateEnrollmentRequest, crud.NoUpdate, *enrollDTO.EnrollmentResponse]
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	base := crud.NewController[enrollModel.EnrollmentModel, enrollDTO.CreateEnrollmentRequest, crud.NoUpdate, *enrollDTO.EnrollmentResponse](
		db,
		crud.Resource{
			Name:             "enrollment",
			DefaultSortKey:   "enrollment_date",
			DefaultSortOrder: "desc",
			SortColumns: map[string]string{
				"enrollment_date": "enrollment_date",
			},
		},
		enrollDTO.NewEnrollmentResponse,
	)

	base.Decorate = func(c *fiber.Ctx, rows []enrollModel.EnrollmentModel, resps []*enrollDTO.EnrollmentResponse) error {
		userIDs := make([]uuid.UUID, 0, len(rows))
		classIDs := make([]uuid.UUID, 0, len(rows))
		for i := range rows {
			userIDs = append(userIDs, rows[i].UserID)
			if rows[i].ClassID != nil {
				classIDs = append(classIDs, *rows[i].ClassID)
			}
		}
		tx := db.WithContext(c.UserContext())
		userNames, err := lookup.UserNames(tx, userIDs)
		if err != nil {
			return err
		}
		classTitles, err := lookup.ClassTitles(tx, classIDs)
		if err != nil {
			return err
		}
		for _, resp := range resps {
			resp.UserName = lookup.ResolveID(userNames, resp.UserID)
			if resp.ClassID != nil {
				resp.ClassTitle = lookup.Resolve(classTitles, resp.ClassID)
			}
		}
		return nil
	}

	return &EnrollmentController{Controller: base}
}

// ===================== ELIGIBLE USERS =====================
// GET /enrollments/eligible-users
//
// Only users already holding at least one enrollment may be assigned a
// class. Two fetches + an in-memory intersection, preserving the profiles'
// alphabetical order; duplicate enrollment rows collapse.
func (h *EnrollmentController) EligibleUsers(c *fiber.Ctx) error {
	tx := h.DB.WithContext(c.UserContext())

	var enrolledIDs []uuid.UUID
	if err := tx.Model(&enrollModel.EnrollmentModel{}).
		Distinct("user_id").
		Pluck("user_id", &enrolledIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(enrolledIDs) == 0 {
		return helper.JsonOK(c, "", []profileDTO.ProfileOption{})
	}

	var profiles []profileModel.ProfileModel
	if err := tx.
		Select("id, first_name, last_name").
		Order("first_name ASC, id ASC").
		Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	eligible := lookup.EligibleProfiles(profiles, enrolledIDs)
	opts := make([]profileDTO.ProfileOption, 0, len(eligible))
	for i := range eligible {
		opts = append(opts, profileDTO.NewProfileOption(&eligible[i]))
	}
	return helper.JsonOK(c, "", opts)
}
