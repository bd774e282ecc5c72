package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	recDTO "deeco_backend/internals/features/classes/recordings/dto"
	recModel "deeco_backend/internals/features/classes/recordings/model"
	"deeco_backend/internals/lookup"
)

type RecordingController struct {
	*crud.Controller[recModel.RecordingModel, recDTO.CreateRecordingRequest, recDTO.UpdateRecordingRequest, *recDTO.RecordingResponse]
}

func NewRecordingController(db *gorm.DB) *RecordingController {
	base := crud.NewController[recModel.RecordingModel, recDTO.CreateRecordingRequest, recDTO.UpdateRecordingRequest, *recDTO.RecordingResponse](
		db,
		crud.Resource{
			Name:             "recording",
			DefaultSortKey:   "created_at",
			DefaultSortOrder: "desc",
			SortColumns: map[string]string{
				"created_at": "created_at",
				"title":      "title",
			},
		},
		recDTO.NewRecordingResponse,
	)

	base.FormOf = func(m *recModel.RecordingModel) any {
		return recDTO.NewRecordingForm(m)
	}

	base.Decorate = func(c *fiber.Ctx, rows []recModel.RecordingModel, resps []*recDTO.RecordingResponse) error {
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

	return &RecordingController{Controller: base}
}
