package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	noteDTO "deeco_backend/internals/features/classes/notes/dto"
	noteModel "deeco_backend/internals/features/classes/notes/model"
	"deeco_backend/internals/lookup"
)

type NoteController struct {
	*crud.Controller[noteModel.NoteModel, noteDTO.CreateNoteRequest, noteDTO.UpdateNoteRequest, *noteDTO.NoteResponse]
}

func NewNoteController(db *gorm.DB) *NoteController {
	base := crud.NewController[noteModel.NoteModel, noteDTO.CreateNoteRequest, noteDTO.UpdateNoteRequest, *noteDTO.NoteResponse](
		db,
		crud.Resource{
			Name:             "class note",
			DefaultSortKey:   "created_at",
			DefaultSortOrder: "desc",
			SortColumns: map[string]string{
				"created_at": "created_at",
				"title":      "title",
			},
		},
		noteDTO.NewNoteResponse,
	)

	base.FormOf = func(m *noteModel.NoteModel) any {
		return noteDTO.NewNoteForm(m)
	}

	base.Decorate = func(c *fiber.Ctx, rows []noteModel.NoteModel, resps []*noteDTO.NoteResponse) error {
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

	return &NoteController{Controller: base}
}
