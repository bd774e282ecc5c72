package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"deeco_backend/internals/crud"
	msgDTO "deeco_backend/internals/features/support/messages/dto"
	msgModel "deeco_backend/internals/features/support/messages/model"
	helper "deeco_backend/internals/helpers"
)

// MessageController serves the contact inbox. Messages are born on the
// public contact form; admins move them through a status workflow, attach
// notes, and delete them. There is no whole-row edit.
type MessageController struct {
	*crud.Controller[msgModel.MessageModel, msgDTO.CreateMessageRequest, crud.NoUpdate, *msgDTO.MessageResponse]
}

func NewMessageController(db *gorm.DB) *MessageController {
	base := crud.NewController[msgModel.MessageModel, msgDTO.CreateMessageRequest, crud.NoUpdate, *msgDTO.MessageResponse](
		db,
		crud.Resource{
			Name:             "message",
			DefaultSortKey:   "created_at",
			DefaultSortOrder: "desc",
			SortColumns: map[string]string{
				"created_at": "created_at",
				"status":     "status",
				"name":       "name",
			},
		},
		msgDTO.NewMessageResponse,
	)
	return &MessageController{Controller: base}
}

// ===================== STATUS =====================
// PATCH /messages/:id/status
func (h *MessageController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	key := crud.MutationKey(h.Res.Name, "status", id.String())
	if !h.Guard.TryBegin(key) {
		return helper.JsonError(c, fiber.StatusConflict, "A status change for this message is already in progress")
	}
	defer h.Guard.End(key)

	var req msgDTO.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := crud.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.fetch(c, id)
	if err != nil {
		return err
	}
	if err := h.DB.WithContext(c.UserContext()).
		Model(&msgModel.MessageModel{}).
		Where("id = ?", id).
		Update("status", req.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	m.Status = req.Status
	return helper.JsonUpdated(c, "Status updated", msgDTO.NewMessageResponse(m))
}

// ===================== ADMIN NOTES =====================
// PATCH /messages/:id/notes — persisted whenever the notes field blurs, so
// this endpoint sees frequent, often-redundant writes.
func (h *MessageController) UpdateNotes(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	key := crud.MutationKey(h.Res.Name, "notes", id.String())
	if !h.Guard.TryBegin(key) {
		return helper.JsonError(c, fiber.StatusConflict, "A notes update for this message is already in progress")
	}
	defer h.Guard.End(key)

	var req msgDTO.UpdateNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	m, err := h.fetch(c, id)
	if err != nil {
		return err
	}
	notes := crud.NullableString(req.AdminNotes)
	if err := h.DB.WithContext(c.UserContext()).
		Model(&msgModel.MessageModel{}).
		Where("id = ?", id).
		Update("admin_notes", notes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	m.AdminNotes = notes
	return helper.JsonUpdated(c, "Notes saved", msgDTO.NewMessageResponse(m))
}

func (h *MessageController) fetch(c *fiber.Ctx, id uuid.UUID) (*msgModel.MessageModel, error) {
	var m msgModel.MessageModel
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
