package crud

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "deeco_backend/internals/helpers"
)

// Validate is shared by every resource. Field names in validation errors use
// the json tag, which is what the admin UI renders next to its inputs.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Creator builds a new row from a validated create draft. Implementations do
// the draft→storage coercions: empty optional fields become NULL, textarea
// lists are split on newline, datetime-local values are parsed.
type Creator[M any] interface {
	ToModel() (*M, error)
}

// Updater turns a partial update draft into an updates map, the only way to
// write falsy values (false, "", NULL) through gorm.
type Updater interface {
	Changes() (map[string]any, error)
}

// NoUpdate is the placeholder Updater for resources without an update
// operation (enrollments). Its route is simply never mounted.
type NoUpdate struct{}

func (NoUpdate) Changes() (map[string]any, error) {
	return nil, errors.New("resource does not support update")
}

// Resource describes one admin screen's collection: where it lives and how
// its list is ordered. Every order expression gets the id tie-break appended
// so rows with equal sort keys keep a stable position between fetches.
type Resource struct {
	Name             string // singular, used in messages: "class note"
	DefaultSortKey   string
	DefaultSortOrder string // asc|desc
	SortColumns      map[string]string
	TieBreak         string // defaults to "id ASC"
	PageOpts         helper.Options
}

func (r Resource) tieBreak() string {
	if r.TieBreak != "" {
		return r.TieBreak
	}
	return "id ASC"
}

// Controller is the one list/form engine behind all admin screens. A screen
// is the Resource descriptor plus DTO types; everything else (pagination,
// sort whitelisting, validation, null coercion, duplicate-submit guarding,
// delete confirmation, re-fetchable ordering) is shared here instead of
// being copied per feature.
type Controller[M any, C Creator[M], U Updater, R any] struct {
	DB  *gorm.DB
	Res Resource

	// NewResponse maps a stored row to its API shape.
	NewResponse func(*M) R

	// FormOf maps a stored row to its editable draft (edit pre-fill).
	FormOf func(*M) any

	// Scope narrows the base query (tenant filters, upcoming-only windows).
	Scope func(c *fiber.Ctx, tx *gorm.DB) *gorm.DB

	// Decorate batch-resolves reference data onto the page of responses
	// (user names, class titles) without a server-side join.
	Decorate func(c *fiber.Ctx, rows []M, resps []R) error

	// BeforeCreate / BeforeUpdate run after validation, before the write.
	BeforeCreate func(c *fiber.Ctx, m *M) error
	BeforeUpdate func(c *fiber.Ctx, existing *M, changes map[string]any) error

	// Confirm gates Delete. Defaults to requiring ?confirm=true; injected
	// differently in tests.
	Confirm func(c *fiber.Ctx) bool

	Guard *OpGuard
}

func NewController[M any, C Creator[M], U Updater, R any](db *gorm.DB, res Resource, newResponse func(*M) R) *Controller[M, C, U, R] {
	if res.PageOpts.DefaultPerPage == 0 {
		res.PageOpts = helper.AdminOpts
	}
	return &Controller[M, C, U, R]{
		DB:          db,
		Res:         res,
		NewResponse: newResponse,
		Guard:       NewOpGuard(),
	}
}

func (h *Controller[M, C, U, R]) confirmed(c *fiber.Ctx) bool {
	if h.Confirm != nil {
		return h.Confirm(c)
	}
	return strings.EqualFold(c.Query("confirm"), "true")
}

func (h *Controller[M, C, U, R]) scoped(c *fiber.Ctx) *gorm.DB {
	tx := h.DB.WithContext(c.UserContext()).Model(new(M))
	if h.Scope != nil {
		tx = h.Scope(c, tx)
	}
	return tx
}

// ===================== LIST =====================
// GET /<resource>/list
func (h *Controller[M, C, U, R]) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, h.Res.DefaultSortKey, h.Res.DefaultSortOrder, h.Res.PageOpts)

	tx := h.scoped(c)

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	orderExpr, err := p.SafeOrderClause(h.Res.SortColumns, h.Res.DefaultSortKey, h.Res.tieBreak())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []M
	if err := tx.
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]R, 0, len(rows))
	for i := range rows {
		items = append(items, h.NewResponse(&rows[i]))
	}
	if h.Decorate != nil {
		if err := h.Decorate(c, rows, items); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonList(c, "", items, helper.BuildMeta(total, p))
}

// ===================== GET BY ID =====================
// GET /<resource>/:id
func (h *Controller[M, C, U, R]) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.find(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", h.NewResponse(m))
}

// ===================== EDIT FORM =====================
// GET /<resource>/:id/form — the editable draft for an existing row.
func (h *Controller[M, C, U, R]) GetForm(c *fiber.Ctx) error {
	if h.FormOf == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No form representation")
	}
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	m, err := h.find(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", h.FormOf(m))
}

// ===================== CREATE =====================
// POST /<resource>
func (h *Controller[M, C, U, R]) Create(c *fiber.Ctx) error {
	key := CreateKey(h.Res.Name, c)
	if !h.Guard.TryBegin(key) {
		return helper.JsonError(c, fiber.StatusConflict, "A matching submission is already in progress")
	}
	defer h.Guard.End(key)

	var req C
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if h.BeforeCreate != nil {
		if err := h.BeforeCreate(c, m); err != nil {
			return err
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, capitalize(h.Res.Name)+" created", h.NewResponse(m))
}

// ===================== UPDATE =====================
// PUT /<resource>/:id
func (h *Controller[M, C, U, R]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	key := MutationKey(h.Res.Name, "update", id.String())
	if !h.Guard.TryBegin(key) {
		return helper.JsonError(c, fiber.StatusConflict, "An update for this record is already in progress")
	}
	defer h.Guard.End(key)

	var req U
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	existing, err := h.find(c, id)
	if err != nil {
		return err
	}

	changes, err := req.Changes()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if h.BeforeUpdate != nil {
		if err := h.BeforeUpdate(c, existing, changes); err != nil {
			return err
		}
	}
	if len(changes) == 0 {
		return helper.JsonUpdated(c, "No changes", h.NewResponse(existing))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(new(M)).
		Where("id = ?", id).
		Updates(changes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Reload so server-managed columns (updated_at) come back fresh.
	after, err := h.find(c, id)
	if err != nil {
		return helper.JsonUpdated(c, capitalize(h.Res.Name)+" updated", h.NewResponse(existing))
	}
	return helper.JsonUpdated(c, capitalize(h.Res.Name)+" updated", h.NewResponse(after))
}

// ===================== DELETE =====================
// DELETE /<resource>/:id?confirm=true
func (h *Controller[M, C, U, R]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	// Confirmation gate: an unconfirmed delete never reaches the store.
	if !h.confirmed(c) {
		return helper.JsonError(c, fiber.StatusPreconditionRequired, "Deletion must be confirmed")
	}

	key := MutationKey(h.Res.Name, "delete", id.String())
	if !h.Guard.TryBegin(key) {
		return helper.JsonError(c, fiber.StatusConflict, "A delete for this record is already in progress")
	}
	defer h.Guard.End(key)

	res := h.DB.WithContext(c.UserContext()).Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, capitalize(h.Res.Name)+" not found")
	}
	return helper.JsonDeleted(c, capitalize(h.Res.Name)+" deleted", fiber.Map{"id": id})
}

// ===================== internals =====================

func (h *Controller[M, C, U, R]) find(c *fiber.Ctx, id uuid.UUID) (*M, error) {
	var m M
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, capitalize(h.Res.Name)+" not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
