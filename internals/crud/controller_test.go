package crud_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	noteController "deeco_backend/internals/features/classes/notes/controller"
	noteModel "deeco_backend/internals/features/classes/notes/model"
	noteRoute "deeco_backend/internals/features/classes/notes/route"
	profileModel "deeco_backend/internals/features/users/profiles/model"
)

// The generic controller is exercised end to end through the notes screen:
// it has every behavior the engine promises (optional FK coercion, partial
// updates, confirm-gated delete, stable list order).

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The production schema lives in Supabase; tests declare the slice of
	// it they touch.
	ddl := []string{
		`CREATE TABLE profiles (
			id TEXT PRIMARY KEY,
			first_name TEXT,
			last_name TEXT,
			email TEXT,
			created_at DATETIME
		)`,
		`CREATE TABLE live_classes (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			instructor_name TEXT NOT NULL,
			meeting_link TEXT,
			scheduled_datetime DATETIME NOT NULL,
			end_datetime DATETIME NOT NULL,
			duration_minutes INTEGER NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE class_notes (
			id TEXT PRIMARY KEY,
			class_id TEXT,
			user_id TEXT NOT NULL,
			uploaded_by TEXT,
			title TEXT NOT NULL,
			file_url TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	app := fiber.New()
	noteRoute.NoteAdminRoutes(app.Group("/api/a"), db)
	return app, db
}

func seedProfile(t *testing.T, db *gorm.DB, first string) uuid.UUID {
	t.Helper()
	p := profileModel.ProfileModel{ID: uuid.New(), FirstName: &first}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	parsed := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func listIDs(t *testing.T, app *fiber.App) []string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodGet, "/api/a/notes/list", nil)
	require.Equal(t, http.StatusOK, status)
	items, ok := body["data"].([]any)
	require.True(t, ok)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.(map[string]any)["id"].(string))
	}
	return ids
}

func TestCreateRoundTrip(t *testing.T) {
	app, db := newTestApp(t)
	userID := seedProfile(t, db, "Asha")

	status, body := doJSON(t, app, http.MethodPost, "/api/a/notes", fiber.Map{
		"user_id":  userID.String(),
		"title":    "Week 1 handout",
		"file_url": "https://files.example.com/w1.pdf",
		"class_id": "", // optional, must store NULL not ""
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	var stored noteModel.NoteModel
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Week 1 handout", stored.Title)
	assert.Equal(t, userID, stored.UserID)
	assert.Nil(t, stored.ClassID)

	// the re-fetched list reflects the write
	status, body = doJSON(t, app, http.MethodGet, "/api/a/notes/list", nil)
	require.Equal(t, http.StatusOK, status)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	row := items[0].(map[string]any)
	assert.Equal(t, "Week 1 handout", row["title"])
	assert.Equal(t, "Asha", row["user_name"])
}

func TestCreateValidationRejectsWithoutInsert(t *testing.T) {
	app, db := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/a/notes", fiber.Map{
		"user_id": "", // required
		"title":   "",
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "user_id")
	assert.Contains(t, errs, "title")

	var n int64
	require.NoError(t, db.Model(&noteModel.NoteModel{}).Count(&n).Error)
	assert.Zero(t, n, "a rejected draft must not reach the store")
}

// Two identical creates overlap with no client request id, behind the same
// middleware chain production runs (a fresh server id assigned per request).
// Only the first may dispatch; the second gets 409 and writes nothing.
func TestCreateDoubleSubmitConflict(t *testing.T) {
	db := newTestDB(t)
	userID := seedProfile(t, db, "Asha")

	ctl := noteController.NewNoteController(db)
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	ctl.BeforeCreate = func(c *fiber.Ctx, m *noteModel.NoteModel) error {
		// holds the first submission in flight until the duplicate has
		// been answered
		once.Do(func() {
			close(entered)
			<-release
		})
		return nil
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("reqid", id)
		return c.Next()
	})
	app.Post("/api/a/notes", ctl.Create)

	payload := fiber.Map{
		"user_id":  userID.String(),
		"title":    "Week 1 handout",
		"file_url": "https://files.example.com/w1.pdf",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	firstStatus := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/api/a/notes", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		if err != nil {
			firstStatus <- 0
			return
		}
		resp.Body.Close()
		firstStatus <- resp.StatusCode
	}()

	<-entered // first submission now holds the create key

	status, body := doJSON(t, app, http.MethodPost, "/api/a/notes", payload)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])

	close(release)
	assert.Equal(t, http.StatusCreated, <-firstStatus)

	var n int64
	require.NoError(t, db.Model(&noteModel.NoteModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n, "the duplicate must not reach the store")
}

func TestUpdatePartialAndNullCoercion(t *testing.T) {
	app, db := newTestApp(t)
	userID := seedProfile(t, db, "Asha")
	classID := uuid.New()

	note := noteModel.NoteModel{
		ClassID: &classID,
		UserID:  userID,
		Title:   "Old title",
		FileURL: "https://files.example.com/old.pdf",
	}
	require.NoError(t, db.Create(&note).Error)

	// only the sent fields change; clearing class_id writes NULL
	status, _ := doJSON(t, app, http.MethodPut, "/api/a/notes/"+note.ID.String(), fiber.Map{
		"title":    "New title",
		"class_id": "",
	})
	require.Equal(t, http.StatusOK, status)

	var stored noteModel.NoteModel
	require.NoError(t, db.First(&stored, "id = ?", note.ID).Error)
	assert.Equal(t, "New title", stored.Title)
	assert.Nil(t, stored.ClassID)
	assert.Equal(t, "https://files.example.com/old.pdf", stored.FileURL, "untouched field survives")
}

func TestDeleteConfirmationGate(t *testing.T) {
	app, db := newTestApp(t)
	userID := seedProfile(t, db, "Asha")

	note := noteModel.NoteModel{
		UserID:  userID,
		Title:   "Keep me",
		FileURL: "https://files.example.com/keep.pdf",
	}
	require.NoError(t, db.Create(&note).Error)

	// unconfirmed: refused before any store call
	status, body := doJSON(t, app, http.MethodDelete, "/api/a/notes/"+note.ID.String(), nil)
	require.Equal(t, http.StatusPreconditionRequired, status)
	assert.Equal(t, "CONFIRMATION_REQUIRED", body["error_code"])

	var n int64
	require.NoError(t, db.Model(&noteModel.NoteModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	// confirmed: removed
	status, _ = doJSON(t, app, http.MethodDelete, "/api/a/notes/"+note.ID.String()+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, db.Model(&noteModel.NoteModel{}).Count(&n).Error)
	assert.Zero(t, n)

	// already gone
	status, _ = doJSON(t, app, http.MethodDelete, "/api/a/notes/"+note.ID.String()+"?confirm=true", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListOrderIsStableAcrossFetches(t *testing.T) {
	app, db := newTestApp(t)
	userID := seedProfile(t, db, "Asha")

	// same created_at on every row, so only the id tie-break orders them
	for i := 0; i < 8; i++ {
		note := noteModel.NoteModel{
			UserID:  userID,
			Title:   fmt.Sprintf("Note %d", i),
			FileURL: fmt.Sprintf("https://files.example.com/%d.pdf", i),
		}
		require.NoError(t, db.Create(&note).Error)
		require.NoError(t, db.Model(&note).Update("created_at", "2026-01-01 10:00:00").Error)
	}

	first := listIDs(t, app)
	second := listIDs(t, app)
	require.Len(t, first, 8)
	assert.Equal(t, first, second, "re-fetching must not shuffle rows with equal sort keys")
}

func TestGetFormDraft(t *testing.T) {
	app, db := newTestApp(t)
	userID := seedProfile(t, db, "Asha")

	note := noteModel.NoteModel{
		UserID:  userID,
		Title:   "Editable",
		FileURL: "https://files.example.com/e.pdf",
	}
	require.NoError(t, db.Create(&note).Error)

	status, body := doJSON(t, app, http.MethodGet, "/api/a/notes/"+note.ID.String()+"/form", nil)
	require.Equal(t, http.StatusOK, status)
	draft := body["data"].(map[string]any)
	assert.Equal(t, "Editable", draft["title"])
	assert.Equal(t, userID.String(), draft["user_id"])
	assert.Equal(t, "", draft["class_id"], "optional FK reads back as the empty draft value")
}

func TestGetByIDNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/a/notes/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/a/notes/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
