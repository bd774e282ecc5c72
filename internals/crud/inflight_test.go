package crud

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpGuardSingleFlight(t *testing.T) {
	g := NewOpGuard()
	key := MutationKey("note", "delete", "abc")

	assert.True(t, g.TryBegin(key))
	assert.False(t, g.TryBegin(key), "second begin must be refused while the first is in flight")

	g.End(key)
	assert.True(t, g.TryBegin(key), "key is reusable once the operation ends")
	g.End(key)
}

func TestOpGuardDistinctKeys(t *testing.T) {
	g := NewOpGuard()

	assert.True(t, g.TryBegin(MutationKey("note", "delete", "a")))
	assert.True(t, g.TryBegin(MutationKey("note", "delete", "b")))
	assert.True(t, g.TryBegin(MutationKey("note", "update", "a")))
}

func TestOpGuardConcurrent(t *testing.T) {
	g := NewOpGuard()
	key := MutationKey("reel", "update", "xyz")

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryBegin(key) {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won, "exactly one concurrent submission may win the key")
}

// createKeyFor runs one request through a handler that computes the create
// key after the request-id middleware has assigned a fresh server id, the
// same shape the production middleware chain has.
func createKeyFor(t *testing.T, clientID string) string {
	t.Helper()

	app := fiber.New()
	var key string
	app.Post("/x", func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("reqid", id)
		key = CreateKey("course", c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/x", nil)
	if clientID != "" {
		req.Header.Set(fiber.HeaderXRequestID, clientID)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return key
}

func TestCreateKeyIgnoresServerAssignedRequestID(t *testing.T) {
	// no client id: repeated submissions must share the key even though the
	// server assigns a distinct request id to each
	first := createKeyFor(t, "")
	second := createKeyFor(t, "")
	assert.Equal(t, first, second, "duplicate submissions without a client id must collide")

	// a client-supplied id identifies the submission
	assert.Equal(t, "course/create/form-123", createKeyFor(t, "form-123"))
	assert.NotEqual(t, createKeyFor(t, "form-123"), createKeyFor(t, "form-456"))
}
