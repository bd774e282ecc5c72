package crud

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// OpGuard tracks in-flight mutations so a double-submitted request cannot
// dispatch the same operation twice. Every mutating handler must hold the
// key for its operation until the store call resolves.
type OpGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewOpGuard() *OpGuard {
	return &OpGuard{inflight: make(map[string]struct{})}
}

// TryBegin claims key. It returns false when the same operation is already
// running, in which case the caller must not dispatch.
func (g *OpGuard) TryBegin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

func (g *OpGuard) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}

// MutationKey builds the guard key for id-addressed operations
// (update/delete/status), one slot per row per operation.
func MutationKey(resource, op, id string) string {
	return resource + "/" + op + "/" + id
}

// CreateKey builds the guard key for creates, which have no row id yet.
// Only a client-supplied X-Request-ID identifies one form submission; the
// id the middleware assigns is fresh per request, so keying on it would
// give a double-submit two distinct keys. Without a client id, overlapping
// creates from the same caller share one per-resource slot.
func CreateKey(resource string, c *fiber.Ctx) string {
	id := strings.TrimSpace(c.Get(fiber.HeaderXRequestID))
	if id == "" {
		id = c.IP()
	}
	return resource + "/create/" + id
}
