package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// Controller is the process-wide holder of the authenticated-identity state.
// It is the sole writer of the (token, identity) pair; everything else only
// reads. A mutex guards the pair because Bubble Tea commands run in
// goroutines and API responses land concurrently.
//
// Invariant: Authenticated() == (Identity() != nil), and a non-empty token
// is held exactly while authenticated.
type Controller struct {
	mu       sync.Mutex
	store    *Store
	token    string
	identity *domain.Identity
	loading  bool
	log      zerolog.Logger
}

// NewController wraps a store. Call Initialize before first use.
func NewController(store *Store, log zerolog.Logger) *Controller {
	return &Controller{store: store, log: log}
}

// Initialize restores the session from the durable store. Runs once at
// process start; Loading() is true for the duration, and consumers must not
// treat a nil identity as "definitely logged out" until it turns false.
// A missing or corrupt store resolves to a clean logged-out state.
func (c *Controller) Initialize() {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	token, id := c.store.Load()

	c.mu.Lock()
	if token == "" || id == nil {
		c.token = ""
		c.identity = nil
	} else {
		c.token = token
		c.identity = id
		c.log.Debug().Str("email", id.Email).Msg("session restored")
	}
	c.loading = false
	c.mu.Unlock()

	if token == "" || id == nil {
		// Leave no partial state behind (half-written pair, stale file).
		c.Logout()
	}
}

// Login marks the session authenticated. The login flow has already obtained
// the token from the API and persisted the pair via the store before calling
// this; Login itself touches neither the network nor durable storage.
func (c *Controller) Login(token string, id domain.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.identity = &id
	c.log.Info().Str("email", id.Email).Str("role", string(id.Role)).Msg("logged in")
}

// Logout clears the durable store and the in-memory pair. Idempotent; also
// wired as the API client's auth-expiry hook, so it may fire from any
// in-flight request's goroutine.
func (c *Controller) Logout() {
	if err := c.store.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("clearing persisted session failed")
	}
	c.mu.Lock()
	wasAuthed := c.identity != nil
	c.token = ""
	c.identity = nil
	c.mu.Unlock()
	if wasAuthed {
		c.log.Info().Msg("logged out")
	}
}

// UpdateIdentity shallow-merges the patch into the current identity, leaving
// the token and authentication state untouched. No-op when logged out. The
// merged identity is re-persisted beside the unchanged token so the cached
// copy stays fresh across restarts.
func (c *Controller) UpdateIdentity(patch domain.IdentityPatch) {
	c.mu.Lock()
	if c.identity == nil {
		c.mu.Unlock()
		return
	}
	merged := patch.Apply(*c.identity)
	c.identity = &merged
	token := c.token
	c.mu.Unlock()

	if err := c.store.Save(token, merged); err != nil {
		c.log.Warn().Err(err).Msg("persisting updated identity failed")
	}
}

// Identity returns a copy of the current identity, or nil when logged out.
func (c *Controller) Identity() *domain.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.identity == nil {
		return nil
	}
	id := *c.identity
	return &id
}

// Token returns the current session token; empty when logged out.
// Implements client.TokenSource.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Authenticated reports whether a session is active.
func (c *Controller) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity != nil
}

// Loading reports whether Initialize is still restoring the session.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
