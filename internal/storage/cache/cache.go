package cache

import (
	"sync"

	"github.com/chen-yiru/Vocabulary-review/internal/input"
	"github.com/chen-yiru/Vocabulary-review/internal/query"
	"github.com/chen-yiru/Vocabulary-review/internal/session"
)

// ReviewSession is the live review view of one user: the engine, the input
// adapter attached to it and the chat message that renders it.
type ReviewSession struct {
	Engine    *session.Engine
	Input     *input.Adapter
	MessageID int
}

type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*ReviewSession
	pagers   map[int64]*query.Pager
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*ReviewSession),
		pagers:   make(map[int64]*query.Pager),
	}
}

// SetSession installs s as the user's active session. A previous session's
// adapter is detached so it stops taking input.
func (c *Cache) SetSession(userID int64, s *ReviewSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.sessions[userID]; ok && old != s && old.Input != nil {
		old.Input.Detach()
	}
	c.sessions[userID] = s
}

func (c *Cache) Session(userID int64) (*ReviewSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[userID]
	return s, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[userID]; ok && s.Input != nil {
		s.Input.Detach()
	}
	delete(c.sessions, userID)
}

// Pager returns the user's list pager, creating it with pageSize on first use.
func (c *Cache) Pager(userID int64, pageSize int) *query.Pager {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, exists := c.pagers[userID]
	if !exists {
		p = query.NewPager(pageSize)
		c.pagers[userID] = p
	}
	return p
}

func (c *Cache) DeletePager(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pagers, userID)
}
