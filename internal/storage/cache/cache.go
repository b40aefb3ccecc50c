package cache

import (
	"sync"

	"github.com/tranquocan24/FlashcardLearning-sub000/internal/session"
)

// Session is one user's in-flight learning session. Exactly one of
// Study, Quiz, Match is set. Abandoning it (a new session, the main
// menu) just drops the entry: partial progress is never persisted.
type Session struct {
	DeckID int64
	Study  *session.Study
	Quiz   *session.Quiz
	Match  *session.Match
}

type DraftKind int

const (
	DraftDeckName DraftKind = iota
	DraftCardWord
	DraftCardMeaning
	DraftFolderName
)

// Draft is a pending text-input flow (new deck, new folder, new card).
type Draft struct {
	Kind   DraftKind
	DeckID int64
	Word   string
}

type Cache struct {
	mu       sync.Mutex
	sessions map[int64]Session
	drafts   map[int64]Draft
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]Session),
		drafts:   make(map[int64]Draft),
	}
}

func (c *Cache) SetSession(userID int64, s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = s
}

func (c *Cache) GetSession(userID int64) (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[userID]
	return s, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

func (c *Cache) SetDraft(userID int64, d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts[userID] = d
}

func (c *Cache) GetDraft(userID int64) (Draft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, exists := c.drafts[userID]
	return d, exists
}

func (c *Cache) DeleteDraft(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, userID)
}
