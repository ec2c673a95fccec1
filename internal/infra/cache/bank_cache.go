package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"victorine/internal/domain"
)

// QuestionStore is the backing store the cache reads through to.
type QuestionStore interface {
	Load() ([]domain.Question, error)
	Save([]domain.Question) error
}

// BankCache is a TTL read-through cache over the question store, so menu
// navigation does not reread the document on every screen. Saves write
// through and drop the cached copy.
type BankCache struct {
	store QuestionStore
	ttl   time.Duration
	clock func() time.Time
	sf    singleflight.Group

	mu        sync.RWMutex
	questions []domain.Question
	loaded    bool
	expiresAt time.Time
}

func NewBankCache(store QuestionStore, ttl time.Duration) *BankCache {
	return &BankCache{
		store: store,
		ttl:   ttl,
		clock: time.Now,
	}
}

// Load returns the cached bank, reloading it from the store when the cache
// is cold or expired. Concurrent reloads collapse into one store read.
func (c *BankCache) Load() ([]domain.Question, error) {
	if c.ttl <= 0 {
		return c.store.Load()
	}

	now := c.clock()
	c.mu.RLock()
	if c.loaded && c.expiresAt.After(now) {
		questions := c.questions
		c.mu.RUnlock()
		return questions, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("bank", func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if c.loaded && c.expiresAt.After(now) {
			questions := c.questions
			c.mu.RUnlock()
			return questions, nil
		}
		c.mu.RUnlock()

		questions, err := c.store.Load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.questions = questions
		c.loaded = true
		c.expiresAt = now.Add(c.ttl)
		c.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

// Save writes the bank through to the store and invalidates the cached copy.
func (c *BankCache) Save(questions []domain.Question) error {
	if err := c.store.Save(questions); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Invalidate drops the cached bank; the next Load rereads the store.
func (c *BankCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.questions = nil
	c.mu.Unlock()
}
