package session

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"sync"
)

type userLock struct {
	mu   sync.Mutex
	refs int
}

type entry struct {
	state     domain.ConversationState
	promo     string
	cartTotal int
}

// memoryStore keeps conversation state in process memory.
type memoryStore struct {
	mu      sync.Mutex
	entries map[int64]*entry
	locks   map[int64]*userLock
}

// NewMemoryStore creates an empty, process-local session store.
func NewMemoryStore() ports.SessionStore {
	return &memoryStore{
		entries: make(map[int64]*entry),
		locks:   make(map[int64]*userLock),
	}
}

// Lock blocks until no other update of the same user is being handled.
// Lock entries are dropped once nobody holds or waits for them.
func (s *memoryStore) Lock(userID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()
			s.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(s.locks, userID)
			}
			s.mu.Unlock()
		})
	}
}

func (s *memoryStore) State(userID int64) domain.ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[userID]; ok {
		return e.state
	}
	return nil
}

func (s *memoryStore) SetState(userID int64, state domain.ConversationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(userID).state = state
	s.gc(userID)
}

func (s *memoryStore) ClearState(userID int64) {
	s.SetState(userID, nil)
}

func (s *memoryStore) PromoCode(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[userID]; ok {
		return e.promo
	}
	return ""
}

func (s *memoryStore) SetPromoCode(userID int64, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(userID).promo = code
	s.gc(userID)
}

func (s *memoryStore) CartTotalMessage(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[userID]; ok {
		return e.cartTotal
	}
	return 0
}

func (s *memoryStore) SetCartTotalMessage(userID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(userID).cartTotal = messageID
	s.gc(userID)
}

// entry must be called with s.mu held.
func (s *memoryStore) entry(userID int64) *entry {
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{}
		s.entries[userID] = e
	}
	return e
}

// gc must be called with s.mu held.
func (s *memoryStore) gc(userID int64) {
	if e, ok := s.entries[userID]; ok && e.state == nil && e.promo == "" && e.cartTotal == 0 {
		delete(s.entries, userID)
	}
}
