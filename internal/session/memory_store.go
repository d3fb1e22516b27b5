package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. It backs tests and dev
// setups without Redis; sessions do not survive a restart.
type MemoryStore struct {
	sessions map[string]memorySession
	ttl      time.Duration
	mutex    sync.RWMutex
}

type memorySession struct {
	userId    uint
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
	}

	go s.cleanupStaleEntries()
	return s
}

func (s *MemoryStore) Create(_ context.Context, userId uint) (string, error) {
	sessionId := uuid.NewString()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions[sessionId] = memorySession{
		userId:    userId,
		expiresAt: time.Now().Add(s.ttl),
	}
	return sessionId, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionId string) (uint, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, exists := s.sessions[sessionId]
	if !exists {
		return 0, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, sessionId)
		return 0, nil
	}

	entry.expiresAt = time.Now().Add(s.ttl)
	s.sessions[sessionId] = entry
	return entry.userId, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionId string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.sessions, sessionId)
	return nil
}

func (s *MemoryStore) cleanupStaleEntries() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mutex.Lock()
		for id, entry := range s.sessions {
			if now.After(entry.expiresAt) {
				delete(s.sessions, id)
			}
		}
		s.mutex.Unlock()
	}
}
