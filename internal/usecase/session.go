package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

type session struct {
	userID    string
	expiresAt time.Time
}

// SessionStore keeps login sessions in memory. Sessions do not survive a
// restart; the frontend just sends the user back to the login page.
type SessionStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:  ttl,
		data: make(map[string]session),
	}
}

func (s *SessionStore) Issue(userID string) string {
	token := newToken()
	s.mu.Lock()
	s.data[token] = session{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

func (s *SessionStore) UserID(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[token]
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.data, token)
		return "", false
	}
	return sess.userID, true
}

func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.data, token)
	s.mu.Unlock()
}

func newToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
