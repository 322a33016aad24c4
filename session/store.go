// Package session holds the client's authentication state in a single
// store with a single invalidation path. Route guards, capability checks
// and the 401 handler all read and clear the same state, so the two
// sources cannot diverge.
package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/billmate/billmate-go/models"
)

// identitySnapshot is the persisted form of an authenticated session.
type identitySnapshot struct {
	Identity *models.Identity `json:"identity"`
	Token    string           `json:"token,omitempty"`
	SavedAt  time.Time        `json:"savedAt"`
}

// Store holds either the authenticated identity or the guest capability
// set, never both. It is safe for concurrent use: the 401 handler clears
// it from whatever goroutine ran the request, while guards and capability
// checks read it from theirs.
type Store struct {
	storage Storage
	now     func() time.Time

	mu       sync.RWMutex
	identity *models.Identity
	guest    *models.GuestAccess
	token    string
}

// Open creates a store backed by storage and pre-seeds it from the
// persisted snapshots. A corrupt snapshot is discarded, not fatal.
func Open(storage Storage) (*Store, error) {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &Store{storage: storage, now: time.Now}

	if data, err := storage.Load(identityKey); err == nil {
		var snap identitySnapshot
		if json.Unmarshal(data, &snap) == nil && snap.Identity != nil {
			s.identity = snap.Identity
			s.token = snap.Token
		} else {
			_ = storage.Delete(identityKey)
		}
	}
	if s.identity == nil {
		if data, err := storage.Load(guestKey); err == nil {
			var guest models.GuestAccess
			if json.Unmarshal(data, &guest) == nil {
				s.guest = &guest
			} else {
				_ = storage.Delete(guestKey)
			}
		}
	}

	return s, nil
}

// SetIdentity installs an authenticated session, replacing any guest
// state, and persists the snapshot.
func (s *Store) SetIdentity(identity *models.Identity, token string) error {
	if identity == nil {
		return fmt.Errorf("session: identity cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.token = token
	s.guest = nil
	_ = s.storage.Delete(guestKey)

	data, err := json.Marshal(identitySnapshot{
		Identity: identity,
		Token:    token,
		SavedAt:  s.now(),
	})
	if err != nil {
		return err
	}
	return s.storage.Save(identityKey, data)
}

// SetGuest installs the anonymous capability set, replacing any
// authenticated state, and persists the snapshot.
func (s *Store) SetGuest(guest *models.GuestAccess) error {
	if guest == nil {
		return fmt.Errorf("session: guest access cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.guest = guest
	s.identity = nil
	s.token = ""
	_ = s.storage.Delete(identityKey)

	data, err := json.Marshal(guest)
	if err != nil {
		return err
	}
	return s.storage.Save(guestKey, data)
}

// Identity returns the current authenticated identity, or nil.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Guest returns the current guest capability set, or nil.
func (s *Store) Guest() *models.GuestAccess {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guest
}

// Token returns the current session token, or an empty string.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether an identity is present and its token,
// when it is a JWT, has not expired. This is the one predicate route
// guards consult.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	identity, token := s.identity, s.token
	s.mu.RUnlock()

	if identity == nil {
		return false
	}
	if token == "" {
		// Cookie-only session: presence of the identity is all the
		// client can check; the server enforces expiry with 401.
		return true
	}
	return !s.tokenExpired(token)
}

// Clear drops identity, guest and token state together with the
// persisted snapshots. It is the single invalidation path, wired as the
// client's 401 hook and called on sign-out.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.guest = nil
	s.token = ""
	_ = s.storage.Delete(identityKey)
	_ = s.storage.Delete(guestKey)
}

// tokenExpired parses the token as a JWT without verifying the
// signature: the client only reads the exp claim to avoid presenting a
// token the server is guaranteed to reject. Opaque tokens are treated as
// live.
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return s.now().After(exp.Time)
}
