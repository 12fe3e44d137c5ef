// Package session owns the authenticated identity of the console: the token
// and current-user record, persisted through a two-key Storage and mirrored
// into an in-memory snapshot that guards and views read synchronously.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-console/internal/console/storage"
	"github.com/adminhub/user-console/pkg/apiclient"
)

// Storage keys. Both are written and cleared together; a token without a
// user record (or vice versa) is treated as logged out.
const (
	KeyToken = "auth_token"
	KeyUser  = "user_data"
)

// Navigator performs a route change. The console shell provides the real one;
// tests record the target.
type Navigator interface {
	NavigateTo(url string)
}

// AuthAPI is the slice of the API client the session layer needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*apiclient.Session, error)
	Logout(ctx context.Context) error
}

// Snapshot is one atomic view of the session. Reads never see a token
// without its user or the other way around.
type Snapshot struct {
	Token         string
	User          *apiclient.User
	Authenticated bool
}

// Store holds session state. All mutations replace the snapshot whole and
// notify subscribers synchronously, in subscription order.
type Store struct {
	mu      sync.Mutex
	auth    AuthAPI
	storage storage.Storage
	nav     Navigator
	log     zerolog.Logger

	snap    Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore builds a Store and hydrates it from storage. A nil Storage means
// a context without durable state; the store starts logged out and skips all
// persistence.
func NewStore(auth AuthAPI, st storage.Storage, nav Navigator, log zerolog.Logger) *Store {
	s := &Store{
		auth:    auth,
		storage: st,
		nav:     nav,
		log:     log,
		subs:    make(map[int]func(Snapshot)),
	}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.storage == nil {
		return
	}

	token, okToken := s.storage.Get(KeyToken)
	raw, okUser := s.storage.Get(KeyUser)
	if !okToken || !okUser || token == "" {
		// An orphan key means a half-written session; both keys go.
		if okToken || okUser {
			_ = s.storage.Delete(KeyToken)
			_ = s.storage.Delete(KeyUser)
		}
		return
	}

	var user apiclient.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable persisted session")
		_ = s.storage.Delete(KeyToken)
		_ = s.storage.Delete(KeyUser)
		return
	}

	s.snap = Snapshot{Token: token, User: &user, Authenticated: true}
}

// Login authenticates and, on success, persists both keys and flips the
// authenticated flag in one replacement.
func (s *Store) Login(ctx context.Context, email, password string) error {
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user := apiclient.User{
		ID:    result.ID,
		Name:  result.Name,
		Email: result.Email,
		Roles: result.Roles,
	}

	s.mu.Lock()
	if s.storage != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		if err := s.storage.Set(KeyToken, result.Token); err != nil {
			s.mu.Unlock()
			return err
		}
		if err := s.storage.Set(KeyUser, string(raw)); err != nil {
			// Roll back the token so the two keys never diverge.
			_ = s.storage.Delete(KeyToken)
			s.mu.Unlock()
			return err
		}
	}
	s.snap = Snapshot{Token: result.Token, User: &user, Authenticated: true}
	snap := s.snap
	subs := s.subscribers()
	s.mu.Unlock()

	s.notify(subs, snap)
	return nil
}

// Logout revokes the token server-side (best effort), clears both persisted
// keys, resets state, and navigates to the login route.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("server-side logout failed, clearing local session anyway")
	}

	s.mu.Lock()
	if s.storage != nil {
		_ = s.storage.Delete(KeyToken)
		_ = s.storage.Delete(KeyUser)
	}
	s.snap = Snapshot{}
	snap := s.snap
	subs := s.subscribers()
	s.mu.Unlock()

	s.notify(subs, snap)
	if s.nav != nil {
		s.nav.NavigateTo("/auth/login")
	}
}

// Snapshot returns the current atomic view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	return s.Snapshot().Authenticated
}

// Token returns the session token, empty when logged out.
func (s *Store) Token() string {
	return s.Snapshot().Token
}

// CurrentUser returns the logged-in user record, nil when logged out.
func (s *Store) CurrentUser() *apiclient.User {
	return s.Snapshot().User
}

// HasRole reports whether the logged-in user holds the named role.
func (s *Store) HasRole(role string) bool {
	snap := s.Snapshot()
	return snap.User != nil && snap.User.HasRole(role)
}

// TokenSource adapts the store for apiclient authentication.
func (s *Store) TokenSource() apiclient.TokenSource {
	return s.Token
}

// Subscribe registers a synchronous change callback and returns the
// unsubscribe function.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) subscribers() []func(Snapshot) {
	subs := make([]func(Snapshot), 0, len(s.subs))
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func (s *Store) notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
