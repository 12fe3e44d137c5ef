package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, query ports.ListQuery) (*domain.Page[domain.User], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.User
	for _, u := range r.users {
		if query.Search == "" ||
			strings.Contains(strings.ToLower(u.Name), strings.ToLower(query.Search)) ||
			strings.Contains(strings.ToLower(u.Email), strings.ToLower(query.Search)) {
			all = append(all, *cloneUser(u))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	page := domain.NewPage(all, query.Page, query.Size, int64(len(all)))
	return &page, nil
}

// stubAddressRepo is an in-memory ports.AddressRepository.
type stubAddressRepo struct {
	mu        sync.Mutex
	nextID    int64
	addresses map[int64]*domain.Address
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{addresses: make(map[int64]*domain.Address)}
}

func (r *stubAddressRepo) Create(_ context.Context, a *domain.Address) (*domain.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *a
	clone.ID = r.nextID
	r.addresses[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAddressRepo) FindByID(_ context.Context, userID, id int64) (*domain.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addresses[id]
	if !ok || (userID > 0 && a.UserID != userID) {
		return nil, domain.ErrAddressNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAddressRepo) Update(_ context.Context, a *domain.Address) (*domain.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.addresses[a.ID]; !ok {
		return nil, domain.ErrAddressNotFound
	}
	clone := *a
	r.addresses[a.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAddressRepo) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addresses[id]
	if !ok || (userID > 0 && a.UserID != userID) {
		return domain.ErrAddressNotFound
	}
	delete(r.addresses, id)
	return nil
}

func (r *stubAddressRepo) ListByUser(_ context.Context, userID int64, query ports.ListQuery) (*domain.Page[domain.Address], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.Address
	for _, a := range r.addresses {
		if a.UserID == userID {
			all = append(all, *a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	page := domain.NewPage(all, query.Page, query.Size, int64(len(all)))
	return &page, nil
}

func (r *stubAddressRepo) ListAll(_ context.Context, query ports.ListQuery) (*domain.Page[domain.Address], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.Address
	for _, a := range r.addresses {
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	page := domain.NewPage(all, query.Page, query.Size, int64(len(all)))
	return &page, nil
}

func (r *stubAddressRepo) DeleteByUser(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.addresses {
		if a.UserID == userID {
			delete(r.addresses, id)
		}
	}
	return nil
}

// stubAudit collects recorded entries.
type stubAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (a *stubAudit) Record(entry domain.AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *stubAudit) all() []domain.AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.AuditEntry(nil), a.entries...)
}

// stubRevoker is an in-memory TokenRevoker.
type stubRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Time)}
}

func (r *stubRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[jti] = until
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[jti]
	return ok, nil
}
