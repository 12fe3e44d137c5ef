package view

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-console/internal/console/notify"
	"github.com/adminhub/user-console/internal/console/session"
	"github.com/adminhub/user-console/internal/infrastructure/cep"
	"github.com/adminhub/user-console/pkg/apiclient"
)

// waitFor polls until the condition holds, failing the test after a second.
// Debounced callbacks fire on timer goroutines, so tests wait instead of
// sleeping a fixed interval.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

type stubAuth struct {
	loginFn  func(ctx context.Context, email, password string) (*apiclient.Session, error)
	logoutFn func(ctx context.Context) error
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*apiclient.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuth) Logout(ctx context.Context) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx)
	}
	return nil
}

// loggedInSession builds a session store already authenticated as the given
// user, for views that read the current identity.
func loggedInSession(t *testing.T, id int64, roles ...string) *session.Store {
	t.Helper()
	auth := &stubAuth{
		loginFn: func(ctx context.Context, email, password string) (*apiclient.Session, error) {
			return &apiclient.Session{Token: "t1", ID: id, Name: "Test User", Email: email, Roles: roles}, nil
		},
	}
	sess := session.NewStore(auth, nil, &recordingNav{}, zerolog.Nop())
	if err := sess.Login(context.Background(), "user@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return sess
}

type recordingNav struct {
	targets []string
}

func (n *recordingNav) NavigateTo(url string) {
	n.targets = append(n.targets, url)
}

func quietToasts() *notify.Store {
	return notify.NewStoreTTL(time.Minute)
}

type stubUserAPI struct {
	listFn           func(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.User], error)
	getFn            func(ctx context.Context, id int64) (*apiclient.User, error)
	createFn         func(ctx context.Context, input apiclient.CreateUserInput) (*apiclient.User, error)
	updateFn         func(ctx context.Context, id int64, input apiclient.UpdateUserInput) (*apiclient.User, error)
	updatePasswordFn func(ctx context.Context, id int64, password string) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (s *stubUserAPI) List(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.User], error) {
	return s.listFn(ctx, opts)
}

func (s *stubUserAPI) Get(ctx context.Context, id int64) (*apiclient.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserAPI) Create(ctx context.Context, input apiclient.CreateUserInput) (*apiclient.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserAPI) Update(ctx context.Context, id int64, input apiclient.UpdateUserInput) (*apiclient.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserAPI) UpdatePassword(ctx context.Context, id int64, password string) error {
	return s.updatePasswordFn(ctx, id, password)
}

func (s *stubUserAPI) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func emptyUserPage(opts apiclient.ListOptions) *apiclient.Page[apiclient.User] {
	return &apiclient.Page[apiclient.User]{
		Content:    []apiclient.User{},
		PageNumber: opts.Page,
		PageSize:   opts.Size,
		IsFirst:    opts.Page == 0,
		IsLast:     true,
	}
}

type stubAddressAPI struct {
	listFn    func(ctx context.Context, userID int64, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error)
	listAllFn func(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error)
	getFn     func(ctx context.Context, userID, id int64) (*apiclient.Address, error)
	createFn  func(ctx context.Context, userID int64, input apiclient.AddressInput) (*apiclient.Address, error)
	updateFn  func(ctx context.Context, userID, id int64, input apiclient.AddressInput) (*apiclient.Address, error)
	deleteFn  func(ctx context.Context, userID, id int64) error
}

func (s *stubAddressAPI) List(ctx context.Context, userID int64, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
	return s.listFn(ctx, userID, opts)
}

func (s *stubAddressAPI) ListAll(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
	return s.listAllFn(ctx, opts)
}

func (s *stubAddressAPI) Get(ctx context.Context, userID, id int64) (*apiclient.Address, error) {
	return s.getFn(ctx, userID, id)
}

func (s *stubAddressAPI) Create(ctx context.Context, userID int64, input apiclient.AddressInput) (*apiclient.Address, error) {
	return s.createFn(ctx, userID, input)
}

func (s *stubAddressAPI) Update(ctx context.Context, userID, id int64, input apiclient.AddressInput) (*apiclient.Address, error) {
	return s.updateFn(ctx, userID, id, input)
}

func (s *stubAddressAPI) Delete(ctx context.Context, userID, id int64) error {
	return s.deleteFn(ctx, userID, id)
}

func emptyAddressPage(opts apiclient.ListOptions) *apiclient.Page[apiclient.Address] {
	return &apiclient.Page[apiclient.Address]{
		Content:    []apiclient.Address{},
		PageNumber: opts.Page,
		PageSize:   opts.Size,
		IsFirst:    opts.Page == 0,
		IsLast:     true,
	}
}

type stubCEP struct {
	lookupFn func(ctx context.Context, raw string) (*cep.Info, error)
}

func (s *stubCEP) Lookup(ctx context.Context, raw string) (*cep.Info, error) {
	return s.lookupFn(ctx, raw)
}
