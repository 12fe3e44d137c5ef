package view

import (
	"context"
	"reflect"
	"testing"

	"github.com/adminhub/user-console/pkg/apiclient"
)

func TestUserFormViewCreate(t *testing.T) {
	var got apiclient.CreateUserInput
	api := &stubUserAPI{
		createFn: func(ctx context.Context, input apiclient.CreateUserInput) (*apiclient.User, error) {
			got = input
			return &apiclient.User{ID: 9}, nil
		},
	}
	nav := &recordingNav{}

	v := NewUserFormView(api, quietToasts(), nav, 0)
	v.Name = "Dave"
	v.Email = "dave@example.com"
	v.Password = "secret1"
	v.RoleAdmin = true
	v.Submit(context.Background())

	if got.Email != "dave@example.com" {
		t.Fatalf("create input = %+v", got)
	}
	want := []string{"ROLE_USER", "ROLE_ADMIN"}
	if !reflect.DeepEqual(got.Roles, want) {
		t.Fatalf("roles = %v, want %v", got.Roles, want)
	}
	if len(nav.targets) != 1 || nav.targets[0] != "/dashboard/users" {
		t.Fatalf("navigation = %v, want /dashboard/users", nav.targets)
	}
}

func TestUserFormViewCreateRequiresPassword(t *testing.T) {
	called := false
	api := &stubUserAPI{
		createFn: func(ctx context.Context, input apiclient.CreateUserInput) (*apiclient.User, error) {
			called = true
			return nil, nil
		},
	}

	v := NewUserFormView(api, quietToasts(), &recordingNav{}, 0)
	v.Name = "Dave"
	v.Email = "dave@example.com"
	v.Password = "short"
	v.Submit(context.Background())

	if called {
		t.Fatal("create should not fire with a short password")
	}
	if v.Errors["password"] == "" {
		t.Fatalf("missing password error: %v", v.Errors)
	}
}

func TestUserFormViewEditLoadsAndUpdates(t *testing.T) {
	var got apiclient.UpdateUserInput
	api := &stubUserAPI{
		getFn: func(ctx context.Context, id int64) (*apiclient.User, error) {
			return &apiclient.User{ID: 9, Name: "Dave", Email: "dave@example.com", Roles: []string{"ROLE_ADMIN"}}, nil
		},
		updateFn: func(ctx context.Context, id int64, input apiclient.UpdateUserInput) (*apiclient.User, error) {
			if id != 9 {
				t.Fatalf("update id = %d, want 9", id)
			}
			got = input
			return &apiclient.User{ID: 9}, nil
		},
	}

	v := NewUserFormView(api, quietToasts(), &recordingNav{}, 9)
	v.Load(context.Background())

	if v.Name != "Dave" || v.RoleUser || !v.RoleAdmin {
		t.Fatalf("form not populated from record: %+v", v)
	}

	// No password needed in edit mode.
	v.Name = "David"
	v.Submit(context.Background())

	if got.Name != "David" || !reflect.DeepEqual(got.Roles, []string{"ROLE_ADMIN"}) {
		t.Fatalf("update input = %+v", got)
	}
}

func TestProfileViewSubmitProfileKeepsRoles(t *testing.T) {
	var got apiclient.UpdateUserInput
	api := &stubUserAPI{
		updateFn: func(ctx context.Context, id int64, input apiclient.UpdateUserInput) (*apiclient.User, error) {
			if id != 5 {
				t.Fatalf("update id = %d, want 5", id)
			}
			got = input
			return &apiclient.User{ID: 5}, nil
		},
	}
	sess := loggedInSession(t, 5, "ROLE_USER")

	v := NewProfileView(api, sess, quietToasts())
	v.Name = "New Name"
	v.Email = "new@example.com"
	v.SubmitProfile(context.Background())

	if got.Name != "New Name" || got.Email != "new@example.com" {
		t.Fatalf("update input = %+v", got)
	}
	if !reflect.DeepEqual(got.Roles, []string{"ROLE_USER"}) {
		t.Fatalf("roles should carry over unchanged: %v", got.Roles)
	}
}

func TestProfileViewSubmitPassword(t *testing.T) {
	var gotID int64
	var gotPassword string
	api := &stubUserAPI{
		updatePasswordFn: func(ctx context.Context, id int64, password string) error {
			gotID, gotPassword = id, password
			return nil
		},
	}
	sess := loggedInSession(t, 5, "ROLE_USER")

	v := NewProfileView(api, sess, quietToasts())
	v.NewPassword = "secret2"
	v.ConfirmPassword = "secret2"
	v.SubmitPassword(context.Background())

	if gotID != 5 || gotPassword != "secret2" {
		t.Fatalf("password change = %d/%q, want 5/secret2", gotID, gotPassword)
	}
	if v.NewPassword != "" || v.ConfirmPassword != "" {
		t.Fatal("password fields should clear after success")
	}
}

func TestProfileViewSubmitPasswordMismatch(t *testing.T) {
	called := false
	api := &stubUserAPI{
		updatePasswordFn: func(ctx context.Context, id int64, password string) error {
			called = true
			return nil
		},
	}
	sess := loggedInSession(t, 5, "ROLE_USER")

	v := NewProfileView(api, sess, quietToasts())
	v.NewPassword = "secret2"
	v.ConfirmPassword = "secret3"
	v.SubmitPassword(context.Background())

	if called {
		t.Fatal("password change should not fire on mismatch")
	}
	if v.Errors["confirmPassword"] == "" {
		t.Fatalf("missing mismatch error: %v", v.Errors)
	}
}
