package view

import (
	"context"
	"strings"

	"github.com/adminhub/user-console/internal/console/notify"
	"github.com/adminhub/user-console/internal/console/session"
	"github.com/adminhub/user-console/pkg/apiclient"
)

// UserFormView drives the admin create/edit user form with role checkboxes.
type UserFormView struct {
	api    UserAPI
	toasts *notify.Store
	nav    session.Navigator

	// UserID zero means create mode.
	UserID int64

	Name      string
	Email     string
	Password  string
	RoleUser  bool
	RoleAdmin bool

	Errors   map[string]string
	IsSaving bool
}

func NewUserFormView(api UserAPI, toasts *notify.Store, nav session.Navigator, userID int64) *UserFormView {
	return &UserFormView{api: api, toasts: toasts, nav: nav, UserID: userID, RoleUser: true}
}

// Load populates the form in edit mode.
func (v *UserFormView) Load(ctx context.Context) {
	if v.UserID == 0 {
		return
	}

	user, err := v.api.Get(ctx, v.UserID)
	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not load user"))
		return
	}

	v.Name = user.Name
	v.Email = user.Email
	v.RoleUser = user.HasRole("ROLE_USER")
	v.RoleAdmin = user.HasRole("ROLE_ADMIN")
}

func (v *UserFormView) roles() []string {
	var roles []string
	if v.RoleUser {
		roles = append(roles, "ROLE_USER")
	}
	if v.RoleAdmin {
		roles = append(roles, "ROLE_ADMIN")
	}
	return roles
}

func (v *UserFormView) validate() bool {
	v.Errors = map[string]string{}
	if strings.TrimSpace(v.Name) == "" {
		v.Errors["name"] = "name is required"
	}
	if strings.TrimSpace(v.Email) == "" {
		v.Errors["email"] = "email is required"
	}
	if v.UserID == 0 && len(v.Password) < 6 {
		v.Errors["password"] = "password must be at least 6 characters"
	}
	return len(v.Errors) == 0
}

// Submit creates or updates the account and navigates back to the user list.
func (v *UserFormView) Submit(ctx context.Context) {
	if !v.validate() {
		return
	}

	v.IsSaving = true
	var err error
	if v.UserID == 0 {
		_, err = v.api.Create(ctx, apiclient.CreateUserInput{
			Name:     v.Name,
			Email:    v.Email,
			Password: v.Password,
			Roles:    v.roles(),
		})
	} else {
		_, err = v.api.Update(ctx, v.UserID, apiclient.UpdateUserInput{
			Name:  v.Name,
			Email: v.Email,
			Roles: v.roles(),
		})
	}
	v.IsSaving = false

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not save user"))
		return
	}

	if v.UserID == 0 {
		v.toasts.ShowSuccess("user created")
	} else {
		v.toasts.ShowSuccess("user updated")
	}
	v.nav.NavigateTo("/dashboard/users")
}

// ProfileView drives the own-profile screen: editable name/email plus a
// separate password change flow.
type ProfileView struct {
	api    UserAPI
	sess   *session.Store
	toasts *notify.Store

	Name  string
	Email string

	NewPassword     string
	ConfirmPassword string

	Errors   map[string]string
	IsSaving bool
}

func NewProfileView(api UserAPI, sess *session.Store, toasts *notify.Store) *ProfileView {
	return &ProfileView{api: api, sess: sess, toasts: toasts}
}

// Load fetches the logged-in user's current record.
func (v *ProfileView) Load(ctx context.Context) {
	current := v.sess.CurrentUser()
	if current == nil {
		return
	}

	user, err := v.api.Get(ctx, current.ID)
	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not load profile"))
		return
	}
	v.Name = user.Name
	v.Email = user.Email
}

// SubmitProfile saves name and email changes.
func (v *ProfileView) SubmitProfile(ctx context.Context) {
	current := v.sess.CurrentUser()
	if current == nil {
		return
	}

	v.Errors = map[string]string{}
	if strings.TrimSpace(v.Name) == "" {
		v.Errors["name"] = "name is required"
	}
	if strings.TrimSpace(v.Email) == "" {
		v.Errors["email"] = "email is required"
	}
	if len(v.Errors) > 0 {
		return
	}

	v.IsSaving = true
	_, err := v.api.Update(ctx, current.ID, apiclient.UpdateUserInput{
		Name:  v.Name,
		Email: v.Email,
		Roles: current.Roles,
	})
	v.IsSaving = false

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not save profile"))
		return
	}
	v.toasts.ShowSuccess("profile updated")
}

// SubmitPassword changes the account password through the dedicated endpoint.
func (v *ProfileView) SubmitPassword(ctx context.Context) {
	current := v.sess.CurrentUser()
	if current == nil {
		return
	}

	v.Errors = map[string]string{}
	if len(v.NewPassword) < 6 {
		v.Errors["newPassword"] = "password must be at least 6 characters"
	}
	if v.NewPassword != v.ConfirmPassword {
		v.Errors["confirmPassword"] = "passwords do not match"
	}
	if len(v.Errors) > 0 {
		return
	}

	v.IsSaving = true
	err := v.api.UpdatePassword(ctx, current.ID, v.NewPassword)
	v.IsSaving = false

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not change password"))
		return
	}

	v.NewPassword = ""
	v.ConfirmPassword = ""
	v.toasts.ShowSuccess("password updated")
}
