package view

import (
	"context"
	"strings"

	"github.com/adminhub/user-console/internal/console/notify"
	"github.com/adminhub/user-console/internal/console/session"
	"github.com/adminhub/user-console/pkg/apiclient"
)

// LoginView drives the login form.
type LoginView struct {
	sess   *session.Store
	toasts *notify.Store
	nav    session.Navigator

	// ReturnURL, when set, is where a successful login lands instead of the
	// dashboard. Populated from the returnUrl query parameter by the shell.
	ReturnURL string

	Email        string
	Password     string
	Errors       map[string]string
	IsSubmitting bool
}

func NewLoginView(sess *session.Store, toasts *notify.Store, nav session.Navigator, returnURL string) *LoginView {
	return &LoginView{sess: sess, toasts: toasts, nav: nav, ReturnURL: returnURL}
}

func (v *LoginView) validate() bool {
	v.Errors = map[string]string{}
	if strings.TrimSpace(v.Email) == "" {
		v.Errors["email"] = "email is required"
	}
	if v.Password == "" {
		v.Errors["password"] = "password is required"
	}
	return len(v.Errors) == 0
}

// Submit validates and attempts the login. On success it navigates to the
// return URL or the dashboard; on failure it shows an error toast and leaves
// the form retriable.
func (v *LoginView) Submit(ctx context.Context) {
	if !v.validate() {
		return
	}

	v.IsSubmitting = true
	err := v.sess.Login(ctx, v.Email, v.Password)
	v.IsSubmitting = false

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "login failed"))
		return
	}

	target := v.ReturnURL
	if target == "" {
		target = "/dashboard"
	}
	v.nav.NavigateTo(target)
}

// RegisterView drives the self-registration form.
type RegisterView struct {
	auth   SignupAPI
	toasts *notify.Store
	nav    session.Navigator

	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Errors          map[string]string
	IsSubmitting    bool
}

func NewRegisterView(auth SignupAPI, toasts *notify.Store, nav session.Navigator) *RegisterView {
	return &RegisterView{auth: auth, toasts: toasts, nav: nav}
}

func (v *RegisterView) validate() bool {
	v.Errors = map[string]string{}
	if strings.TrimSpace(v.Name) == "" {
		v.Errors["name"] = "name is required"
	}
	if strings.TrimSpace(v.Email) == "" {
		v.Errors["email"] = "email is required"
	}
	if len(v.Password) < 6 {
		v.Errors["password"] = "password must be at least 6 characters"
	}
	if v.Password != v.ConfirmPassword {
		v.Errors["confirmPassword"] = "passwords do not match"
	}
	return len(v.Errors) == 0
}

// Submit registers the account and, on success, sends the visitor to the
// login form with a success toast.
func (v *RegisterView) Submit(ctx context.Context) {
	if !v.validate() {
		return
	}

	v.IsSubmitting = true
	_, err := v.auth.Signup(ctx, apiclient.SignupInput{
		Name:     v.Name,
		Email:    v.Email,
		Password: v.Password,
	})
	v.IsSubmitting = false

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "registration failed"))
		return
	}

	v.toasts.ShowSuccess("account created, please sign in")
	v.nav.NavigateTo("/auth/login")
}
