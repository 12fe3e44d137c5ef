package view

import (
	"context"
	"time"

	"github.com/adminhub/user-console/internal/console/debounce"
	"github.com/adminhub/user-console/internal/console/notify"
	"github.com/adminhub/user-console/pkg/apiclient"
)

const searchDebounce = 300 * time.Millisecond

// UserListView drives the paginated user table. Admin only; the server
// enforces that, the view just surfaces the error.
type UserListView struct {
	api    UserAPI
	toasts *notify.Store

	Page          int
	SortBy        string
	Direction     string
	Search        string
	Rows          []apiclient.User
	TotalElements int64
	TotalPages    int
	IsFirst       bool
	IsLast        bool

	// ConfirmID is the row awaiting delete confirmation; DeletingID marks
	// the row whose delete request is in flight.
	ConfirmID  int64
	DeletingID int64

	searchDeb *debounce.Debouncer
}

func NewUserListView(api UserAPI, toasts *notify.Store) *UserListView {
	v := &UserListView{
		api:       api,
		toasts:    toasts,
		SortBy:    "name",
		Direction: "asc",
	}
	v.searchDeb = debounce.New(searchDebounce, v.applySearch)
	return v
}

// userSortDirection derives the direction from the field: newest first for
// the timestamp column, alphabetical otherwise.
func userSortDirection(field string) string {
	if field == "createdAt" {
		return "desc"
	}
	return "asc"
}

// Load fetches the current page.
func (v *UserListView) Load(ctx context.Context) {
	page, err := v.api.List(ctx, apiclient.ListOptions{
		Page:      v.Page,
		Size:      pageSize,
		SortBy:    v.SortBy,
		Direction: v.Direction,
		Search:    v.Search,
	})
	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not load users"))
		return
	}

	v.Rows = page.Content
	v.TotalElements = page.TotalElements
	v.TotalPages = page.TotalPages
	v.IsFirst = page.IsFirst
	v.IsLast = page.IsLast
}

// SetSort switches the sort column and reloads from the first page.
func (v *UserListView) SetSort(ctx context.Context, field string) {
	v.SortBy = field
	v.Direction = userSortDirection(field)
	v.Page = 0
	v.Load(ctx)
}

// GoToPage moves the cursor and reloads.
func (v *UserListView) GoToPage(ctx context.Context, page int) {
	if page < 0 {
		page = 0
	}
	v.Page = page
	v.Load(ctx)
}

// SearchChanged feeds the debouncer; the reload fires only after typing goes
// quiet and always restarts from the first page.
func (v *UserListView) SearchChanged(term string) {
	v.searchDeb.Set(term)
}

func (v *UserListView) applySearch(term string) {
	v.Search = term
	v.Page = 0
	v.Load(context.Background())
}

// RequestDelete arms the two-step confirmation for a row.
func (v *UserListView) RequestDelete(id int64) {
	v.ConfirmID = id
}

// CancelDelete disarms the pending confirmation.
func (v *UserListView) CancelDelete() {
	v.ConfirmID = 0
}

// ConfirmDelete fires the armed delete. The row's deleting marker is held
// for the duration of the request and cleared on success and failure alike.
func (v *UserListView) ConfirmDelete(ctx context.Context) {
	id := v.ConfirmID
	if id == 0 {
		return
	}
	v.ConfirmID = 0
	v.DeletingID = id

	err := v.api.Delete(ctx, id)
	v.DeletingID = 0

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not delete user"))
		return
	}

	v.toasts.ShowSuccess("user deleted")
	v.Load(ctx)
}
