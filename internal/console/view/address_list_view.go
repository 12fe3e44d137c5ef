package view

import (
	"context"

	"github.com/adminhub/user-console/internal/console/debounce"
	"github.com/adminhub/user-console/internal/console/notify"
	"github.com/adminhub/user-console/pkg/apiclient"
)

// Tabs of the address list screen.
const (
	TabOwn = "own"
	TabAll = "all"
)

// addressCursor is the independent pagination state of one address tab.
type addressCursor struct {
	Page          int
	SortBy        string
	Direction     string
	Search        string
	Rows          []apiclient.Address
	TotalElements int64
	TotalPages    int
	IsFirst       bool
	IsLast        bool
	ConfirmID     int64
	DeletingID    int64
}

func newAddressCursor() addressCursor {
	return addressCursor{SortBy: "createdAt", Direction: "desc"}
}

func (c *addressCursor) options() apiclient.ListOptions {
	return apiclient.ListOptions{
		Page:      c.Page,
		Size:      pageSize,
		SortBy:    c.SortBy,
		Direction: c.Direction,
		Search:    c.Search,
	}
}

func (c *addressCursor) apply(page *apiclient.Page[apiclient.Address]) {
	c.Rows = page.Content
	c.TotalElements = page.TotalElements
	c.TotalPages = page.TotalPages
	c.IsFirst = page.IsFirst
	c.IsLast = page.IsLast
}

// AddressListView drives the address table: the caller's own addresses plus,
// for admins, an "all addresses" tab with its own independent cursor, sort,
// and search state.
type AddressListView struct {
	api    AddressAPI
	toasts *notify.Store
	userID int64

	ActiveTab string
	Own       addressCursor
	All       addressCursor

	ownSearchDeb *debounce.Debouncer
	allSearchDeb *debounce.Debouncer
}

func NewAddressListView(api AddressAPI, toasts *notify.Store, userID int64) *AddressListView {
	v := &AddressListView{
		api:       api,
		toasts:    toasts,
		userID:    userID,
		ActiveTab: TabOwn,
		Own:       newAddressCursor(),
		All:       newAddressCursor(),
	}
	v.ownSearchDeb = debounce.New(searchDebounce, func(term string) { v.applySearch(TabOwn, term) })
	v.allSearchDeb = debounce.New(searchDebounce, func(term string) { v.applySearch(TabAll, term) })
	return v
}

// addressSortDirection derives the direction from the field: alphabetical
// for the city column, descending otherwise.
func addressSortDirection(field string) string {
	if field == "city" {
		return "asc"
	}
	return "desc"
}

func (v *AddressListView) cursor(tab string) *addressCursor {
	if tab == TabAll {
		return &v.All
	}
	return &v.Own
}

// SwitchTab activates a tab and loads it if empty.
func (v *AddressListView) SwitchTab(ctx context.Context, tab string) {
	v.ActiveTab = tab
	if v.cursor(tab).Rows == nil {
		v.Load(ctx, tab)
	}
}

// Load fetches the current page of the given tab.
func (v *AddressListView) Load(ctx context.Context, tab string) {
	c := v.cursor(tab)

	var page *apiclient.Page[apiclient.Address]
	var err error
	if tab == TabAll {
		page, err = v.api.ListAll(ctx, c.options())
	} else {
		page, err = v.api.List(ctx, v.userID, c.options())
	}
	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not load addresses"))
		return
	}

	c.apply(page)
}

// SetSort switches the sort column of a tab and reloads from its first page.
func (v *AddressListView) SetSort(ctx context.Context, tab, field string) {
	c := v.cursor(tab)
	c.SortBy = field
	c.Direction = addressSortDirection(field)
	c.Page = 0
	v.Load(ctx, tab)
}

// GoToPage moves a tab's cursor and reloads.
func (v *AddressListView) GoToPage(ctx context.Context, tab string, page int) {
	if page < 0 {
		page = 0
	}
	v.cursor(tab).Page = page
	v.Load(ctx, tab)
}

// SearchChanged feeds the tab's debouncer; the reload fires after typing
// goes quiet, always from the first page.
func (v *AddressListView) SearchChanged(tab, term string) {
	if tab == TabAll {
		v.allSearchDeb.Set(term)
		return
	}
	v.ownSearchDeb.Set(term)
}

func (v *AddressListView) applySearch(tab, term string) {
	c := v.cursor(tab)
	c.Search = term
	c.Page = 0
	v.Load(context.Background(), tab)
}

// RequestDelete arms the two-step confirmation for a row on a tab.
func (v *AddressListView) RequestDelete(tab string, id int64) {
	v.cursor(tab).ConfirmID = id
}

// CancelDelete disarms the pending confirmation on a tab.
func (v *AddressListView) CancelDelete(tab string) {
	v.cursor(tab).ConfirmID = 0
}

// ConfirmDelete fires the armed delete on a tab. On the admin tab the owner
// comes from the row itself.
func (v *AddressListView) ConfirmDelete(ctx context.Context, tab string) {
	c := v.cursor(tab)
	id := c.ConfirmID
	if id == 0 {
		return
	}
	c.ConfirmID = 0

	ownerID := v.userID
	if tab == TabAll {
		for _, row := range c.Rows {
			if row.ID == id {
				ownerID = row.UserID
				break
			}
		}
	}

	c.DeletingID = id
	err := v.api.Delete(ctx, ownerID, id)
	c.DeletingID = 0

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not delete address"))
		return
	}

	v.toasts.ShowSuccess("address deleted")
	v.Load(ctx, tab)
}
