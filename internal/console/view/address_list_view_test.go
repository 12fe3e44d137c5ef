package view

import (
	"context"
	"net/http"
	"testing"

	"github.com/adminhub/user-console/pkg/apiclient"
)

func TestAddressListViewLoadsOwnTab(t *testing.T) {
	api := &stubAddressAPI{
		listFn: func(ctx context.Context, userID int64, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
			if userID != 3 {
				t.Fatalf("userID = %d, want 3", userID)
			}
			if opts.SortBy != "createdAt" || opts.Direction != "desc" {
				t.Fatalf("default sort = %s %s, want createdAt desc", opts.SortBy, opts.Direction)
			}
			page := emptyAddressPage(opts)
			page.Content = []apiclient.Address{{ID: 1, City: "Campinas"}}
			return page, nil
		},
	}

	v := NewAddressListView(api, quietToasts(), 3)
	v.Load(context.Background(), TabOwn)

	if len(v.Own.Rows) != 1 || v.Own.Rows[0].City != "Campinas" {
		t.Fatalf("own rows = %+v", v.Own.Rows)
	}
	if v.All.Rows != nil {
		t.Fatal("all tab should stay untouched")
	}
}

func TestAddressListViewSortDirection(t *testing.T) {
	rec := &optsRecorder{}
	api := &stubAddressAPI{
		listFn: func(ctx context.Context, userID int64, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
			rec.record(opts)
			return emptyAddressPage(opts), nil
		},
	}

	v := NewAddressListView(api, quietToasts(), 3)

	v.SetSort(context.Background(), TabOwn, "zipCode")
	got, _ := rec.last()
	if got.SortBy != "zipCode" || got.Direction != "desc" {
		t.Fatalf("zipCode sort = %s %s, want zipCode desc", got.SortBy, got.Direction)
	}

	v.SetSort(context.Background(), TabOwn, "city")
	got, _ = rec.last()
	if got.SortBy != "city" || got.Direction != "asc" {
		t.Fatalf("city sort = %s %s, want city asc", got.SortBy, got.Direction)
	}
}

func TestAddressListViewTabCursorsIndependent(t *testing.T) {
	ownRec := &optsRecorder{}
	allRec := &optsRecorder{}
	api := &stubAddressAPI{
		listFn: func(ctx context.Context, userID int64, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
			ownRec.record(opts)
			return emptyAddressPage(opts), nil
		},
		listAllFn: func(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
			allRec.record(opts)
			return emptyAddressPage(opts), nil
		},
	}

	v := NewAddressListView(api, quietToasts(), 3)
	v.GoToPage(context.Background(), TabOwn, 4)
	v.SetSort(context.Background(), TabAll, "state")

	if v.Own.Page != 4 {
		t.Fatalf("own page = %d, want 4", v.Own.Page)
	}
	if v.All.Page != 0 || v.All.SortBy != "state" {
		t.Fatalf("all cursor = %+v", v.All)
	}
	ownGot, _ := ownRec.last()
	if ownGot.SortBy != "createdAt" {
		t.Fatalf("own sort leaked: %+v", ownGot)
	}
	allGot, _ := allRec.last()
	if allGot.SortBy != "state" || allGot.Direction != "desc" {
		t.Fatalf("all sort = %+v", allGot)
	}
}

func TestAddressListViewSwitchTabLoadsOnce(t *testing.T) {
	calls := 0
	api := &stubAddressAPI{
		listAllFn: func(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
			calls++
			return emptyAddressPage(opts), nil
		},
	}

	v := NewAddressListView(api, quietToasts(), 3)
	v.SwitchTab(context.Background(), TabAll)
	v.SwitchTab(context.Background(), TabAll)

	if calls != 1 {
		t.Fatalf("listAll calls = %d, want 1", calls)
	}
}

func TestAddressListViewSearchResetsPage(t *testing.T) {
	rec := &optsRecorder{}
	api := &stubAddressAPI{
		listFn: func(ctx context.Context, userID int64, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
			rec.record(opts)
			return emptyAddressPage(opts), nil
		},
	}

	v := NewAddressListView(api, quietToasts(), 3)
	v.GoToPage(context.Background(), TabOwn, 2)
	_, before := rec.last()

	v.SearchChanged(TabOwn, "camp")

	waitFor(t, func() bool { _, n := rec.last(); return n > before })
	got, _ := rec.last()
	if got.Search != "camp" || got.Page != 0 {
		t.Fatalf("search reload = %+v, want search camp page 0", got)
	}
}

func TestAddressListViewAdminDeleteUsesRowOwner(t *testing.T) {
	var gotOwner, gotID int64
	api := &stubAddressAPI{
		listAllFn: func(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error) {
			page := emptyAddressPage(opts)
			page.Content = []apiclient.Address{{ID: 12, UserID: 7, City: "Recife"}}
			return page, nil
		},
		deleteFn: func(ctx context.Context, userID, id int64) error {
			gotOwner, gotID = userID, id
			return nil
		},
	}

	v := NewAddressListView(api, quietToasts(), 3)
	v.SwitchTab(context.Background(), TabAll)
	v.RequestDelete(TabAll, 12)
	v.ConfirmDelete(context.Background(), TabAll)

	if gotOwner != 7 || gotID != 12 {
		t.Fatalf("delete called with owner=%d id=%d, want 7/12", gotOwner, gotID)
	}
}

func TestAddressListViewDeleteClearsMarkerOnFailure(t *testing.T) {
	var during int64
	var v *AddressListView
	api := &stubAddressAPI{
		deleteFn: func(ctx context.Context, userID, id int64) error {
			during = v.Own.DeletingID
			return &apiclient.APIError{Status: http.StatusNotFound, Message: "address not found"}
		},
	}
	toasts := quietToasts()
	v = NewAddressListView(api, toasts, 3)

	v.RequestDelete(TabOwn, 8)
	v.ConfirmDelete(context.Background(), TabOwn)

	if during != 8 {
		t.Fatalf("deleting marker during request = %d, want 8", during)
	}
	if v.Own.DeletingID != 0 {
		t.Fatalf("deleting marker not cleared: %d", v.Own.DeletingID)
	}
	got := toasts.Toasts()
	if len(got) != 1 || got[0].Message != "address not found" {
		t.Fatalf("toasts = %+v", got)
	}
}
