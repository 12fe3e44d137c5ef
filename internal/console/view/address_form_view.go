package view

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/adminhub/user-console/internal/console/debounce"
	"github.com/adminhub/user-console/internal/console/notify"
	"github.com/adminhub/user-console/internal/console/session"
	"github.com/adminhub/user-console/internal/infrastructure/cep"
	"github.com/adminhub/user-console/pkg/apiclient"
)

const zipDebounce = time.Second

// AddressFormView drives the address create/edit form, including the
// postal-code auto-fill flow: debounced (or blur-triggered) lookup, field
// patching, and conditional locking of resolved fields.
type AddressFormView struct {
	api    AddressAPI
	cep    CEPLookup
	toasts *notify.Store
	nav    session.Navigator

	UserID int64
	// AddressID zero means create mode.
	AddressID int64

	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Country      string

	// Locks mark fields resolved by the postal-code service; locked fields
	// are not editable so user input cannot contradict authoritative data.
	LockStreet       bool
	LockNeighborhood bool
	LockCity         bool
	LockState        bool

	CEPError     string
	IsLoadingCEP bool
	IsSaving     bool
	Errors       map[string]string

	zipDeb *debounce.Debouncer
}

func NewAddressFormView(api AddressAPI, lookup CEPLookup, toasts *notify.Store, nav session.Navigator, userID, addressID int64) *AddressFormView {
	v := &AddressFormView{
		api:       api,
		cep:       lookup,
		toasts:    toasts,
		nav:       nav,
		UserID:    userID,
		AddressID: addressID,
	}
	v.zipDeb = debounce.New(zipDebounce, func(code string) {
		v.LookupCEP(context.Background(), code)
	})
	return v
}

// Load populates the form in edit mode.
func (v *AddressFormView) Load(ctx context.Context) {
	if v.AddressID == 0 {
		return
	}

	address, err := v.api.Get(ctx, v.UserID, v.AddressID)
	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not load address"))
		return
	}

	v.Street = address.Street
	v.Number = address.Number
	v.Complement = address.Complement
	v.Neighborhood = address.Neighborhood
	v.City = address.City
	v.State = address.State
	v.ZipCode = address.ZipCode
	v.Country = address.Country
}

// ZipChanged records keystrokes; the lookup fires once input stabilises.
func (v *AddressFormView) ZipChanged(code string) {
	v.ZipCode = code
	v.zipDeb.Set(code)
}

// ZipBlurred triggers the pending lookup immediately.
func (v *AddressFormView) ZipBlurred() {
	v.zipDeb.Flush(v.ZipCode)
}

// LookupCEP resolves the code and patches the address fields. City and state
// lock whenever the lookup succeeds; street and neighborhood lock only when
// the service returned them. Not-found surfaces a message and clears and
// re-enables all four.
func (v *AddressFormView) LookupCEP(ctx context.Context, code string) {
	v.CEPError = ""

	v.IsLoadingCEP = true
	info, err := v.cep.Lookup(ctx, code)
	v.IsLoadingCEP = false

	if err != nil {
		switch {
		case errors.Is(err, cep.ErrEmpty):
			v.CEPError = "postal code is required"
		case errors.Is(err, cep.ErrInvalidLength):
			v.CEPError = "postal code must have 8 digits"
		case errors.Is(err, cep.ErrNotFound):
			v.CEPError = "postal code not found"
			v.toasts.ShowError(v.CEPError)
			v.clearResolvedFields()
		default:
			v.CEPError = "postal code lookup unavailable"
		}
		return
	}

	if info.Street != "" {
		v.Street = info.Street
		v.LockStreet = true
	}
	if info.Neighborhood != "" {
		v.Neighborhood = info.Neighborhood
		v.LockNeighborhood = true
	}
	v.City = info.City
	v.State = info.State
	v.LockCity = true
	v.LockState = true
	v.Country = "Brasil"
}

func (v *AddressFormView) clearResolvedFields() {
	v.Street = ""
	v.Neighborhood = ""
	v.City = ""
	v.State = ""
	v.LockStreet = false
	v.LockNeighborhood = false
	v.LockCity = false
	v.LockState = false
}

func (v *AddressFormView) validate() bool {
	v.Errors = map[string]string{}
	required := map[string]string{
		"street":  v.Street,
		"number":  v.Number,
		"city":    v.City,
		"state":   v.State,
		"zipCode": v.ZipCode,
		"country": v.Country,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			v.Errors[field] = field + " is required"
		}
	}
	return len(v.Errors) == 0
}

func (v *AddressFormView) input() apiclient.AddressInput {
	return apiclient.AddressInput{
		Street:       v.Street,
		Number:       v.Number,
		Complement:   v.Complement,
		Neighborhood: v.Neighborhood,
		City:         v.City,
		State:        v.State,
		ZipCode:      v.ZipCode,
		Country:      v.Country,
	}
}

// Submit creates or updates the address and navigates back to the list.
func (v *AddressFormView) Submit(ctx context.Context) {
	if !v.validate() {
		return
	}

	v.IsSaving = true
	var err error
	if v.AddressID == 0 {
		_, err = v.api.Create(ctx, v.UserID, v.input())
	} else {
		_, err = v.api.Update(ctx, v.UserID, v.AddressID, v.input())
	}
	v.IsSaving = false

	if err != nil {
		v.toasts.ShowError(errorMessage(err, "could not save address"))
		return
	}

	if v.AddressID == 0 {
		v.toasts.ShowSuccess("address created")
	} else {
		v.toasts.ShowSuccess("address updated")
	}
	v.nav.NavigateTo("/dashboard/addresses")
}
