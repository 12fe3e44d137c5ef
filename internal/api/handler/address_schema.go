package handler

import "time"

type addressRequest struct {
	Street       string `json:"street"       validate:"required"`
	Number       string `json:"number"       validate:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"         validate:"required"`
	State        string `json:"state"        validate:"required"`
	ZipCode      string `json:"zipCode"      validate:"required"`
	Country      string `json:"country"      validate:"required"`
}

type addressResponse struct {
	ID           int64     `json:"id"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Country      string    `json:"country"`
	UserID       int64     `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
