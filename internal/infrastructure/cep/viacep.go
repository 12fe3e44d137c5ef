// Package cep resolves Brazilian postal codes (CEP) through the ViaCEP
// public service.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://viacep.com.br/ws"

	defaultTimeout = 5 * time.Second
	cepLength      = 8
)

var (
	// ErrEmpty is returned when no code was provided at all.
	ErrEmpty = errors.New("cep is empty")
	// ErrInvalidLength is returned when the cleaned code is not 8 digits.
	ErrInvalidLength = errors.New("cep must have 8 digits")
	// ErrNotFound is returned when the service does not know the code.
	ErrNotFound = errors.New("cep not found")
	// ErrUnavailable is returned on transport or upstream failures.
	ErrUnavailable = errors.New("cep service unavailable")
)

// Info is the address data resolved for a postal code. Optional fields come
// back empty when the service has no record for them.
type Info struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	NotFound     bool   `json:"erro"`
}

// Client queries the ViaCEP lookup service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client against baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Clean strips every non-digit character from a raw postal code input.
func Clean(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate reports whether the raw input cleans to exactly 8 digits.
func Validate(raw string) error {
	if raw == "" {
		return ErrEmpty
	}
	if len(Clean(raw)) != cepLength {
		return ErrInvalidLength
	}
	return nil
}

// Lookup resolves a postal code. The input is cleaned first; anything other
// than exactly 8 digits fails without a network call.
func (c *Client) Lookup(ctx context.Context, raw string) (*Info, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	code := Clean(raw)

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	// ViaCEP answers 200 with {"erro": true} for unknown codes.
	if info.NotFound {
		return nil, ErrNotFound
	}

	return &info, nil
}
