// Package client is the Go consumer of the inventory API: a thin HTTP client
// plus the local session store and navigation guards used by front-end
// shells. Authorization is attached from the session on every request; the
// server remains the only security boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// APIError is the decoded error envelope returned by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// User mirrors the profile payload (password hash never present).
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item mirrors the catalog resource payload.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Pagination mirrors the listing metadata block.
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// ItemPage is one page of the item listing.
type ItemPage struct {
	Data       []Item     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListItemsQuery carries the listing parameters; zero values are omitted and
// the server applies its defaults.
type ListItemsQuery struct {
	Page     int
	Limit    int
	Name     string
	Category string
}

// CreateItemInput is the payload for creating an item.
type CreateItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// UpdateItemInput is a partial update; nil fields are not sent.
type UpdateItemInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// Client talks to the inventory API and keeps the session current.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New builds a Client around the given token store. Call Session().Restore()
// at startup to pick up a persisted login.
func New(baseURL string, store TokenStore) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: NewSession(store),
	}
}

func (c *Client) Session() *Session { return c.session }

// Signup registers a new account and stores the issued token.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", credentials{Email: email, Password: password}, &resp); err != nil {
		return err
	}
	return c.session.SetToken(resp.Token)
}

// Login authenticates and stores the issued token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return err
	}
	return c.session.SetToken(resp.Token)
}

// Logout discards the session; the token itself stays valid server-side
// until it expires.
func (c *Client) Logout() error {
	return c.session.Logout()
}

// Profile fetches the server-verified user record.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListItems fetches one page of items.
func (c *Client) ListItems(ctx context.Context, q ListItemsQuery) (*ItemPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	path := "/item"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page ItemPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, "/item/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, input CreateItemInput) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, "/item", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, input UpdateItemInput) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPut, "/item/"+url.PathEscape(id), input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/item/"+url.PathEscape(id), nil, nil)
}

// do performs one request, attaching the bearer token when a session exists
// and decoding either the expected payload or the error envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
