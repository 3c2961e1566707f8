package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"eventhub/internal/entity"
)

// Error is a non-2xx response from the API. Message carries the
// body's "message" field when the API sent one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client talks to the remote ticketing API. All requests go through
// do, which attaches the bearer token.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    http.DefaultClient,
	}
}

type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        entity.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListEvents(ctx context.Context, token, name, categoryID string) ([]entity.Event, error) {
	path := "/events"
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if categoryID != "" {
		query.Set("categoryId", categoryID)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var events []entity.Event
	if err := c.do(ctx, http.MethodGet, path, token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, token, id string) (*entity.Event, error) {
	var event entity.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+id, token, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, input entity.EventInput) error {
	return c.do(ctx, http.MethodPost, "/events", token, input, nil)
}

func (c *Client) UpdateEvent(ctx context.Context, token, id string, input entity.EventInput) error {
	return c.do(ctx, http.MethodPatch, "/events/"+id, token, input, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, token, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]entity.Category, error) {
	var categories []entity.Category
	if err := c.do(ctx, http.MethodGet, "/categories", token, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateBooking(ctx context.Context, token, eventID string, numberOfTickets int) error {
	body := map[string]interface{}{
		"eventId":         eventID,
		"numberOfTickets": numberOfTickets,
	}
	return c.do(ctx, http.MethodPost, "/bookings", token, body, nil)
}

func (c *Client) MyBookings(ctx context.Context, token string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/my", token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) AllBookings(ctx context.Context, token string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CancelBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+id, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
