package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"staffdeck/internal/model"
)

// Client is the typed REST client for the employee directory. All calls are
// context aware so the coordinator can cancel in-flight work.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		base: baseURL,
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

type usersEnvelope struct {
	Users []model.User `json:"users"`
}

type userEnvelope struct {
	User model.User `json:"user"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

func (c *Client) List(ctx context.Context) ([]model.User, error) {
	var env usersEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (c *Client) Get(ctx context.Context, id string) (*model.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *Client) Create(ctx context.Context, u model.User) (*model.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/users", u, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// Update sends a partial patch; only the named fields change server side.
func (c *Client) Update(ctx context.Context, id string, patch map[string]any) (*model.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+id, patch, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *Client) Delete(ctx context.Context, id string) (*model.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return newError(KindTransport, fmt.Sprintf("encode request: %v", err))
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return newError(KindTransport, err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return newError(KindTransport, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return classify(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return newError(KindTransport, fmt.Sprintf("decode response: %v", err))
		}
	}
	return nil
}

// classify turns an error response into a store.Error, preferring the
// server's message body when it has one.
func classify(resp *http.Response) error {
	var env messageEnvelope
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&env)
	msg := env.Message
	if msg == "" {
		msg = resp.Status
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return newError(KindNotFound, msg)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return newError(KindValidation, msg)
	default:
		return newError(KindTransport, msg)
	}
}
