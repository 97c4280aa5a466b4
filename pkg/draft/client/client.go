// Package client is the HTTP implementation of draft.PlanAPI, talking to
// the plan endpoints with the session cookie attached.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vibetravel/entities"
	"vibetravel/pkg/apperr"
	"vibetravel/pkg/draft"
	"vibetravel/pkg/middleware"
	"vibetravel/pkg/plan/types"
)

type Client struct {
	base  string
	token string
	httpc *http.Client
}

func New(base, sessionToken string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: sessionToken,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

var _ draft.PlanAPI = (*Client)(nil)

func (c *Client) GetActive(ctx context.Context, noteID uint) (*entities.Plan, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notes/%d/plan", noteID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var p entities.Plan
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Generate(ctx context.Context, noteID uint) (*types.GenerateOut, error) {
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/notes/%d/plan/generate", noteID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}
	var out types.GenerateOut
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrAccept(ctx context.Context, noteID uint, in types.CreateOrAcceptIn) (*entities.Plan, error) {
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/notes/%d/plan", noteID), in)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}
	var p entities.Plan
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Update(ctx context.Context, noteID uint, in types.UpdateIn) (*entities.Plan, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/%d/plan", noteID), in)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var p entities.Plan
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: c.token})
	return c.httpc.Do(req)
}

// decodeError turns a non-2xx response into the same apperr the server
// raised, so the draft controller can branch on codes.
func decodeError(resp *http.Response) error {
	var ae apperr.Error
	if err := json.NewDecoder(resp.Body).Decode(&ae); err != nil || ae.Code == "" {
		return &apperr.Error{
			Code:    apperr.CodeInternal,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected response %d", resp.StatusCode),
		}
	}
	ae.Status = resp.StatusCode
	return &ae
}
