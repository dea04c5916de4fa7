package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// HTTPClient calls the gateway's public login API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type registerResponse struct {
	IsSuccessfulRegistration bool     `json:"isSuccessfulRegistration"`
	Errors                   []string `json:"errors"`
	Error                    string   `json:"error"`
}

// Register creates a local account. Validation failures are returned as
// messages with a nil error; transport and server failures as an error.
func (c *HTTPClient) Register(ctx context.Context, email, password, confirm string) ([]string, error) {
	body, err := json.Marshal(registerRequest{Email: email, Password: password, ConfirmPassword: confirm})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/register", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var out registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	switch {
	case resp.StatusCode == http.StatusCreated && out.IsSuccessfulRegistration:
		return nil, nil
	case resp.StatusCode == http.StatusBadRequest && len(out.Errors) > 0:
		return out.Errors, nil
	case resp.StatusCode == http.StatusServiceUnavailable:
		return nil, ErrUnavailable
	default:
		return nil, fmt.Errorf("register failed: status %d: %s", resp.StatusCode, out.Error)
	}
}
