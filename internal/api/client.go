package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetview/fleetview/internal/model"
)

// TokenFunc returns the current bearer token, or "" when no session exists.
// It is consulted on every call, never cached.
type TokenFunc func() string

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTokenFunc sets the source of the bearer token attached to requests.
func WithTokenFunc(fn TokenFunc) Option {
	return func(c *Client) {
		c.token = fn
	}
}

// Client provides access to the registry REST API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      TokenFunc
}

// NewClient creates a Client bound to the provided base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session payload containing the token.
func (c *Client) Login(ctx context.Context, username, password string) (model.SessionPayload, error) {
	resp, err := c.postJSON(ctx, c.baseURL.JoinPath("auth", "login"), credentials{Username: username, Password: password})
	if err != nil {
		return model.SessionPayload{}, err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		drainBody(resp)
		return model.SessionPayload{}, &AuthenticationError{StatusCode: resp.StatusCode}
	}

	var payload model.SessionPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.SessionPayload{}, &DecodeError{Resource: "session", Err: err}
	}
	return payload, nil
}

// Register creates a new account and returns the server's confirmation text.
// It does not authenticate; callers log in separately.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := c.postJSON(ctx, c.baseURL.JoinPath("auth", "register"), credentials{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	defer closeBody(resp)

	body, readErr := io.ReadAll(resp.Body)
	if !is2xx(resp.StatusCode) {
		return "", &RegistrationError{StatusCode: resp.StatusCode}
	}
	if readErr != nil {
		return "", &DecodeError{Resource: "registration", Err: readErr}
	}
	return string(body), nil
}

// FetchOwners returns the full owners collection.
func (c *Client) FetchOwners(ctx context.Context) ([]model.Owner, error) {
	resp, err := c.get(ctx, c.baseURL.JoinPath("owners"))
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		drainBody(resp)
		return nil, &FetchError{Resource: "owners", StatusCode: resp.StatusCode}
	}

	var owners []model.Owner
	if err := json.NewDecoder(resp.Body).Decode(&owners); err != nil {
		return nil, &DecodeError{Resource: "owners", Err: err}
	}
	return owners, nil
}

// CreateOwner creates an owner record and returns it with its assigned id.
func (c *Client) CreateOwner(ctx context.Context, draft model.OwnerDraft) (model.Owner, error) {
	resp, err := c.postJSON(ctx, c.baseURL.JoinPath("owners"), draft)
	if err != nil {
		return model.Owner{}, err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		drainBody(resp)
		return model.Owner{}, &CreateError{Resource: "owner", StatusCode: resp.StatusCode}
	}

	var owner model.Owner
	if err := json.NewDecoder(resp.Body).Decode(&owner); err != nil {
		return model.Owner{}, &DecodeError{Resource: "owner", Err: err}
	}
	return owner, nil
}

// DeleteOwner deletes the owner with the given id.
func (c *Client) DeleteOwner(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, c.baseURL.JoinPath("owners", strconv.Itoa(id)), nil, "")
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		drainBody(resp)
		return &DeleteError{Resource: "owner", ID: id, StatusCode: resp.StatusCode}
	}
	drainBody(resp)
	return nil
}

// FetchCars returns the full cars collection.
func (c *Client) FetchCars(ctx context.Context) ([]model.Car, error) {
	resp, err := c.get(ctx, c.baseURL.JoinPath("cars"))
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		drainBody(resp)
		return nil, &FetchError{Resource: "cars", StatusCode: resp.StatusCode}
	}

	var cars []model.Car
	if err := json.NewDecoder(resp.Body).Decode(&cars); err != nil {
		return nil, &DecodeError{Resource: "cars", Err: err}
	}
	return cars, nil
}

// CreateCar creates a car record. On rejection the server's error text is
// preserved in the returned CreateError.
func (c *Client) CreateCar(ctx context.Context, draft model.CarDraft) (model.Car, error) {
	resp, err := c.postJSON(ctx, c.baseURL.JoinPath("cars"), draft)
	if err != nil {
		return model.Car{}, err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return model.Car{}, &CreateError{Resource: "car", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var car model.Car
	if err := json.NewDecoder(resp.Body).Decode(&car); err != nil {
		return model.Car{}, &DecodeError{Resource: "car", Err: err}
	}
	return car, nil
}

// UpdateCar replaces the car with the given id and returns the updated record.
func (c *Client) UpdateCar(ctx context.Context, id int, draft model.CarDraft) (model.Car, error) {
	body, err := encodeJSON(draft)
	if err != nil {
		return model.Car{}, err
	}

	resp, err := c.do(ctx, http.MethodPut, c.baseURL.JoinPath("cars", strconv.Itoa(id)), body, "application/json")
	if err != nil {
		return model.Car{}, err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		drainBody(resp)
		return model.Car{}, &UpdateError{Resource: "car", ID: id, StatusCode: resp.StatusCode}
	}

	var car model.Car
	if err := json.NewDecoder(resp.Body).Decode(&car); err != nil {
		return model.Car{}, &DecodeError{Resource: "car", Err: err}
	}
	return car, nil
}

// DeleteCar deletes the car with the given id. The server answers a bare
// boolean on success; only the status code matters here.
func (c *Client) DeleteCar(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, c.baseURL.JoinPath("cars", strconv.Itoa(id)), nil, "")
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if !is2xx(resp.StatusCode) {
		drainBody(resp)
		return &DeleteError{Resource: "car", ID: id, StatusCode: resp.StatusCode}
	}
	drainBody(resp)
	return nil
}

func (c *Client) get(ctx context.Context, u *url.URL) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, u, nil, "")
}

func (c *Client) postJSON(ctx context.Context, u *url.URL, v any) (*http.Response, error) {
	body, err := encodeJSON(v)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, u, body, "application/json")
}

// do issues a single request. Requests are never retried and never time out
// on their own; cancellation is the caller's context's business.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	return c.httpClient.Do(req)
}

func encodeJSON(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("api: encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

func closeBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
}

func drainBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
}
