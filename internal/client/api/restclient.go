package api

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

	"github.com/google/uuid"

	"github.com/arifsetiawan/womshop/internal/client/models"
	"github.com/arifsetiawan/womshop/internal/client/storage"
	"github.com/arifsetiawan/womshop/internal/logging"
)

// DefaultTimeout bounds every request; a request exceeding it fails with a
// network-kind error.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error payload is read.
const maxErrorBody = 64 << 10

// RESTClient talks JSON over HTTP to the storefront service. The bearer
// token is read from the TokenSource on every request; its absence is not
// an error, the request simply goes out unauthenticated.
type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  storage.TokenSource
	logger  logging.Logger
}

func NewRESTClient(baseURL string, timeout time.Duration, tokens storage.TokenSource, logger logging.Logger) *RESTClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RESTClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins"`
}

func (c *RESTClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body := loginRequest{Username: username, Password: password, ExpiresInMins: ExpiresInMins}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) FetchProducts(ctx context.Context, limit, skip int) (*ProductPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(skip))

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *RESTClient) FetchProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *RESTClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one request/response cycle and maps every failure to *Error.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return &Error{Kind: KindValidation, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	token, err := c.tokens.Token(ctx)
	if err != nil {
		// A broken local store must not block the request itself.
		c.logger.Error(ctx, "error reading stored token", "error", err, "request_id", requestID)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := &Error{
			Kind:    KindServer,
			Status:  resp.StatusCode,
			Message: readServerMessage(resp.Body),
		}
		if resp.StatusCode == http.StatusUnauthorized {
			// Token may be expired. Deliberately log-only: no automatic
			// logout or retry happens at this layer.
			c.logger.Warn(ctx, "unauthorized response, token may be expired",
				"method", method, "path", path, "request_id", requestID)
		}
		return serverErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// readServerMessage extracts the "message" field dummyjson-style services
// put in error payloads. Anything unparsable yields an empty message.
func readServerMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
