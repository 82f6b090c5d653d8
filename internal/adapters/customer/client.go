// Package customer adapts the customer directory HTTP API to the CustomerGateway port.
package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	"github.com/SscSPs/accounts_movements_service/internal/core/ports/gateways"
	"github.com/SscSPs/accounts_movements_service/internal/middleware"
)

// maxErrorBody caps how much of an unexpected response body is kept for logging.
const maxErrorBody = 512

// customerResponse is the directory's customer representation. Unknown fields are ignored.
type customerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Client talks to the customer directory over HTTP.
//
// Endpoints:
//
//	GET {base}/customers/{id}        single customer, 404 when unknown
//	GET {base}/customers?ids=1,2,3   known customers among ids, as a JSON array
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a directory client. timeout bounds every call, including body reads.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

var _ gateways.CustomerGateway = (*Client)(nil)

// GetCustomer fetches a single customer.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	endpoint := fmt.Sprintf("%s/customers/%d", c.baseURL, id)

	var body customerResponse
	status, err := c.getJSON(ctx, endpoint, &body)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("customer %d: %w", id, apperrors.ErrCustomerNotFound)
	}

	return &domain.Customer{ID: body.ID, Name: body.Name}, nil
}

// GetCustomers fetches every known customer among ids. A 404 answer is treated as no matches.
func (c *Client) GetCustomers(ctx context.Context, ids []int64) ([]domain.Customer, error) {
	if len(ids) == 0 {
		return []domain.Customer{}, nil
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	query := url.Values{}
	query.Set("ids", strings.Join(parts, ","))
	endpoint := c.baseURL + "/customers?" + query.Encode()

	var body []customerResponse
	status, err := c.getJSON(ctx, endpoint, &body)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return []domain.Customer{}, nil
	}

	customers := make([]domain.Customer, 0, len(body))
	for _, r := range body {
		customers = append(customers, domain.Customer{ID: r.ID, Name: r.Name})
	}
	return customers, nil
}

// getJSON performs a GET and decodes a 200 answer into out. A 404 is returned
// as a status without error; everything else is ErrUpstreamUnavailable.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: creating request: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := middleware.RequestIDFromCtx(ctx); requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Customer directory request failed",
			slog.String("url", endpoint),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	logger.Debug("Customer directory responded",
		slog.String("url", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return resp.StatusCode, nil
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Error("Unexpected customer directory response",
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)))
		return resp.StatusCode, fmt.Errorf("%w: customer directory returned status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decoding customer directory response: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return resp.StatusCode, nil
}
