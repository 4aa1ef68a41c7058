package backend

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

	"clientdesk/internal/models"
)

// Client wraps HTTP calls to the REST backend. Each method issues a single
// attempt; there is no retry or deduplication, and cancellation rides the
// caller's context.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Filter holds the search criteria for the filtered client listing. Zero
// values are omitted from the query string.
type Filter struct {
	Name  string
	Email string
	Phone string
}

// ReceiptFilter holds the search criteria for the receipt listing.
type ReceiptFilter struct {
	ClientName string
	From       string
	To         string
}

func (c *Client) GetClient(ctx context.Context, id int) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodGet, "/clientes/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchClients(ctx context.Context, f Filter) ([]models.Client, error) {
	q := url.Values{}
	if f.Name != "" {
		q.Set("nome", f.Name)
	}
	if f.Email != "" {
		q.Set("email", f.Email)
	}
	if f.Phone != "" {
		q.Set("celular", f.Phone)
	}
	path := "/clientes"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	out := []models.Client{}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateClient(ctx context.Context, id int, p models.ClientPayload) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPut, "/clientes/"+strconv.Itoa(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/clientes/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) RegisterClient(ctx context.Context, p models.ClientPayload) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPost, "/clientes", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReceipt(ctx context.Context, id int) (*models.Receipt, error) {
	var out models.Receipt
	if err := c.do(ctx, http.MethodGet, "/recibos/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchReceipts(ctx context.Context, f ReceiptFilter) ([]models.Receipt, error) {
	q := url.Values{}
	if f.ClientName != "" {
		q.Set("nome", f.ClientName)
	}
	if f.From != "" {
		q.Set("dataInicio", f.From)
	}
	if f.To != "" {
		q.Set("dataFim", f.To)
	}
	path := "/recibos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	out := []models.Receipt{}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterReceipt(ctx context.Context, p models.ReceiptPayload) (*models.Receipt, error) {
	var out models.Receipt
	if err := c.do(ctx, http.MethodPost, "/recibos", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// errorBody is the backend's error envelope. Only detail is surfaced.
type errorBody struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return &RequestError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &eb)
		return &APIError{Status: resp.StatusCode, Detail: eb.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
