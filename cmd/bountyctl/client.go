package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/meatsuits/bountyboard/internal/bounty"
	"github.com/meatsuits/bountyboard/internal/rpc"
)

// RPCError is an error envelope returned by the endpoint.
type RPCError struct {
	Status  int
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("rpc error %d (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("rpc error %d (HTTP %d): %s: %s", e.Code, e.Status, e.Message, e.Data)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      string `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      json.RawMessage `json:"id"`
}

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/mcp",
		http:     &http.Client{Timeout: timeout},
	}
}

// Discover fetches the endpoint's self-description.
func (c *Client) Discover(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discovery document: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read discovery document: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery returned HTTP %d", resp.StatusCode)
	}
	return body, nil
}

// Call invokes method with params, which may be nil, and returns the raw
// result. An error envelope is returned as *RPCError.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := ulid.Make().String()
	payload, err := json.Marshal(request{JSONRPC: rpc.Version, Method: method, Params: params, ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response (HTTP %d): %w", method, resp.StatusCode, err)
	}
	if out.Error != nil {
		out.Error.Status = resp.StatusCode
		return nil, out.Error
	}
	var gotID string
	if err := json.Unmarshal(out.ID, &gotID); err != nil || gotID != id {
		return nil, fmt.Errorf("response id %s does not match request id %q", out.ID, id)
	}
	return out.Result, nil
}

func (c *Client) ListBounties(ctx context.Context, status string, limit, offset int) (*rpc.BountiesListResult, error) {
	params := map[string]any{}
	if status != "" {
		params["status"] = status
	}
	if limit > 0 {
		params["limit"] = limit
	}
	if offset > 0 {
		params["offset"] = offset
	}
	var res rpc.BountiesListResult
	if err := c.callInto(ctx, string(rpc.MethodBountiesList), params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetBounty(ctx context.Context, id string) (*bounty.Bounty, error) {
	var b bounty.Bounty
	if err := c.callInto(ctx, string(rpc.MethodBountiesGet), map[string]any{"id": id}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) AvailableWorkers(ctx context.Context, sector string) (*rpc.WorkersAvailableResult, error) {
	params := map[string]any{}
	if sector != "" {
		params["sector"] = sector
	}
	var res rpc.WorkersAvailableResult
	if err := c.callInto(ctx, string(rpc.MethodWorkersAvailable), params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) callInto(ctx context.Context, method string, params any, dst any) error {
	raw, err := c.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return nil
}
