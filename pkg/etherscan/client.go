package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Client talks to an Etherscan compatible contract API
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for apiURL. An empty apiURL uses DefaultAPIURL.
func NewClient(apiURL, apiKey string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIURL returns the endpoint the client sends requests to
func (c *Client) APIURL() string {
	return c.apiURL
}

// GetContractCreation returns the creation records of the given contract.
// An empty slice means the explorer has no record for it.
func (c *Client) GetContractCreation(ctx context.Context, chainID uint64, address common.Address) ([]ContractCreation, error) {
	resp, err := c.get(ctx, chainID, url.Values{
		"module":            {"contract"},
		"action":            {"getcontractcreation"},
		"contractaddresses": {address.Hex()},
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		if resp.NoData() {
			return nil, nil
		}
		return nil, apiError(resp)
	}

	var creations []ContractCreation
	if err := json.Unmarshal(resp.Result, &creations); err != nil {
		return nil, fmt.Errorf("failed to decode contract creation result: %w", err)
	}
	return creations, nil
}

// GetSourceCode returns the verified source metadata of a contract, one item
// per compilation unit the explorer knows about.
func (c *Client) GetSourceCode(ctx context.Context, chainID uint64, address common.Address) ([]SourceCode, error) {
	resp, err := c.get(ctx, chainID, url.Values{
		"module":  {"contract"},
		"action":  {"getsourcecode"},
		"address": {address.Hex()},
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		if resp.NoData() {
			return nil, nil
		}
		return nil, apiError(resp)
	}

	var sources []SourceCode
	if err := json.Unmarshal(resp.Result, &sources); err != nil {
		return nil, fmt.Errorf("failed to decode source code result: %w", err)
	}
	return sources, nil
}

func (c *Client) get(ctx context.Context, chainID uint64, params url.Values) (*Response, error) {
	endpoint, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid explorer API URL %q: %w", c.apiURL, err)
	}

	query := endpoint.Query()
	for key, values := range params {
		query[key] = values
	}
	if chainID != 0 {
		query.Set("chainid", strconv.FormatUint(chainID, 10))
	}
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func apiError(resp *Response) error {
	if detail := resp.ResultString(); detail != "" {
		return fmt.Errorf("explorer API error: %s: %s", resp.Message, detail)
	}
	return fmt.Errorf("explorer API error: %s", resp.Message)
}
