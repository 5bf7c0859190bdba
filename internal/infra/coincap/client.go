// Package coincap implements the asset.Provider interface over a CoinCap
// compatible HTTP API (GET /v2/assets, /v2/assets/{id}, /v2/assets?ids=...).
package coincap

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
	"time"

	"github.com/InsYst3m/notification-telegram-bot/internal/domain/asset"
	"github.com/shopspring/decimal"
)

// ErrMalformedResponse indicates the upstream reply lacked the expected
// {"data": ...} envelope or its payload could not be decoded.
var ErrMalformedResponse = errors.New("unable to parse coin api response")

// StatusError reports a non-success HTTP status from the upstream API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("coin api returned status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// assetPayload mirrors one asset object of the upstream envelope. The API is
// inconsistent about numeric fields: they may arrive as JSON numbers or as
// numeric strings, so every numeric field uses a tolerant decoder.
type assetPayload struct {
	ID            string          `json:"id"`
	Rank          flexInt         `json:"rank"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	PriceUsd      decimal.Decimal `json:"priceUsd"`
	VolumeUsd24Hr decimal.Decimal `json:"volumeUsd24Hr"`
	MarketCapUsd  decimal.Decimal `json:"marketCapUsd"`
}

func (p *assetPayload) toAsset() *asset.Asset {
	return &asset.Asset{
		ID:            p.ID,
		Rank:          int(p.Rank),
		Symbol:        p.Symbol,
		Name:          p.Name,
		PriceUsd:      p.PriceUsd,
		VolumeUsd24Hr: p.VolumeUsd24Hr,
		MarketCapUsd:  p.MarketCapUsd,
	}
}

// flexInt decodes an integer supplied as either a JSON number or a numeric
// string. A JSON null decodes to zero.
type flexInt int

func (v *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer value %q: %w", s, err)
	}
	*v = flexInt(n)
	return nil
}

// Get fetches a single asset by id.
func (c *Client) Get(ctx context.Context, id string) (*asset.Asset, error) {
	data, err := c.fetch(ctx, "/v2/assets/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if isJSONNull(data) {
		return nil, ErrMalformedResponse
	}
	var payload assetPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return payload.toAsset(), nil
}

// List fetches every asset the upstream API tracks. An empty or null data
// array yields an empty result, not an error.
func (c *Client) List(ctx context.Context) ([]*asset.Asset, error) {
	data, err := c.fetch(ctx, "/v2/assets")
	if err != nil {
		return nil, err
	}
	var payloads []assetPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	assets := make([]*asset.Asset, 0, len(payloads))
	for i := range payloads {
		assets = append(assets, payloads[i].toAsset())
	}
	return assets, nil
}

// GetByIDs fetches the given assets in one call using the ids query filter.
func (c *Client) GetByIDs(ctx context.Context, ids []string) ([]*asset.Asset, error) {
	query := url.Values{"ids": {strings.Join(ids, ",")}}
	data, err := c.fetch(ctx, "/v2/assets?"+query.Encode())
	if err != nil {
		return nil, err
	}
	if isJSONNull(data) {
		return nil, ErrMalformedResponse
	}
	var payloads []assetPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	assets := make([]*asset.Asset, 0, len(payloads))
	for i := range payloads {
		assets = append(assets, payloads[i].toAsset())
	}
	return assets, nil
}

// fetch performs the GET round-trip and returns the raw "data" field of the
// response envelope.
func (c *Client) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build coin api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call coin api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read coin api response: %w", err)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(envelope.Data) == 0 {
		return nil, ErrMalformedResponse
	}
	return envelope.Data, nil
}

func isJSONNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
