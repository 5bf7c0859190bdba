package asset

import (
	"context"

	"github.com/shopspring/decimal"
)

// Asset is an immutable snapshot of a cryptocurrency as reported by the
// upstream price API. Identifiers are the lowercase-kebab ids the API uses
// (e.g. "bitcoin", "near-protocol"). Monetary values are exact decimals so
// that displayed prices never suffer floating-point rounding drift.
type Asset struct {
	ID            string
	Rank          int
	Symbol        string
	Name          string
	PriceUsd      decimal.Decimal
	VolumeUsd24Hr decimal.Decimal
	MarketCapUsd  decimal.Decimal
}

// Provider resolves asset identifiers to current price data. Implementations
// must be safe for concurrent use; every call is an independent round-trip.
type Provider interface {
	// Get fetches a single asset by its identifier.
	Get(ctx context.Context, id string) (*Asset, error)
	// List fetches every asset the upstream API currently tracks.
	List(ctx context.Context) ([]*Asset, error)
	// GetByIDs fetches the given assets in one batched call.
	GetByIDs(ctx context.Context, ids []string) ([]*Asset, error)
}
