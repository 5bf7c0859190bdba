package app

import (
	"context"
	"fmt"

	"github.com/InsYst3m/notification-telegram-bot/internal/domain/asset"
	"github.com/InsYst3m/notification-telegram-bot/internal/domain/subscriber"
	idb "github.com/InsYst3m/notification-telegram-bot/internal/infra/database"
)

// AssetService provides asset lookups for commands and notifications. It
// combines the upstream price provider with the per-subscriber favourites
// stored in the database, falling back to a configured default list.
type AssetService struct {
	provider       asset.Provider
	subscriberRepo subscriber.Repository
	defaultAssets  []string
}

func NewAssetService(provider asset.Provider, subscriberRepo subscriber.Repository, defaultAssets []string) *AssetService {
	return &AssetService{
		provider:       provider,
		subscriberRepo: subscriberRepo,
		defaultAssets:  defaultAssets,
	}
}

// Asset fetches one asset by id from the upstream API.
func (s *AssetService) Asset(ctx context.Context, id string) (*asset.Asset, error) {
	return s.provider.Get(ctx, id)
}

// AvailableAssets returns the identifiers of every asset the upstream API
// currently tracks.
func (s *AssetService) AvailableAssets(ctx context.Context) ([]string, error) {
	assets, err := s.provider.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

// Assets fetches the given asset ids in one batched upstream call.
func (s *AssetService) Assets(ctx context.Context, ids []string) ([]*asset.Asset, error) {
	return s.provider.GetByIDs(ctx, ids)
}

// FavouriteAssets returns the favourite asset ids recorded for the chat. An
// unknown chat or an empty stored list yields the configured default assets.
func (s *AssetService) FavouriteAssets(ctx context.Context, chatID int64) ([]string, error) {
	sub, err := s.subscriberRepo.GetByChatID(ctx, chatID)
	if err != nil {
		if err == idb.ErrSubscriberNotFound {
			return s.defaultAssets, nil
		}
		return nil, fmt.Errorf("failed to load subscriber for chat %d: %w", chatID, err)
	}
	if len(sub.FavouriteAssets) == 0 {
		return s.defaultAssets, nil
	}
	return sub.FavouriteAssets, nil
}

// DefaultAssets returns the configured fallback asset list.
func (s *AssetService) DefaultAssets() []string {
	return s.defaultAssets
}
