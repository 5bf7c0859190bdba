package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/InsYst3m/notification-telegram-bot/internal/domain/asset"
	"github.com/InsYst3m/notification-telegram-bot/internal/domain/subscriber"
	domainTelegram "github.com/InsYst3m/notification-telegram-bot/internal/domain/telegram"
	"github.com/sirupsen/logrus"
)

// NotificationService assembles and delivers the periodic price digests.
type NotificationService struct {
	assets         *AssetService
	messages       *MessageProvider
	client         domainTelegram.Client
	subscriberRepo subscriber.Repository
	logger         *logrus.Entry
	defaultChatID  int64
}

func NewNotificationService(
	assets *AssetService,
	messages *MessageProvider,
	client domainTelegram.Client,
	subscriberRepo subscriber.Repository,
	logger *logrus.Entry,
	defaultChatID int64,
) *NotificationService {
	return &NotificationService{
		assets:         assets,
		messages:       messages,
		client:         client,
		subscriberRepo: subscriberRepo,
		logger:         logger,
		defaultChatID:  defaultChatID,
	}
}

// SendPriceDigests executes one notification fan-out: it loads the opted-in
// subscribers, fetches the distinct union of their favourite assets in one
// batched call and sends each subscriber a digest of their own favourites.
// Sends run concurrently; one subscriber's failure never blocks the others.
func (s *NotificationService) SendPriceDigests(ctx context.Context) error {
	subscribers, err := s.subscriberRepo.ListNotifiable(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notifiable subscribers: %w", err)
	}

	ids := distinctFavourites(subscribers)
	if len(ids) == 0 {
		ids = s.assets.DefaultAssets()
	}

	found, err := s.assets.Assets(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch assets for digest: %w", err)
	}

	if len(subscribers) == 0 {
		// nobody registered yet: deliver the default digest to the fallback chat
		message := s.messages.AssetsPriceMessage(found)
		if err := s.client.SendMessage(s.defaultChatID, message, nil); err != nil {
			return fmt.Errorf("failed to send fallback digest to chat %d: %w", s.defaultChatID, err)
		}
		s.logger.WithField("chat_id", s.defaultChatID).Info("Fallback price digest sent")
		return nil
	}

	var sent, failed int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, sub := range subscribers {
		if len(sub.FavouriteAssets) == 0 {
			continue
		}
		wg.Add(1)
		go func(sub *subscriber.Subscriber) {
			defer wg.Done()
			target := filterAssets(found, sub.FavouriteAssets)
			message := s.messages.AssetsPriceMessage(target)
			if err := s.client.SendMessage(sub.ChatID, message, nil); err != nil {
				s.logger.WithError(err).WithField("chat_id", sub.ChatID).Error("Failed to send price digest")
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			sent++
			mu.Unlock()
		}(sub)
	}
	// joined for logging only: failed sends were already reported per chat
	wg.Wait()

	s.logger.WithFields(logrus.Fields{
		"subscribers": len(subscribers),
		"sent":        sent,
		"failed":      failed,
	}).Info("Price digest fan-out finished")
	return nil
}

// distinctFavourites collects the distinct union of favourite asset ids
// across subscribers, preserving first-seen order.
func distinctFavourites(subscribers []*subscriber.Subscriber) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, sub := range subscribers {
		for _, id := range sub.FavouriteAssets {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// filterAssets keeps the fetched assets matching the favourites list, in
// fetched order.
func filterAssets(assets []*asset.Asset, favourites []string) []*asset.Asset {
	wanted := make(map[string]struct{}, len(favourites))
	for _, id := range favourites {
		wanted[id] = struct{}{}
	}
	var out []*asset.Asset
	for _, a := range assets {
		if _, ok := wanted[a.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}
