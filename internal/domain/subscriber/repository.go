package subscriber

import (
	"context"
)

// Repository defines the operations for persisting and retrieving Subscriber
// entities. The bot reads subscribers; favourites mutation exists at the
// repository level only, no chat command is wired to it yet.
type Repository interface {
	Create(ctx context.Context, sub *Subscriber) error
	GetByChatID(ctx context.Context, chatID int64) (*Subscriber, error)
	// ListNotifiable returns every subscriber that opted in to price
	// notifications, favourites included.
	ListNotifiable(ctx context.Context) ([]*Subscriber, error)
	UpdateFavourites(ctx context.Context, chatID int64, favourites []string) error
}
