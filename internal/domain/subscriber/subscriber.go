package subscriber

import (
	"time"
)

// Subscriber is a chat user known to the bot: whether they opted in to the
// periodic price notifications and which asset ids they marked as favourites.
type Subscriber struct {
	ID                         int64
	Name                       string
	ChatID                     int64
	NotifyAboutFavouriteAssets bool
	FavouriteAssets            []string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
