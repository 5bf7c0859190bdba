package app

import (
	"context"
	"fmt"
	"strings"

	domainTelegram "github.com/InsYst3m/notification-telegram-bot/internal/domain/telegram"
	"github.com/sirupsen/logrus"
)

// User-facing replies for the failure paths. Command execution failures are
// always converted into one of these, never surfaced as a crash.
const (
	msgUnableToParseCommand      = "Unable to parse command."
	msgUnableToGetAssets         = "Unable to get available assets."
	msgUnableToGetFavourites     = "Unable to get favourite assets."
	msgUnableToFoundAssetPattern = "Unable to found asset: '%s'."
)

// Dispatcher routes one inbound chat message: it resolves the text to a
// Command, executes it and sends exactly one reply through the telegram
// client. Only outbound transport errors escape to the caller; the bot's
// global error handler logs those without stopping the receive loop.
type Dispatcher struct {
	assets   *AssetService
	messages *MessageProvider
	client   domainTelegram.Client
	logger   *logrus.Entry
}

func NewDispatcher(
	assets *AssetService,
	messages *MessageProvider,
	client domainTelegram.Client,
	logger *logrus.Entry,
) *Dispatcher {
	return &Dispatcher{
		assets:   assets,
		messages: messages,
		client:   client,
		logger:   logger,
	}
}

// Dispatch handles one inbound text message for the given chat.
func (d *Dispatcher) Dispatch(ctx context.Context, chatID int64, text string) error {
	cmd := Resolve(text)
	logCtx := d.logger.WithFields(logrus.Fields{
		"chat_id":      chatID,
		"command_kind": cmd.Kind,
	})
	logCtx.Info("Dispatching command")

	message := d.executeCommand(ctx, logCtx, chatID, cmd)
	if err := d.client.SendMessage(chatID, message, nil); err != nil {
		return fmt.Errorf("failed to send reply to chat %d: %w", chatID, err)
	}
	return nil
}

// executeCommand runs the command and returns the single reply text. Every
// kind produces exactly one message; lookup failures render as user-facing
// failure text.
func (d *Dispatcher) executeCommand(ctx context.Context, logCtx *logrus.Entry, chatID int64, cmd Command) string {
	switch cmd.Kind {
	case KindShowAsset:
		found, err := d.assets.Asset(ctx, cmd.AssetID)
		if err != nil {
			logCtx.WithError(err).WithField("asset_id", cmd.AssetID).Warn("Asset lookup failed")
			return fmt.Sprintf(msgUnableToFoundAssetPattern, cmd.AssetID)
		}
		return d.messages.AssetMessage(found)

	case KindListAssets:
		ids, err := d.assets.AvailableAssets(ctx)
		if err != nil {
			// an upstream failure and a truly empty listing render the same reply
			logCtx.WithError(err).Warn("Available assets lookup failed")
		}
		if len(ids) == 0 {
			return msgUnableToGetAssets
		}
		return strings.Join(ids, ", ")

	case KindFavouriteAssets:
		favourites, err := d.assets.FavouriteAssets(ctx, chatID)
		if err != nil {
			logCtx.WithError(err).Warn("Favourite assets lookup failed")
			return msgUnableToGetFavourites
		}
		if len(favourites) == 0 {
			return msgUnableToGetFavourites
		}
		found, err := d.assets.Assets(ctx, favourites)
		if err != nil {
			logCtx.WithError(err).Warn("Favourite assets price fetch failed")
			return msgUnableToGetFavourites
		}
		return d.messages.AssetsPriceMessage(found)

	default:
		return msgUnableToParseCommand
	}
}
