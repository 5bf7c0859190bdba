package telegram

import (
	"context"

	"github.com/InsYst3m/notification-telegram-bot/internal/app"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterHandlers wires inbound updates to the command dispatcher. Text
// messages are parsed as commands; every other update type gets the
// unrecognized-command reply. Handler errors propagate to the bot's global
// OnError handler, which logs them without stopping the poller.
func RegisterHandlers(ctx context.Context, b *telebot.Bot, dispatcher *app.Dispatcher, baseLogger *logrus.Entry) {
	handlerLogger := baseLogger.WithField("handler_group", "commands")

	b.Handle(telebot.OnText, func(c telebot.Context) error {
		handlerLogger.WithFields(logrus.Fields{
			"chat_id": c.Chat().ID,
			"text":    c.Text(),
		}).Debug("Text message received")
		return dispatcher.Dispatch(ctx, c.Chat().ID, c.Text())
	})

	nonText := []string{
		telebot.OnPhoto,
		telebot.OnAudio,
		telebot.OnDocument,
		telebot.OnSticker,
		telebot.OnVideo,
		telebot.OnVoice,
		telebot.OnLocation,
		telebot.OnContact,
	}
	for _, endpoint := range nonText {
		b.Handle(endpoint, func(c telebot.Context) error {
			handlerLogger.WithField("chat_id", c.Chat().ID).Debug("Non-text update received")
			return dispatcher.Dispatch(ctx, c.Chat().ID, "")
		})
	}
}
