package telegram

import "gopkg.in/telebot.v3"

// Client is the outbound chat transport seam. Application services send
// through it instead of depending on the bot library directly.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
