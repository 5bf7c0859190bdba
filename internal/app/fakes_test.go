package app

import (
	"context"
	"io"
	"sync"

	"github.com/InsYst3m/notification-telegram-bot/internal/domain/asset"
	"github.com/InsYst3m/notification-telegram-bot/internal/domain/subscriber"
	idb "github.com/InsYst3m/notification-telegram-bot/internal/infra/database"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

type fakeProvider struct {
	getFn      func(ctx context.Context, id string) (*asset.Asset, error)
	listFn     func(ctx context.Context) ([]*asset.Asset, error)
	getByIDsFn func(ctx context.Context, ids []string) ([]*asset.Asset, error)
}

func (f *fakeProvider) Get(ctx context.Context, id string) (*asset.Asset, error) {
	return f.getFn(ctx, id)
}

func (f *fakeProvider) List(ctx context.Context) ([]*asset.Asset, error) {
	return f.listFn(ctx)
}

func (f *fakeProvider) GetByIDs(ctx context.Context, ids []string) ([]*asset.Asset, error) {
	return f.getByIDsFn(ctx, ids)
}

type fakeSubscriberRepo struct {
	byChat     map[int64]*subscriber.Subscriber
	notifiable []*subscriber.Subscriber
	listErr    error
}

func (f *fakeSubscriberRepo) Create(context.Context, *subscriber.Subscriber) error {
	return nil
}

func (f *fakeSubscriberRepo) GetByChatID(_ context.Context, chatID int64) (*subscriber.Subscriber, error) {
	if s, ok := f.byChat[chatID]; ok {
		return s, nil
	}
	return nil, idb.ErrSubscriberNotFound
}

func (f *fakeSubscriberRepo) ListNotifiable(context.Context) ([]*subscriber.Subscriber, error) {
	return f.notifiable, f.listErr
}

func (f *fakeSubscriberRepo) UpdateFavourites(context.Context, int64, []string) error {
	return nil
}

type sentMessage struct {
	chatID int64
	text   string
}

// recordingClient captures outbound sends and can simulate transport
// failures for selected chats. Safe for concurrent use.
type recordingClient struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[int64]error
}

func (c *recordingClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.failFor[chatID]; ok {
		return err
	}
	c.sent = append(c.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (c *recordingClient) messages() []sentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sentMessage, len(c.sent))
	copy(out, c.sent)
	return out
}

func (c *recordingClient) textFor(chatID int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.sent {
		if m.chatID == chatID {
			return m.text, true
		}
	}
	return "", false
}

func newTestLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func testAsset(id, name, price string) *asset.Asset {
	return &asset.Asset{
		ID:            id,
		Rank:          1,
		Name:          name,
		PriceUsd:      decimal.RequireFromString(price),
		VolumeUsd24Hr: decimal.RequireFromString(price),
		MarketCapUsd:  decimal.RequireFromString(price),
	}
}
