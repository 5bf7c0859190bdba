package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/InsYst3m/notification-telegram-bot/internal/domain/subscriber"
	"github.com/lib/pq"
)

// Custom errors
var ErrSubscriberNotFound = fmt.Errorf("subscriber not found")
var ErrDuplicateChatID = fmt.Errorf("subscriber with this chat ID already exists")

type PostgresSubscriberRepository struct {
	db *sql.DB
}

func NewPostgresSubscriberRepository(db *sql.DB) *PostgresSubscriberRepository {
	return &PostgresSubscriberRepository{db: db}
}

func (r *PostgresSubscriberRepository) Create(ctx context.Context, s *subscriber.Subscriber) error {
	query := `INSERT INTO subscribers (name, chat_id, notify_about_favourite_assets, favourite_assets)
               VALUES ($1, $2, $3, $4)
               RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		s.Name, s.ChatID, s.NotifyAboutFavouriteAssets, pq.Array(s.FavouriteAssets),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") && strings.Contains(err.Error(), "subscribers_chat_id_key") {
			return ErrDuplicateChatID
		}
		return fmt.Errorf("error creating subscriber: %w", err)
	}
	return nil
}

func (r *PostgresSubscriberRepository) GetByChatID(ctx context.Context, chatID int64) (*subscriber.Subscriber, error) {
	query := `SELECT id, name, chat_id, notify_about_favourite_assets, favourite_assets, created_at, updated_at
               FROM subscribers WHERE chat_id = $1`
	s := &subscriber.Subscriber{}
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(
		&s.ID, &s.Name, &s.ChatID, &s.NotifyAboutFavouriteAssets,
		pq.Array(&s.FavouriteAssets), &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("error getting subscriber by chat ID: %w", err)
	}
	return s, nil
}

// ListNotifiable returns subscribers that opted in to price notifications.
func (r *PostgresSubscriberRepository) ListNotifiable(ctx context.Context) ([]*subscriber.Subscriber, error) {
	query := `SELECT id, name, chat_id, notify_about_favourite_assets, favourite_assets, created_at, updated_at
               FROM subscribers WHERE notify_about_favourite_assets = TRUE ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing notifiable subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*subscriber.Subscriber
	for rows.Next() {
		s := &subscriber.Subscriber{}
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ChatID, &s.NotifyAboutFavouriteAssets,
			pq.Array(&s.FavouriteAssets), &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning subscriber row: %w", err)
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriber rows: %w", err)
	}
	return subscribers, nil
}

func (r *PostgresSubscriberRepository) UpdateFavourites(ctx context.Context, chatID int64, favourites []string) error {
	query := `UPDATE subscribers SET favourite_assets = $2, updated_at = NOW() WHERE chat_id = $1`

	result, err := r.db.ExecContext(ctx, query, chatID, pq.Array(favourites))
	if err != nil {
		return fmt.Errorf("error updating subscriber favourites: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking update result: %w", err)
	}
	if affected == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}
