package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const fireTimeout = 5 * time.Minute

// Tick is an immutable snapshot of the scheduler's most recent and next
// fire times, published for diagnostics.
type Tick struct {
	PreviousFireTime time.Time
	NextFireTime     time.Time
}

// DigestSender triggers one notification fan-out.
type DigestSender interface {
	SendPriceDigests(ctx context.Context) error
}

// NotificationScheduler fires the price digest fan-out on a cron schedule.
// The default spec "0 0,12 * * *" anchors fires to local noon and midnight,
// i.e. a 12-hour period. Cron runs every job on its own goroutine, so a slow
// fire never delays arming the next one.
type NotificationScheduler struct {
	cronEngine   *cron.Cron
	notifService DigestSender
	logger       *logrus.Entry
	cronSpec     string
	entryID      cron.EntryID
	lastTick     atomic.Value // Tick
}

func NewNotificationScheduler(notifService DigestSender, logger *logrus.Entry, cronSpec string) *NotificationScheduler {
	return &NotificationScheduler{
		cronEngine:   cron.New(cron.WithLocation(time.Local)),
		notifService: notifService,
		logger:       logger,
		cronSpec:     cronSpec,
	}
}

func (s *NotificationScheduler) Start() error {
	id, err := s.cronEngine.AddFunc(s.cronSpec, s.fire)
	if err != nil {
		return fmt.Errorf("failed to register notification cron job: %w", err)
	}
	s.entryID = id
	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Notification scheduler started")
	return nil
}

func (s *NotificationScheduler) fire() {
	entry := s.cronEngine.Entry(s.entryID)
	tick := Tick{PreviousFireTime: entry.Prev, NextFireTime: entry.Next}
	s.lastTick.Store(tick)
	s.logger.WithFields(logrus.Fields{
		"previous_fire": tick.PreviousFireTime,
		"next_fire":     tick.NextFireTime,
	}).Info("Notification fire triggered")

	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()
	if err := s.notifService.SendPriceDigests(ctx); err != nil {
		s.logger.WithError(err).Error("Notification fire failed")
	}
}

// LastTick reports the most recent fire diagnostics. The zero Tick means the
// scheduler has not fired yet.
func (s *NotificationScheduler) LastTick() Tick {
	if v := s.lastTick.Load(); v != nil {
		return v.(Tick)
	}
	return Tick{}
}

// Stop halts the cron engine and waits for running jobs to finish.
func (s *NotificationScheduler) Stop() {
	<-s.cronEngine.Stop().Done()
	s.logger.Info("Notification scheduler stopped")
}
