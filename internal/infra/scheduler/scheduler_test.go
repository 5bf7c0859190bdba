package scheduler

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubSender) SendPriceDigests(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestStart_InvalidCronSpecFails(t *testing.T) {
	s := NewNotificationScheduler(&stubSender{}, newTestLogger(), "not a cron spec")

	require.Error(t, s.Start())
}

func TestFire_InvokesSenderAndPublishesTick(t *testing.T) {
	sender := &stubSender{}
	s := NewNotificationScheduler(sender, newTestLogger(), "@every 1h")

	require.NoError(t, s.Start())
	defer s.Stop()

	require.Zero(t, s.LastTick())

	s.fire()

	require.Equal(t, 1, sender.callCount())
	tick := s.LastTick()
	require.False(t, tick.NextFireTime.IsZero())
}

func TestFire_SenderFailureIsLoggedNotPropagated(t *testing.T) {
	sender := &stubSender{err: errors.New("fan-out failed")}
	s := NewNotificationScheduler(sender, newTestLogger(), "@every 1h")

	require.NoError(t, s.Start())
	defer s.Stop()

	require.NotPanics(t, s.fire)
	require.Equal(t, 1, sender.callCount())
}
