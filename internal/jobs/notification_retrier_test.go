package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRetrier struct {
	mock.Mock
}

func (m *mockRetrier) RetryPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotificationRetrier_RunOnce(t *testing.T) {
	m := new(mockRetrier)
	m.On("RetryPending", mock.Anything).Return(2, nil).Once()
	m.On("RetryPending", mock.Anything).Return(0, assert.AnError).Once()

	r := NewNotificationRetrier(m, time.UTC, time.Minute, quietLogger())
	r.RunOnce()
	r.RunOnce()

	m.AssertNumberOfCalls(t, "RetryPending", 2)
}

func TestNotificationRetrier_StartRunsImmediately(t *testing.T) {
	m := new(mockRetrier)
	called := make(chan struct{}, 1)
	m.On("RetryPending", mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
		select {
		case called <- struct{}{}:
		default:
		}
	})

	r := NewNotificationRetrier(m, nil, time.Hour, quietLogger())
	require.NoError(t, r.Start())
	defer r.Stop()

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("retrier did not run after start")
	}
}

func TestNotificationRetrier_RejectsZeroInterval(t *testing.T) {
	r := NewNotificationRetrier(new(mockRetrier), time.UTC, 0, quietLogger())
	assert.Error(t, r.Start())
}
