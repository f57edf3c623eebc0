package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockPruner struct{ mock.Mock }

func (m *mockPruner) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewValidates(t *testing.T) {
	_, err := New("@daily", 0, &mockPruner{}, zap.NewNop())
	assert.Error(t, err)

	_, err = New("every tuesday", time.Hour, &mockPruner{}, zap.NewNop())
	assert.Error(t, err)

	j, err := New("0 3 * * *", time.Hour, &mockPruner{}, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, j.cron.Entries(), 1)
}

func TestRunLogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := &mockPruner{}
	p.On("Prune", mock.Anything, 90*24*time.Hour).Return(int64(3), nil).Once()
	p.On("Prune", mock.Anything, 90*24*time.Hour).Return(int64(0), errors.New("locked")).Once()

	j, err := New("@daily", 90*24*time.Hour, p, zap.New(core))
	require.NoError(t, err)

	j.run()
	j.run()

	p.AssertExpectations(t)
	assert.Equal(t, 1, logs.FilterMessage("pruned history").Len())
	assert.Equal(t, 1, logs.FilterMessage("prune history").Len())
}

func TestStartStop(t *testing.T) {
	j, err := New("@every 1h", time.Hour, &mockPruner{}, zap.NewNop())
	require.NoError(t, err)
	j.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	j.Stop(ctx)
}
