package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	panic bool
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	if s.panic {
		panic("driver exploded")
	}

	return s.err
}

// slowChecker finishes after 100ms unless ctx ends first.
type slowChecker struct{ name string }

func (s *slowChecker) Name() string { return s.name }

func (s *slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry(0)

	require.NoError(t, registry.Register(&stubChecker{name: "database"}))
	require.NoError(t, registry.Register(&stubChecker{name: "cache"}))

	err := registry.Register(&stubChecker{name: "database"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "database")

	assert.Equal(t, []string{"database", "cache"}, registry.Names())
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []HealthChecker
		wantStatus HealthStatus
		wantChecks map[string]HealthStatus
		wantMsg    map[string]string
	}{
		{
			name:       "no checkers is healthy",
			wantStatus: HealthStatusHealthy,
			wantChecks: map[string]HealthStatus{},
		},
		{
			name:       "database reachable",
			checkers:   []HealthChecker{&stubChecker{name: "database"}},
			wantStatus: HealthStatusHealthy,
			wantChecks: map[string]HealthStatus{"database": HealthStatusHealthy},
		},
		{
			name: "one failure marks the whole result",
			checkers: []HealthChecker{
				&stubChecker{name: "database", err: errors.New("connection refused")},
				&stubChecker{name: "exporter"},
			},
			wantStatus: HealthStatusUnhealthy,
			wantChecks: map[string]HealthStatus{"database": HealthStatusUnhealthy, "exporter": HealthStatusHealthy},
			wantMsg:    map[string]string{"database": "connection refused"},
		},
		{
			name:       "panicking check is unhealthy",
			checkers:   []HealthChecker{&stubChecker{name: "database", panic: true}},
			wantStatus: HealthStatusUnhealthy,
			wantChecks: map[string]HealthStatus{"database": HealthStatusUnhealthy},
			wantMsg:    map[string]string{"database": "check panicked: driver exploded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry(time.Second)
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			require.Len(t, result.Checks, len(tt.wantChecks))

			for name, status := range tt.wantChecks {
				assert.Equal(t, status, result.Checks[name].Status, name)
				assert.Equal(t, tt.wantMsg[name], result.Checks[name].Message, name)
			}
		})
	}
}

func TestCheckAll_CancelledProbe(t *testing.T) {
	registry := NewHealthRegistry(0)
	require.NoError(t, registry.Register(&slowChecker{name: "database"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["database"].Message, "context canceled")
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	registry := NewHealthRegistry(10 * time.Millisecond)
	require.NoError(t, registry.Register(&slowChecker{name: "database"}))
	require.NoError(t, registry.Register(&stubChecker{name: "fast"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["database"].Message, "deadline exceeded")
	assert.Equal(t, HealthStatusHealthy, result.Checks["fast"].Status)
	assert.Less(t, result.Checks["database"].Duration, 100*time.Millisecond)
}
