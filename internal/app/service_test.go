package app

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	alice     = domain.Identity{Username: "alice"}
	bob       = domain.Identity{Username: "bob"}
	anonymous = domain.Identity{}
)

type recordedWrite struct {
	entity, operation string
	failed            bool
}

// fakeRecorder captures recorder calls.
type fakeRecorder struct {
	mu     sync.Mutex
	writes []recordedWrite
	rows   []int
}

func (r *fakeRecorder) WriteCompleted(entity, operation string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes = append(r.writes, recordedWrite{entity: entity, operation: operation, failed: err != nil})
}

func (r *fakeRecorder) ExportCompleted(rows int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, rows)
}
