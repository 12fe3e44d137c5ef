package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-console/internal/core/domain"
)

type recordingAuditService struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *recordingAuditService) Process(_ context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingAuditService) snapshot() []domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditEntry(nil), s.entries...)
}

func TestDispatcher_PreservesPerEntityOrder(t *testing.T) {
	svc := &recordingAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{domain.AuditCreated, domain.AuditUpdated, domain.AuditUpdated, domain.AuditDeleted}
	for i, action := range actions {
		d.Record(domain.AuditEntry{
			Actor:    1,
			Action:   action,
			Entity:   domain.EntityAddress,
			EntityID: 42,
			At:       time.Unix(int64(i), 0),
		})
	}

	deadline := time.After(2 * time.Second)
	for {
		if len(svc.snapshot()) == len(actions) {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for entries, got %d", len(svc.snapshot()))
		case <-time.After(10 * time.Millisecond):
		}
	}

	got := svc.snapshot()
	for i, action := range actions {
		if got[i].Action != action {
			t.Fatalf("entry %d out of order: got %q want %q", i, got[i].Action, action)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingAuditService{}, zerolog.Nop())

	a := d.shardIndex("user:7")
	for i := 0; i < 100; i++ {
		if d.shardIndex("user:7") != a {
			t.Fatalf("shard index not deterministic")
		}
	}
}
