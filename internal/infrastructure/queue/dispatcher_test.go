package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

type collectingAuditService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func newCollectingAuditService(want int) *collectingAuditService {
	return &collectingAuditService{done: make(chan struct{}), want: want}
}

func (s *collectingAuditService) Process(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCollectingAuditService(10)
	d := NewDispatcher(3, sink, zerolog.Nop())
	d.Start(ctx)

	actors := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 10; i++ {
		d.Record(domain.AuditEvent{
			ActorID: actors[i%len(actors)],
			Action:  domain.AuditLoginSucceeded,
		})
	}

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		sink.mu.Lock()
		got := len(sink.events)
		sink.mu.Unlock()
		t.Fatalf("timed out, delivered %d of 10 events", got)
	}
}

func TestDispatcher_ShardIsStablePerActor(t *testing.T) {
	d := NewDispatcher(4, newCollectingAuditService(0), zerolog.Nop())

	for _, actor := range []string{"user-1", "user-2", ""} {
		first := d.shardIndex(actor)
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(actor); got != first {
				t.Fatalf("actor %q: shard changed from %d to %d", actor, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("actor %q: shard %d out of range", actor, first)
		}
	}
}

// A full shard drops the event instead of blocking the caller.
func TestDispatcher_RecordNeverBlocks(t *testing.T) {
	// No Start: workers never drain, so the buffer fills.
	d := NewDispatcher(1, newCollectingAuditService(0), zerolog.Nop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Record(domain.AuditEvent{ActorID: "a", Action: domain.AuditLoginFailed})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full queue")
	}
}
