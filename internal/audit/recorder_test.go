package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shoplite/internal/database"
	"shoplite/internal/store"

	"github.com/stretchr/testify/require"
)

func restore() {
	recordLoginEvent = store.RecordLoginEvent
}

func TestRecorderWritesEvents(t *testing.T) {
	t.Cleanup(restore)

	var mu sync.Mutex
	var got []Event
	recordLoginEvent = func(_ context.Context, _ database.DB, email string, ok bool) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, Event{Email: email, Succeeded: ok})
		return nil
	}

	r := NewRecorder(&database.FakeDB{}, 2, 8)
	require.True(t, r.Record(Event{Email: "a@x.com", Succeeded: true}))
	require.True(t, r.Record(Event{Email: "b@x.com", Succeeded: false}))
	r.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
}

func TestRecorderDropsWhenFull(t *testing.T) {
	t.Cleanup(restore)

	release := make(chan struct{})
	recordLoginEvent = func(context.Context, database.DB, string, bool) error {
		<-release
		return nil
	}

	// 單一 worker、容量 1：一筆在手、一筆在佇列，第三筆必丟
	r := NewRecorder(&database.FakeDB{}, 1, 1)
	require.True(t, r.Record(Event{Email: "1"}))

	dropped := false
	for i := 0; i < 10; i++ {
		if !r.Record(Event{Email: "n"}) {
			dropped = true
			break
		}
	}
	require.True(t, dropped)

	close(release)
	r.Close()
}

func TestRecorderWriteErrorLogged(t *testing.T) {
	t.Cleanup(restore)
	recordLoginEvent = func(context.Context, database.DB, string, bool) error {
		return errors.New("insert failed")
	}
	r := NewRecorder(&database.FakeDB{}, 1, 1)
	require.True(t, r.Record(Event{Email: "x"}))
	r.Close()
}

func TestRecorderDefaults(t *testing.T) {
	t.Cleanup(restore)
	recordLoginEvent = func(context.Context, database.DB, string, bool) error { return nil }
	r := NewRecorder(&database.FakeDB{}, 0, 0)
	require.True(t, r.Record(Event{Email: "x"}))
	r.Close()
	// Close 再呼叫一次應為安全 no-op
	r.Close()
}
