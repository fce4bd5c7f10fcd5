package lookup

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ipmark/ipmark/internal/ipinfo"
)

// EventKind discriminates task notifications.
type EventKind int

const (
	// EventProgress carries a human-readable status message.
	EventProgress EventKind = iota

	// EventCompleted is the task's single terminal notification, carrying
	// either a record or an error together with the original intent.
	EventCompleted
)

// Event is a notification emitted by a running task. Events for one task are
// delivered in emission order; a stopped task emits nothing further.
type Event struct {
	TaskID  uuid.UUID
	Kind    EventKind
	Message string
	Record  *ipinfo.Record
	Err     error
	Intent  Intent
}

// Fetcher is the one call a task needs from the API client.
type Fetcher interface {
	Fetch(ctx context.Context, addr string) (*ipinfo.Record, error)
}

// Task performs one background fetch for an address, tagged with an intent.
// Cancellation is cooperative: Stop sets a flag that is checked before any
// event is emitted, and cancels the in-flight request.
type Task struct {
	id      uuid.UUID
	addr    string
	intent  Intent
	fetcher Fetcher
	events  chan<- Event

	stopped atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewTask builds a task that will report on the given events channel.
func NewTask(addr string, intent Intent, fetcher Fetcher, events chan<- Event) *Task {
	return &Task{
		id:      uuid.New(),
		addr:    addr,
		intent:  intent,
		fetcher: fetcher,
		events:  events,
		done:    make(chan struct{}),
	}
}

func (t *Task) ID() uuid.UUID { return t.id }

func (t *Task) Addr() string { return t.addr }

// Done is closed when the task goroutine has wound down, whether it
// completed or was stopped.
func (t *Task) Done() <-chan struct{} { return t.done }

// Start launches the task goroutine. Call at most once.
func (t *Task) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	go t.run(ctx)
}

// Stop requests cooperative cancellation. A stopped task delivers no further
// events; in particular its terminal result is suppressed entirely.
func (t *Task) Stop() {
	t.stopped.Store(true)
	if t.cancel != nil {
		t.cancel()
	}
}

func (t *Task) run(ctx context.Context) {
	defer close(t.done)
	defer t.cancel()

	if t.stopped.Load() {
		return
	}

	t.emit(ctx, Event{
		Kind:    EventProgress,
		Message: fmt.Sprintf("Fetching information for %s...", t.addr),
	})

	rec, err := t.fetcher.Fetch(ctx, t.addr)

	if t.stopped.Load() {
		return
	}

	t.emit(ctx, Event{
		Kind:   EventCompleted,
		Record: rec,
		Err:    err,
	})
}

func (t *Task) emit(ctx context.Context, ev Event) {
	ev.TaskID = t.id
	ev.Intent = t.intent
	select {
	case t.events <- ev:
	case <-ctx.Done():
	}
}
