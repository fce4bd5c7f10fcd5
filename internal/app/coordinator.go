package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ipmark/ipmark/internal/bookmarks"
	"github.com/ipmark/ipmark/internal/common"
	"github.com/ipmark/ipmark/internal/config"
	"github.com/ipmark/ipmark/internal/ipinfo"
	"github.com/ipmark/ipmark/internal/logging"
	"github.com/ipmark/ipmark/internal/lookup"
	"github.com/ipmark/ipmark/internal/validate"
)

// Coordinator owns at most one in-flight lookup task and routes its result
// to either the current display or a specific bookmark, depending on the
// intent the task was dispatched with.
//
// All methods must be called from a single goroutine (the UI-owning loop);
// background tasks talk back only through the Events channel.
type Coordinator struct {
	log     logging.Logger
	ui      UI
	store   *bookmarks.Store
	fetcher lookup.Fetcher

	events  chan lookup.Event
	current *lookup.Task
	display *ipinfo.Record
	edit    *EditSession

	replaceWait  time.Duration
	shutdownWait time.Duration
}

func NewCoordinator(log logging.Logger, ui UI, store *bookmarks.Store, fetcher lookup.Fetcher, cfg *config.Config) *Coordinator {
	c := &Coordinator{
		log:          log,
		ui:           ui,
		store:        store,
		fetcher:      fetcher,
		events:       make(chan lookup.Event, 8),
		replaceWait:  cfg.TaskReplaceWait,
		shutdownWait: cfg.ShutdownWait,
	}
	c.edit = NewEditSession(store, c)
	return c
}

// Events is the channel the UI loop must drain and feed into HandleEvent.
func (c *Coordinator) Events() <-chan lookup.Event { return c.events }

// Display returns the record currently shown, or nil.
func (c *Coordinator) Display() *ipinfo.Record { return c.display }

// Bookmarks returns the current bookmark list.
func (c *Coordinator) Bookmarks() []ipinfo.Record { return c.store.All() }

// EditingIndex returns the bookmark row in edit mode, or -1.
func (c *Coordinator) EditingIndex() int { return c.edit.Index() }

// CanBookmark reports whether "bookmark this" applies: a record is on
// display and its IP is not already bookmarked.
func (c *Coordinator) CanBookmark() bool {
	return c.display != nil && c.display.IP != "" && !c.store.Contains(c.display.IP)
}

// Lookup validates user input and starts a display-intent fetch. Invalid
// input is surfaced and blocks dispatch; the display and map are cleared
// before the task starts so the UI only ever reflects the newest request.
func (c *Coordinator) Lookup(ctx context.Context, text string) {
	canon, err := validate.Address(text)
	if err != nil {
		c.surfaceInputError(err)
		return
	}

	c.display = nil
	c.ui.RenderInfo(nil)
	c.ui.RenderMap(nil)
	c.dispatchOrReport(ctx, canon, lookup.DisplayIntent())
}

// Dispatch starts a lookup task with the given intent, replacing any task
// still in flight: the old task is signalled to stop, given replaceWait to
// wind down, then discarded regardless.
func (c *Coordinator) Dispatch(ctx context.Context, addr string, intent lookup.Intent) error {
	if addr == "" {
		return common.ErrEmptyInput
	}

	if c.current != nil {
		c.current.Stop()
		select {
		case <-c.current.Done():
		case <-time.After(c.replaceWait):
			c.log.Warn(ctx, "superseded lookup task did not wind down in time",
				"addr", c.current.Addr())
		}
		c.current = nil
	}

	c.ui.SetStatus(fmt.Sprintf("Processing %s...", addr))

	t := lookup.NewTask(addr, intent, c.fetcher, c.events)
	c.current = t
	t.Start(ctx)

	c.log.Debug(ctx, "lookup dispatched", "addr", addr, "intent", intent.Kind.String(), "task_id", t.ID())
	return nil
}

// HandleEvent applies one task notification. Notifications from any task
// other than the current one are stale and dropped; this makes delivery of a
// cancelled task's leftovers an idempotent no-op.
func (c *Coordinator) HandleEvent(ctx context.Context, ev lookup.Event) {
	if c.current == nil || ev.TaskID != c.current.ID() {
		c.log.Debug(ctx, "dropping stale task event", "task_id", ev.TaskID)
		return
	}

	switch ev.Kind {
	case lookup.EventProgress:
		c.ui.SetStatus(ev.Message)
	case lookup.EventCompleted:
		c.current = nil
		c.applyCompletion(ctx, ev)
	}
}

func (c *Coordinator) applyCompletion(ctx context.Context, ev lookup.Event) {
	if ev.Err != nil {
		c.log.Warn(ctx, "lookup failed", "err", ev.Err)
		c.ui.Error(ev.Err.Error())
		c.ui.RenderMap(nil)
		return
	}

	rec := ev.Record

	switch ev.Intent.Kind {
	case lookup.IntentDisplay:
		c.display = rec
		c.ui.RenderInfo(rec)
		c.renderMapFor(rec)
		ip := rec.IP
		if ip == "" {
			ip = "N/A"
		}
		c.ui.SetStatus(fmt.Sprintf("Fetched info for %s.", ip))

	case lookup.IntentBookmarkUpdate:
		err := c.store.ReplaceByIP(ev.Intent.OriginalIP, *rec)
		switch {
		case err == nil:
			c.edit.Invalidate()
			if c.display != nil && (c.display.IP == ev.Intent.OriginalIP || c.display.IP == rec.IP) {
				c.display = rec
				c.ui.RenderInfo(rec)
				c.renderMapFor(rec)
			}
		case errors.Is(err, common.ErrNotFound):
			// The bookmark vanished while the lookup ran; nothing to update.
			c.log.Warn(ctx, "bookmark to update no longer exists", "ip", ev.Intent.OriginalIP)
		default:
			c.ui.Error(err.Error())
		}
		c.renderBookmarks()
	}
}

// BookmarkCurrent appends the displayed record to the bookmark list.
func (c *Coordinator) BookmarkCurrent() {
	if !c.CanBookmark() {
		return
	}

	rec := *c.display
	if err := c.store.Add(rec); err != nil {
		c.ui.Error(err.Error())
		return
	}

	c.ui.SetStatus(fmt.Sprintf("IP %s bookmarked.", rec.IP))
	c.renderBookmarks()
}

// ShowBookmark makes the bookmark at index i the current display.
func (c *Coordinator) ShowBookmark(i int) {
	rec, err := c.store.At(i)
	if err != nil {
		c.ui.Warn(err.Error())
		return
	}

	c.display = &rec
	c.ui.RenderInfo(&rec)
	c.renderMapFor(&rec)
	c.ui.SetStatus(fmt.Sprintf("Displaying bookmarked IP: %s", rec.IP))
}

// DeleteBookmark removes the bookmark at index i after the UI confirms.
// Deleting the displayed IP re-enables bookmarking for it; the display
// itself is kept as-is.
func (c *Coordinator) DeleteBookmark(i int) {
	rec, err := c.store.At(i)
	if err != nil {
		c.ui.Warn(err.Error())
		return
	}

	if !c.ui.Confirm(fmt.Sprintf("Delete %s?", rec.IP)) {
		return
	}

	if err := c.store.DeleteAt(i); err != nil {
		c.ui.Error(err.Error())
		return
	}

	c.edit.Invalidate()
	c.renderBookmarks()
}

// BeginEdit puts bookmark row i into inline-edit mode.
func (c *Coordinator) BeginEdit(i int) {
	if !c.edit.Begin(i) {
		c.ui.Warn("another bookmark is already being edited")
		return
	}
	c.renderBookmarks()
}

// SaveEdit validates the edited address and either finishes the edit or
// dispatches a bookmark-update lookup that will finish it on completion.
func (c *Coordinator) SaveEdit(ctx context.Context, i int, newText string) {
	err := c.edit.Save(ctx, i, newText)
	switch {
	case err == nil:
		c.renderBookmarks()
	case errors.Is(err, common.ErrDuplicateIP):
		c.ui.Warn(fmt.Sprintf("'%s' is already bookmarked.", newText))
	default:
		c.surfaceInputError(err)
	}
}

// CancelEdit leaves edit mode for row i.
func (c *Coordinator) CancelEdit(i int) {
	c.edit.Cancel(i)
	c.renderBookmarks()
}

// RefreshBookmarks re-renders the bookmark list, e.g. after the initial load.
func (c *Coordinator) RefreshBookmarks() {
	c.renderBookmarks()
}

// Shutdown signals cancellation to any in-flight task and waits a bounded
// interval before releasing it regardless of completion.
func (c *Coordinator) Shutdown() {
	if c.current == nil {
		return
	}

	c.current.Stop()
	select {
	case <-c.current.Done():
	case <-time.After(c.shutdownWait):
	}
	c.current = nil
}

func (c *Coordinator) dispatchOrReport(ctx context.Context, addr string, intent lookup.Intent) {
	if err := c.Dispatch(ctx, addr, intent); err != nil {
		c.ui.Warn(err.Error())
	}
}

func (c *Coordinator) renderBookmarks() {
	c.ui.RenderBookmarks(c.store.All(), c.edit.Index())
}

func (c *Coordinator) renderMapFor(rec *ipinfo.Record) {
	pos, err := rec.Coordinates()
	if err != nil {
		c.ui.RenderMap(nil)
		return
	}
	c.ui.RenderMap(&pos)
}

func (c *Coordinator) surfaceInputError(err error) {
	var ife *validate.InvalidFormatError
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		c.ui.Warn("Please enter an IP address.")
	case errors.As(err, &ife):
		c.ui.Warn(ife.Error())
		c.ui.SetStatus("Invalid IP address format.")
	default:
		c.ui.Warn(err.Error())
	}
}
