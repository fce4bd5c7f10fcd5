package app

import (
	"context"
	"errors"

	"github.com/ipmark/ipmark/internal/bookmarks"
	"github.com/ipmark/ipmark/internal/common"
	"github.com/ipmark/ipmark/internal/lookup"
	"github.com/ipmark/ipmark/internal/validate"
)

// ErrNotEditing is returned by Save when the given index is not the row
// currently in edit mode.
var ErrNotEditing = errors.New("row is not being edited")

// Dispatcher starts a lookup on behalf of the edit session. The coordinator
// implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, addr string, intent lookup.Intent) error
}

// EditSession tracks which single bookmark row, if any, is in inline-edit
// mode. It is either idle (index -1) or editing exactly one valid index.
// Any deletion from the bookmark list invalidates it.
type EditSession struct {
	store      *bookmarks.Store
	dispatcher Dispatcher
	index      int
}

func NewEditSession(store *bookmarks.Store, d Dispatcher) *EditSession {
	return &EditSession{store: store, dispatcher: d, index: -1}
}

// Editing reports whether any row is in edit mode.
func (s *EditSession) Editing() bool { return s.index >= 0 }

// Index returns the row being edited, or -1 when idle.
func (s *EditSession) Index() int { return s.index }

// Begin puts row i into edit mode. Allowed only from idle (re-entering the
// same row is a no-op that stays in edit mode); beginning a different row
// while one is already being edited is rejected.
func (s *EditSession) Begin(i int) bool {
	if s.index >= 0 && s.index != i {
		return false
	}
	if _, err := s.store.At(i); err != nil {
		return false
	}
	s.index = i
	return true
}

// Save validates newText against row i and acts on the outcome:
//   - invalid or empty input: the validation error is returned, nothing is
//     dispatched and the session stays in edit mode;
//   - text equal to the row's current IP: the session goes idle, nothing is
//     dispatched;
//   - text colliding with a different bookmark: common.ErrDuplicateIP,
//     nothing is dispatched;
//   - otherwise a bookmark-update lookup is dispatched and the session stays
//     in edit mode until the coordinator resolves it.
func (s *EditSession) Save(ctx context.Context, i int, newText string) error {
	if s.index != i {
		return ErrNotEditing
	}

	rec, err := s.store.At(i)
	if err != nil {
		return err
	}

	canon, err := validate.Address(newText)
	if err != nil {
		return err
	}

	if canon == rec.IP {
		s.index = -1
		return nil
	}

	if j := s.store.IndexByIP(canon); j >= 0 && j != i {
		return common.ErrDuplicateIP
	}

	return s.dispatcher.Dispatch(ctx, canon, lookup.BookmarkUpdateIntent(rec.IP))
}

// Cancel leaves edit mode unconditionally.
func (s *EditSession) Cancel(int) { s.index = -1 }

// Invalidate resets the session to idle. Called when the bookmark list is
// mutated by deletion or when a pending save resolves.
func (s *EditSession) Invalidate() { s.index = -1 }
