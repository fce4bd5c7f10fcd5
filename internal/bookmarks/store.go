// Package bookmarks persists the user's ordered list of bookmarked IP
// records to a JSON file. The list keeps insertion order and never holds two
// records with the same IP. Every mutation writes the whole list back to disk
// before it is committed to memory, so a failed save leaves the in-memory
// state untouched.
package bookmarks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ipmark/ipmark/internal/common"
	"github.com/ipmark/ipmark/internal/filex"
	"github.com/ipmark/ipmark/internal/ipinfo"
)

// LoadError reports an unreadable or unparsable bookmarks file. The store
// degrades to an empty list; the caller decides how to surface the warning.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load bookmarks from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed write of the bookmarks file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("could not save bookmarks to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Store is a file-backed ordered list of bookmarked records.
type Store struct {
	path string
	list []ipinfo.Record
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the backing file into memory. A missing file means an empty
// list. An unreadable or unparsable file also resets the list to empty and
// returns a *LoadError so the caller can warn the user.
func (s *Store) Load() error {
	s.list = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &LoadError{Path: s.path, Err: err}
	}

	var list []ipinfo.Record
	if err := json.Unmarshal(data, &list); err != nil {
		return &LoadError{Path: s.path, Err: err}
	}

	s.list = list
	return nil
}

// All returns a copy of the list in insertion order.
func (s *Store) All() []ipinfo.Record {
	return slices.Clone(s.list)
}

func (s *Store) Len() int { return len(s.list) }

// At returns the record at index i.
func (s *Store) At(i int) (ipinfo.Record, error) {
	if i < 0 || i >= len(s.list) {
		return ipinfo.Record{}, common.ErrIndexOutOfRange
	}
	return s.list[i], nil
}

// IndexByIP returns the position of the record with the given IP, or -1.
func (s *Store) IndexByIP(ip string) int {
	return slices.IndexFunc(s.list, func(r ipinfo.Record) bool { return r.IP == ip })
}

// Contains reports whether an entry with the given IP is bookmarked.
func (s *Store) Contains(ip string) bool {
	return s.IndexByIP(ip) >= 0
}

// Add appends a record and persists the list. Adding an IP that is already
// present fails with common.ErrDuplicateIP.
func (s *Store) Add(rec ipinfo.Record) error {
	if s.Contains(rec.IP) {
		return common.ErrDuplicateIP
	}

	next := append(s.All(), rec)
	if err := s.save(next); err != nil {
		return err
	}
	s.list = next
	return nil
}

// ReplaceByIP swaps the record whose IP equals oldIP for rec, preserving its
// position, and persists. It returns common.ErrNotFound when no entry
// matches; nothing is mutated in that case.
func (s *Store) ReplaceByIP(oldIP string, rec ipinfo.Record) error {
	i := s.IndexByIP(oldIP)
	if i < 0 {
		return common.ErrNotFound
	}

	next := s.All()
	next[i] = rec
	if err := s.save(next); err != nil {
		return err
	}
	s.list = next
	return nil
}

// DeleteAt removes the record at index i and persists.
func (s *Store) DeleteAt(i int) error {
	if i < 0 || i >= len(s.list) {
		return common.ErrIndexOutOfRange
	}

	next := slices.Delete(s.All(), i, i+1)
	if err := s.save(next); err != nil {
		return err
	}
	s.list = next
	return nil
}

func (s *Store) save(list []ipinfo.Record) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	if _, err := filex.EnsureParentDir(s.path); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}

	if err := os.WriteFile(s.path, data, 0o660); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}
