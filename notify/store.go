// Package notify tracks which props the visitor has not looked at yet.
package notify

import (
	"log"
	"sort"

	"github.com/milk9111/hexfolio/storage"
	"github.com/milk9111/hexfolio/theme"
)

// Store is the unread set. Membership only shrinks, except through Reset.
type Store struct {
	table   *theme.Table
	all     []string
	unread  map[string]struct{}
	persist storage.Store
	subs    []func()
}

// NewStore marks every id unread, minus ids persisted as read.
func NewStore(table *theme.Table, ids []string, persist storage.Store) *Store {
	s := &Store{
		table:   table,
		all:     append([]string(nil), ids...),
		unread:  make(map[string]struct{}, len(ids)),
		persist: persist,
	}
	for _, id := range ids {
		if persist != nil && persist.Bool(storage.ReadKey(id)) {
			continue
		}
		s.unread[id] = struct{}{}
	}
	return s
}

// Subscribe registers fn to run after every change to the set.
func (s *Store) Subscribe(fn func()) {
	if fn != nil {
		s.subs = append(s.subs, fn)
	}
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// MarkRead removes id from the set, reporting whether it was unread.
func (s *Store) MarkRead(id string) bool {
	if _, ok := s.unread[id]; !ok {
		return false
	}
	delete(s.unread, id)
	if s.persist != nil {
		if err := s.persist.SetBool(storage.ReadKey(id), true); err != nil {
			log.Printf("notify: persist %s: %v", id, err)
		}
	}
	s.notify()
	return true
}

func (s *Store) IsUnread(id string) bool {
	_, ok := s.unread[id]
	return ok
}

// CountForTheme counts unread ids whose theme is th.
func (s *Store) CountForTheme(th theme.Theme) int {
	n := 0
	for id := range s.unread {
		if s.table.ObjectTheme(id) == th {
			n++
		}
	}
	return n
}

// Counts returns the unread count of every theme that has one.
func (s *Store) Counts() map[theme.Theme]int {
	out := make(map[theme.Theme]int)
	for id := range s.unread {
		out[s.table.ObjectTheme(id)]++
	}
	return out
}

// Total is the size of the unread set.
func (s *Store) Total() int {
	return len(s.unread)
}

// Unread returns the unread ids, sorted.
func (s *Store) Unread() []string {
	ids := make([]string, 0, len(s.unread))
	for id := range s.unread {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset makes every id unread again and forgets persisted reads.
func (s *Store) Reset() {
	for _, id := range s.all {
		s.unread[id] = struct{}{}
		if s.persist != nil {
			if err := s.persist.Remove(storage.ReadKey(id)); err != nil {
				log.Printf("notify: reset %s: %v", id, err)
			}
		}
	}
	s.notify()
}
