package query

import (
	"sync"
	"time"
)

// ListState tracks the UI-owned state of a filterable, paginated list:
// current page and search text. Every state change except plain paging
// resets the page to 1, and search text changes are debounced so a burst
// of keystrokes triggers a single refresh.
type ListState struct {
	mu       sync.Mutex
	page     int
	search   string
	debounce *Debouncer
	refresh  func(page int, search string)
}

// NewListState creates a list state that invokes refresh after each
// settled change. window <= 0 uses DefaultDebounce.
func NewListState(window time.Duration, refresh func(page int, search string)) *ListState {
	return &ListState{
		page:     1,
		debounce: NewDebouncer(window),
		refresh:  refresh,
	}
}

// SetPage moves to a page and refreshes immediately; paging is a click,
// not a keystroke, so it is not debounced.
func (s *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	page, search := s.page, s.search
	s.mu.Unlock()
	s.refresh(page, search)
}

// SetSearch updates the search text, resets the page to 1, and schedules
// a debounced refresh carrying the latest text.
func (s *ListState) SetSearch(text string) {
	s.mu.Lock()
	s.search = text
	s.page = 1
	s.mu.Unlock()

	s.debounce.Call(func() {
		s.mu.Lock()
		page, search := s.page, s.search
		s.mu.Unlock()
		s.refresh(page, search)
	})
}

// Page returns the current page number.
func (s *ListState) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Search returns the current search text.
func (s *ListState) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Close cancels any pending debounced refresh.
func (s *ListState) Close() {
	s.debounce.Stop()
}
