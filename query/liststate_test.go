package query

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncer_BurstRunsLastOnly(t *testing.T) {
	b := NewDebouncer(30 * time.Millisecond)
	defer b.Stop()

	var mu sync.Mutex
	var got []int

	for i := 1; i <= 5; i++ {
		i := i
		b.Call(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("executed calls = %v, want [5]", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	b := NewDebouncer(30 * time.Millisecond)

	fired := make(chan struct{}, 1)
	b.Call(func() { fired <- struct{}{} })
	b.Stop()

	select {
	case <-fired:
		t.Error("stopped debouncer should not fire")
	case <-time.After(100 * time.Millisecond):
	}
}

type refreshRecorder struct {
	mu    sync.Mutex
	calls []struct {
		page   int
		search string
	}
}

func (r *refreshRecorder) record(page int, search string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, struct {
		page   int
		search string
	}{page, search})
}

func (r *refreshRecorder) snapshot() []struct {
	page   int
	search string
} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(r.calls[:0:0], r.calls...)
}

func TestListState_SearchResetsPageAndDebounces(t *testing.T) {
	rec := &refreshRecorder{}
	s := NewListState(30*time.Millisecond, rec.record)
	defer s.Close()

	s.SetPage(3)
	if calls := rec.snapshot(); len(calls) != 1 || calls[0].page != 3 {
		t.Fatalf("SetPage should refresh immediately, got %v", calls)
	}

	// A typing burst: only the settled text triggers a refresh, and the
	// page is back to 1.
	for _, text := range []string{"b", "bo", "bob"} {
		s.SetSearch(text)
		time.Sleep(5 * time.Millisecond)
	}
	if s.Page() != 1 {
		t.Errorf("Page() = %d after search change, want 1", s.Page())
	}

	time.Sleep(100 * time.Millisecond)
	calls := rec.snapshot()
	if len(calls) != 2 {
		t.Fatalf("refresh calls = %d, want 2 (page click + settled search)", len(calls))
	}
	last := calls[1]
	if last.page != 1 || last.search != "bob" {
		t.Errorf("settled refresh = (%d, %q), want (1, %q)", last.page, last.search, "bob")
	}
}

func TestListState_SetPageClampsToOne(t *testing.T) {
	rec := &refreshRecorder{}
	s := NewListState(30*time.Millisecond, rec.record)
	defer s.Close()

	s.SetPage(0)
	if s.Page() != 1 {
		t.Errorf("Page() = %d, want 1", s.Page())
	}
}
