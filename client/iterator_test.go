package client

import (
	"context"
	"errors"
	"testing"

	"github.com/billmate/billmate-go/models"
)

func entityPages(ids []string, perPage int) map[int][]models.Entity {
	pages := make(map[int][]models.Entity)
	for i, id := range ids {
		page := i/perPage + 1
		pages[page] = append(pages[page], models.Entity{ID: id})
	}
	return pages
}

func TestIterator_WalksAllPages(t *testing.T) {
	pages := entityPages([]string{"e1", "e2", "e3", "e4", "e5"}, 2)
	var fetched []int

	it := NewIterator(func(ctx context.Context, page int) (*models.Page[models.Entity], error) {
		fetched = append(fetched, page)
		return &models.Page[models.Entity]{Items: pages[page], Total: 5, Page: page, Limit: 2}, nil
	})

	all, err := it.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect(): %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("collected %d items, want 5", len(all))
	}
	if all[0].ID != "e1" || all[4].ID != "e5" {
		t.Errorf("unexpected order: %v", all)
	}
	// The reported total ends iteration without a fourth fetch.
	if len(fetched) != 3 {
		t.Errorf("fetched pages %v, want [1 2 3]", fetched)
	}
}

func TestIterator_ServerChoosesSmallerPages(t *testing.T) {
	// The server caps pages at 5 items regardless of what was requested.
	// Exhaustion must follow the reported total, not the page length, or
	// the collection silently truncates at the first page.
	ids := make([]string, 15)
	for i := range ids {
		ids[i] = "e" + string(rune('a'+i))
	}
	pages := entityPages(ids, 5)

	it := NewIterator(func(ctx context.Context, page int) (*models.Page[models.Entity], error) {
		return &models.Page[models.Entity]{Items: pages[page], Total: 15, Page: page, Limit: 5}, nil
	})

	all, err := it.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect(): %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("collected %d items, want 15", len(all))
	}
}

func TestIterator_NoReportedTotal(t *testing.T) {
	pages := entityPages([]string{"e1", "e2", "e3"}, 2)
	var fetched []int

	it := NewIterator(func(ctx context.Context, page int) (*models.Page[models.Entity], error) {
		fetched = append(fetched, page)
		return &models.Page[models.Entity]{Items: pages[page]}, nil
	})

	all, err := it.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect(): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("collected %d items, want 3", len(all))
	}
	// Without a total the iterator pays one empty-page fetch to stop.
	if len(fetched) != 3 {
		t.Errorf("fetched pages %v, want [1 2 3]", fetched)
	}
}

func TestIterator_PropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("boom")
	it := NewIterator(func(ctx context.Context, page int) (*models.Page[models.Entity], error) {
		if page == 2 {
			return nil, fetchErr
		}
		return &models.Page[models.Entity]{
			Items: []models.Entity{{ID: "e1"}, {ID: "e2"}},
		}, nil
	})

	ctx := context.Background()
	var seen int
	for it.Next(ctx) {
		seen++
	}
	if seen != 2 {
		t.Errorf("iterated %d items before error, want 2", seen)
	}
	if !errors.Is(it.Err(), fetchErr) {
		t.Errorf("Err() = %v, want %v", it.Err(), fetchErr)
	}
}

func TestIterator_EmptyCollection(t *testing.T) {
	it := NewIterator(func(ctx context.Context, page int) (*models.Page[models.Entity], error) {
		return &models.Page[models.Entity]{}, nil
	})

	if it.Next(context.Background()) {
		t.Error("Next() on empty collection should be false")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}
