package shuffle

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ydx-lana/assessad/internal/catalog"
	"github.com/ydx-lana/assessad/internal/docstore"
)

func newTestGenerator(store docstore.Store, seed int64) *Generator {
	return NewGenerator(store,
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
}

func TestOrderForUser_PersistedOrderIsStable(t *testing.T) {
	store := docstore.NewMemStore()
	gen := newTestGenerator(store, 1)
	ctx := context.Background()
	training, test := catalog.TrainingItems(), catalog.TestItems()

	first := gen.OrderForUser(ctx, "u1", training, test)
	second := gen.OrderForUser(ctx, "u1", training, test)

	if len(first) != 34 || len(second) != 34 {
		t.Fatalf("expected 34 items, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order not stable at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}

	// Even a generator with a different seed must replay the persisted order.
	other := newTestGenerator(store, 99)
	third := other.OrderForUser(ctx, "u1", training, test)
	for i := range first {
		if first[i].ID != third[i].ID {
			t.Fatalf("persisted order re-randomized at %d", i)
		}
	}
}

func TestOrderForUser_TrainingFirstInFixedOrder(t *testing.T) {
	gen := newTestGenerator(docstore.NewMemStore(), 2)
	order := gen.OrderForUser(context.Background(), "u1", catalog.TrainingItems(), catalog.TestItems())

	want := []string{"training1", "training2", "training3", "training4"}
	for i, id := range want {
		if order[i].ID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, order[i].ID)
		}
	}
	for _, it := range order[len(want):] {
		if it.Phase != catalog.PhaseTest {
			t.Fatalf("training item %s after test portion start", it.ID)
		}
	}
}

func TestOrderForUser_GroupIntegrity(t *testing.T) {
	gen := newTestGenerator(docstore.NewMemStore(), 3)
	order := gen.OrderForUser(context.Background(), "u1", catalog.TrainingItems(), catalog.TestItems())

	testPortion := order[4:]
	if len(testPortion) != 30 {
		t.Fatalf("expected 30 test items, got %d", len(testPortion))
	}

	seen := map[string]int{}
	for _, it := range testPortion {
		seen[it.ID]++
	}
	for _, name := range catalog.GroupNames() {
		for _, id := range catalog.GroupMembers(name) {
			if seen[id] != 1 {
				t.Fatalf("group %s member %s appears %d times", name, id, seen[id])
			}
		}
	}

	// Members of a group stay adjacent: the test portion is 10 consecutive
	// blocks of 3 items from the same group.
	for i := 0; i < len(testPortion); i += 3 {
		g0, _ := catalog.GroupOf(testPortion[i].ID)
		for j := 1; j < 3; j++ {
			gj, _ := catalog.GroupOf(testPortion[i+j].ID)
			if gj != g0 {
				t.Fatalf("block at %d mixes groups %s and %s", i, g0, gj)
			}
		}
	}
}

func TestOrderForUser_DropsStaleIDs(t *testing.T) {
	store := docstore.NewMemStore()
	rec := Record{
		UserID:    "u1",
		ItemOrder: []string{"training1", "removed-item", "test5", "test4"},
		CreatedAt: "2025-01-01T00:00:00Z",
	}
	if err := store.Put(context.Background(), Collection, "u1", rec); err != nil {
		t.Fatalf("seed: %v", err)
	}

	gen := newTestGenerator(store, 4)
	order := gen.OrderForUser(context.Background(), "u1", catalog.TrainingItems(), catalog.TestItems())

	want := []string{"training1", "test5", "test4"}
	if len(order) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(order))
	}
	for i, id := range want {
		if order[i].ID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, order[i].ID)
		}
	}
}

func TestOrderForUser_StoreFailureFallsBackUnshuffled(t *testing.T) {
	gen := newTestGenerator(&failingStore{}, 5)
	training, test := catalog.TrainingItems(), catalog.TestItems()
	order := gen.OrderForUser(context.Background(), "u1", training, test)

	if len(order) != 34 {
		t.Fatalf("expected 34 items, got %d", len(order))
	}
	for i, it := range append(training, test...) {
		if order[i].ID != it.ID {
			t.Fatalf("fallback not in catalog order at %d: %s", i, order[i].ID)
		}
	}
}

func TestOrderForUser_LosingCreateRaceUsesWinnerOrder(t *testing.T) {
	inner := docstore.NewMemStore()
	winner := Record{
		UserID:    "u1",
		ItemOrder: []string{"training1", "training2", "training3", "training4", "test9", "test7", "test8"},
		CreatedAt: "2025-01-01T00:00:00Z",
	}
	if err := inner.Put(context.Background(), Collection, "u1", winner); err != nil {
		t.Fatalf("seed: %v", err)
	}

	gen := newTestGenerator(&raceLosingStore{Store: inner}, 6)
	order := gen.OrderForUser(context.Background(), "u1", catalog.TrainingItems(), catalog.TestItems())

	if len(order) != len(winner.ItemOrder) {
		t.Fatalf("expected winner's %d items, got %d", len(winner.ItemOrder), len(order))
	}
	for i, id := range winner.ItemOrder {
		if order[i].ID != id {
			t.Fatalf("position %d: want winner's %s, got %s", i, id, order[i].ID)
		}
	}
}

/* ---------------- store fakes ---------------- */

type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Get(context.Context, string, string, interface{}) error { return errStoreDown }
func (failingStore) Put(context.Context, string, string, interface{}) error { return errStoreDown }
func (failingStore) Merge(context.Context, string, string, map[string]interface{}) error {
	return errStoreDown
}
func (failingStore) Create(context.Context, string, string, interface{}) (bool, error) {
	return false, errStoreDown
}

// raceLosingStore simulates a second first-sign-in losing the create race:
// the first Get misses, Create reports an existing document.
type raceLosingStore struct {
	docstore.Store
	gets int
}

func (s *raceLosingStore) Get(ctx context.Context, collection, key string, out interface{}) error {
	s.gets++
	if s.gets == 1 {
		return docstore.ErrNotFound
	}
	return s.Store.Get(ctx, collection, key, out)
}

func (s *raceLosingStore) Create(context.Context, string, string, interface{}) (bool, error) {
	return false, nil
}
