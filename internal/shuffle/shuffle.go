// Package shuffle produces the per-user presentation order: training items
// first in catalog order, then test items with group order and within-group
// order randomized once and persisted. Every later session replays the
// persisted sequence.
package shuffle

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/ydx-lana/assessad/internal/catalog"
	"github.com/ydx-lana/assessad/internal/docstore"
)

// Collection is the docstore collection holding one Record per user.
const Collection = "user_shuffle_orders"

// Record is the persisted shuffle order for a user. The id sequence is
// authoritative: it is never re-derived once written.
type Record struct {
	UserID    string   `json:"user_id"`
	ItemOrder []string `json:"item_order"`
	CreatedAt string   `json:"created_at"`
}

type Generator struct {
	store docstore.Store
	rnd   *rand.Rand
	now   func() time.Time
}

type Option func(*Generator)

// WithRand injects the randomness source. Tests pass a seeded source.
func WithRand(r *rand.Rand) Option { return func(g *Generator) { g.rnd = r } }

// WithClock injects the timestamp source.
func WithClock(now func() time.Time) Option { return func(g *Generator) { g.now = now } }

func NewGenerator(store docstore.Store, opts ...Option) *Generator {
	g := &Generator{
		store: store,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// OrderForUser returns the user's fixed presentation order, creating and
// persisting it on first sign-in. It never fails: if the store is
// unavailable the caller gets the unshuffled catalog order so the user can
// proceed.
func (g *Generator) OrderForUser(ctx context.Context, userID string, training, test []catalog.Item) []catalog.Item {
	items, found, err := g.load(ctx, userID, training, test)
	if err != nil {
		return unshuffled(training, test)
	}
	if found {
		return items
	}

	order := append(append([]catalog.Item{}, training...), g.shuffleTest(test)...)
	rec := Record{
		UserID:    userID,
		ItemOrder: itemIDs(order),
		CreatedAt: g.now().UTC().Format(time.RFC3339),
	}
	won, err := g.store.Create(ctx, Collection, userID, rec)
	if err != nil {
		return unshuffled(training, test)
	}
	if !won {
		// Concurrent first sign-in: another writer persisted an order before
		// us. Theirs is authoritative.
		items, found, err := g.load(ctx, userID, training, test)
		if err != nil || !found {
			return unshuffled(training, test)
		}
		return items
	}
	return order
}

// Stats returns the persisted order record for a user, for admin inspection.
func (g *Generator) Stats(ctx context.Context, userID string) (Record, error) {
	var rec Record
	if err := g.store.Get(ctx, Collection, userID, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (g *Generator) load(ctx context.Context, userID string, training, test []catalog.Item) ([]catalog.Item, bool, error) {
	var rec Record
	err := g.store.Get(ctx, Collection, userID, &rec)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	byID := make(map[string]catalog.Item, len(training)+len(test))
	for _, it := range training {
		byID[it.ID] = it
	}
	for _, it := range test {
		byID[it.ID] = it
	}
	items := make([]catalog.Item, 0, len(rec.ItemOrder))
	for _, id := range rec.ItemOrder {
		// Ids that no longer resolve are dropped: the catalog may have
		// changed since the order was persisted.
		if it, ok := byID[id]; ok {
			items = append(items, it)
		}
	}
	return items, true, nil
}

// shuffleTest randomizes within-group order and group order independently,
// then concatenates the groups. Test items outside every declared group are
// dropped.
func (g *Generator) shuffleTest(test []catalog.Item) []catalog.Item {
	grouped := map[string][]catalog.Item{}
	for _, it := range test {
		if name, ok := catalog.GroupOf(it.ID); ok {
			grouped[name] = append(grouped[name], it)
		}
	}

	for _, members := range grouped {
		g.rnd.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})
	}

	names := catalog.GroupNames()
	g.rnd.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	out := make([]catalog.Item, 0, len(test))
	for _, name := range names {
		out = append(out, grouped[name]...)
	}
	return out
}

func unshuffled(training, test []catalog.Item) []catalog.Item {
	return append(append([]catalog.Item{}, training...), test...)
}

func itemIDs(items []catalog.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
