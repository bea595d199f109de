package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingItems_FixedOrder(t *testing.T) {
	items := TrainingItems()
	require.Len(t, items, 4)
	for i, it := range items {
		assert.Equal(t, PhaseTraining, it.Phase)
		assert.Equal(t, i+1, it.Order)
	}
	assert.Equal(t, []string{"training1", "training2", "training3", "training4"},
		[]string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
}

func TestTestItems_CountAndOrder(t *testing.T) {
	items := TestItems()
	require.Len(t, items, 30)
	for i, it := range items {
		assert.Equal(t, PhaseTest, it.Phase)
		assert.Equal(t, i+1, it.Order)
	}
}

func TestEveryItemHasSixQuestions(t *testing.T) {
	all := append(TrainingItems(), TestItems()...)
	for _, it := range all {
		require.Len(t, it.Questions, 6, "item %s", it.ID)
		for i, q := range it.Questions {
			assert.Equal(t, i+1, q.ID, "item %s", it.ID)
			assert.NotEmpty(t, q.Prompt, "item %s q%d", it.ID, q.ID)
			assert.GreaterOrEqual(t, q.Reference, 1, "item %s q%d", it.ID, q.ID)
			assert.LessOrEqual(t, q.Reference, 5, "item %s q%d", it.ID, q.ID)
		}
	}
}

func TestTrainingItemsCarryRationales(t *testing.T) {
	for _, it := range TrainingItems() {
		for _, q := range it.Questions {
			assert.NotEmpty(t, q.Rationale, "item %s q%d", it.ID, q.ID)
		}
	}
}

func TestGroups_CoverAllTestItemsExactlyOnce(t *testing.T) {
	names := GroupNames()
	require.Len(t, names, 10)

	seen := map[string]string{}
	for _, name := range names {
		members := GroupMembers(name)
		require.Len(t, members, 3, "group %s", name)
		for _, id := range members {
			require.NotContains(t, seen, id, "item %s in both %s and %s", id, seen[id], name)
			seen[id] = name

			it, ok := Lookup(id)
			require.True(t, ok, "group %s references unknown item %s", name, id)
			assert.Equal(t, PhaseTest, it.Phase)

			got, ok := GroupOf(id)
			require.True(t, ok)
			assert.Equal(t, name, got)
		}
	}
	assert.Len(t, seen, 30)
}

func TestGroupOf_UnknownItem(t *testing.T) {
	_, ok := GroupOf("training1")
	assert.False(t, ok)
	_, ok = GroupOf("test99")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	it, ok := Lookup("training2")
	require.True(t, ok)
	assert.Equal(t, "Training Video 2", it.Title)

	q, ok := it.Question(2)
	require.True(t, ok)
	assert.Equal(t, 2, q.Reference)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestIsTrainingComplete(t *testing.T) {
	assert.False(t, IsTrainingComplete(nil))
	assert.False(t, IsTrainingComplete([]string{"training1", "training2", "training3"}))
	assert.True(t, IsTrainingComplete([]string{"training1", "training2", "training3", "training4"}))
	// Extra completed test items do not matter.
	assert.True(t, IsTrainingComplete([]string{"test5", "training4", "training3", "training2", "training1"}))
}
