// Package catalog holds the fixed battery of assessment items: four training
// videos presented in a set order, then thirty test videos grouped by source
// content. Content is baked in at build time and never mutated.
package catalog

import "sort"

type Phase string

const (
	PhaseTraining Phase = "training"
	PhaseTest     Phase = "test"
)

// Question is one rubric dimension for an item. Reference is the consensus
// rating (1-5) answers are scored against.
type Question struct {
	ID        int    `json:"id"`
	Prompt    string `json:"prompt"`
	Reference int    `json:"reference"`
	Rationale string `json:"rationale,omitempty"`
}

// Item is a single video-plus-question-set unit.
type Item struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Phase     Phase      `json:"phase"`
	Order     int        `json:"order"`
	MediaURL  string     `json:"media_url"`
	Questions []Question `json:"questions"`
}

// Question returns the question with the given id, if the item has one.
func (it Item) Question(id int) (Question, bool) {
	for _, q := range it.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// TrainingItems returns the training items in their fixed presentation order.
func TrainingItems() []Item {
	return sortedCopy(trainingItems)
}

// TestItems returns the test items sorted by their order field. Presentation
// order for a given user comes from the shuffle generator, not from here.
func TestItems() []Item {
	return sortedCopy(testItems)
}

// Lookup resolves an item id against the full catalog, training and test.
func Lookup(id string) (Item, bool) {
	for _, it := range trainingItems {
		if it.ID == id {
			return it, true
		}
	}
	for _, it := range testItems {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// IsTrainingComplete reports whether every training item id is present in
// completedIDs.
func IsTrainingComplete(completedIDs []string) bool {
	seen := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		seen[id] = true
	}
	for _, it := range trainingItems {
		if !seen[it.ID] {
			return false
		}
	}
	return true
}

func sortedCopy(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
