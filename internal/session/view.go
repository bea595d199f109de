package session

import (
	"sort"

	"github.com/ydx-lana/assessad/internal/catalog"
	"github.com/ydx-lana/assessad/internal/scoring"
)

// View is the presentation snapshot of a session. Reference answers appear
// only inside feedback for questions that are already locked in.
type View struct {
	State            State           `json:"state"`
	Index            int             `json:"index"`
	Total            int             `json:"total"`
	Item             ItemView        `json:"item"`
	Questions        []QuestionView  `json:"questions"`
	TrainingScore    int             `json:"training_score"`
	TestScore        int             `json:"test_score"`
	DisplayScore     int             `json:"display_score"`
	ItemScore        int             `json:"item_score"`
	Streak           int             `json:"streak"`
	LastOutcome      scoring.Outcome `json:"last_outcome,omitempty"`
	TrainingComplete bool            `json:"training_complete"`
	Scale            []ScaleLabel    `json:"scale"`
}

// ScaleLabel pairs a rating value with its display label.
type ScaleLabel struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

func ratingScale() []ScaleLabel {
	out := make([]ScaleLabel, 0, 5)
	for v := 1; v <= 5; v++ {
		out = append(out, ScaleLabel{Value: v, Label: scoring.RatingLabel(v)})
	}
	return out
}

type ItemView struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Phase    catalog.Phase `json:"phase"`
	MediaURL string        `json:"media_url"`
}

type QuestionView struct {
	ID       int       `json:"id"`
	Prompt   string    `json:"prompt"`
	Feedback *Feedback `json:"feedback,omitempty"`
}

// View builds the snapshot for the current item.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.items[s.idx]
	qs := make([]QuestionView, 0, len(it.Questions))
	itemScore := 0
	for _, q := range it.Questions {
		qv := QuestionView{ID: q.ID, Prompt: q.Prompt}
		if fb, ok := s.feedback[q.ID]; ok {
			f := fb
			qv.Feedback = &f
			itemScore += fb.Points
		}
		qs = append(qs, qv)
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })

	return View{
		State:            s.stateLocked(),
		Index:            s.idx,
		Total:            len(s.items),
		Item:             ItemView{ID: it.ID, Title: it.Title, Phase: it.Phase, MediaURL: it.MediaURL},
		Questions:        qs,
		TrainingScore:    s.profile.TrainingScore,
		TestScore:        s.profile.TestScore,
		DisplayScore:     s.profile.TotalScore,
		ItemScore:        itemScore,
		Streak:           s.streak,
		LastOutcome:      s.lastOut,
		TrainingComplete: catalog.IsTrainingComplete(s.profile.CompletedItems),
		Scale:            ratingScale(),
	}
}
