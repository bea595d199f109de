package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ydx-lana/assessad/internal/catalog"
	"github.com/ydx-lana/assessad/internal/docstore"
)

// ProfileCollection is the docstore collection holding one Profile per user.
const ProfileCollection = "users"

// AnswerRecord is one locked-in answer: the chosen rating, the points it
// earned, and when it was recorded.
type AnswerRecord struct {
	Rating    int       `json:"rating"`
	Points    int       `json:"points"`
	Timestamp time.Time `json:"timestamp"`
}

// Profile is the persisted per-user progress document. Numeric fields default
// to zero when absent so older documents keep loading.
type Profile struct {
	Username       string                             `json:"username"`
	TrainingScore  int                                `json:"training_score"`
	TestScore      int                                `json:"test_score"`
	TotalScore     int                                `json:"total_score"` // display score, reset once at test-phase start
	CompletedItems []string                           `json:"completed_items"`
	Answers        map[string]map[string]AnswerRecord `json:"answers"` // itemID -> questionID -> record
	CreatedAt      time.Time                          `json:"created_at"`
}

// HasCompleted reports whether the item id is in the completed set.
func (p Profile) HasCompleted(itemID string) bool {
	for _, id := range p.CompletedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// AnswerFor returns the recorded answer for a question, if any.
func (p Profile) AnswerFor(itemID string, questionID int) (AnswerRecord, bool) {
	rec, ok := p.Answers[itemID][strconv.Itoa(questionID)]
	return rec, ok
}

// AnswersFor returns all recorded answers for an item keyed by question id.
func (p Profile) AnswersFor(itemID string) map[int]AnswerRecord {
	out := map[int]AnswerRecord{}
	for k, rec := range p.Answers[itemID] {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[id] = rec
	}
	return out
}

// ProfileRepo persists profiles through the document store.
type ProfileRepo struct {
	store docstore.Store
	now   func() time.Time
}

func NewProfileRepo(store docstore.Store) *ProfileRepo {
	return &ProfileRepo{store: store, now: time.Now}
}

// Get loads an existing profile; docstore.ErrNotFound if the user never
// signed in.
func (r *ProfileRepo) Get(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	if err := r.store.Get(ctx, ProfileCollection, userID, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// GetOrCreate loads the user's profile, bootstrapping a zeroed one on first
// sign-in. Concurrent bootstraps converge on the first writer's document.
func (r *ProfileRepo) GetOrCreate(ctx context.Context, userID, username string) (Profile, error) {
	var p Profile
	err := r.store.Get(ctx, ProfileCollection, userID, &p)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return Profile{}, err
	}

	p = Profile{
		Username:       username,
		CompletedItems: []string{},
		Answers:        map[string]map[string]AnswerRecord{},
		CreatedAt:      r.now().UTC(),
	}
	won, err := r.store.Create(ctx, ProfileCollection, userID, p)
	if err != nil {
		return Profile{}, err
	}
	if !won {
		var existing Profile
		if err := r.store.Get(ctx, ProfileCollection, userID, &existing); err != nil {
			return Profile{}, err
		}
		return existing, nil
	}
	return p, nil
}

// SaveAnswer records an answer and applies its points to the display score
// and the phase score. An existing record is never overwritten: the second
// writer gets ErrAlreadyAnswered and must discard its own write.
func (r *ProfileRepo) SaveAnswer(ctx context.Context, userID, itemID string, questionID int, rec AnswerRecord, phase catalog.Phase) (Profile, error) {
	var p Profile
	if err := r.store.Get(ctx, ProfileCollection, userID, &p); err != nil {
		return Profile{}, err
	}
	qKey := strconv.Itoa(questionID)
	if _, exists := p.Answers[itemID][qKey]; exists {
		return p, ErrAlreadyAnswered
	}

	if p.Answers == nil {
		p.Answers = map[string]map[string]AnswerRecord{}
	}
	if p.Answers[itemID] == nil {
		p.Answers[itemID] = map[string]AnswerRecord{}
	}
	p.Answers[itemID][qKey] = rec
	p.TotalScore += rec.Points
	if phase == catalog.PhaseTraining {
		p.TrainingScore += rec.Points
	} else {
		p.TestScore += rec.Points
	}

	if err := r.store.Put(ctx, ProfileCollection, userID, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// MarkCompleted adds the item to the completed set. Idempotent.
func (r *ProfileRepo) MarkCompleted(ctx context.Context, userID, itemID string) (Profile, error) {
	var p Profile
	if err := r.store.Get(ctx, ProfileCollection, userID, &p); err != nil {
		return Profile{}, err
	}
	if p.HasCompleted(itemID) {
		return p, nil
	}
	p.CompletedItems = append(p.CompletedItems, itemID)
	if err := r.store.Put(ctx, ProfileCollection, userID, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// ResetDisplayScore zeroes the display score only; phase scores are kept.
func (r *ProfileRepo) ResetDisplayScore(ctx context.Context, userID string) error {
	if err := r.store.Merge(ctx, ProfileCollection, userID, map[string]interface{}{"total_score": 0}); err != nil {
		return fmt.Errorf("reset display score: %w", err)
	}
	return nil
}
