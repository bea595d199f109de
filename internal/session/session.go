// Package session drives a rater's path through the item battery: one live
// session per user, resuming from the persisted profile, locking in each
// answer at most once and sequencing the training-to-test phase transition.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ydx-lana/assessad/internal/catalog"
	"github.com/ydx-lana/assessad/internal/scoring"
	"github.com/ydx-lana/assessad/internal/shuffle"
	syncx "github.com/ydx-lana/assessad/internal/sync"
)

type State string

const (
	StateAwaitingMediaAck   State = "awaiting_media_ack"
	StateAnsweringQuestions State = "answering_questions"
	StateItemComplete       State = "item_complete"
	StateAllItemsComplete   State = "all_items_complete"
)

// Feedback is the scored result of a single answer, replayable from the
// stored record and the catalog reference.
type Feedback struct {
	QuestionID int             `json:"question_id"`
	Rating     int             `json:"rating"`
	Points     int             `json:"points"`
	Outcome    scoring.Outcome `json:"outcome"`
	Message    string          `json:"message"`
	Reference  int             `json:"reference"`
	Rationale  string          `json:"rationale,omitempty"`
}

type pendingAnswer struct {
	itemID     string
	questionID int
	rec        AnswerRecord
	phase      catalog.Phase
}

// Session is single-threaded from the user's perspective; the mutex only
// guards against accidental concurrent HTTP calls for the same user.
type Session struct {
	mu     sync.Mutex
	userID string
	repo   *ProfileRepo
	events syncx.Log
	now    func() time.Time

	profile    Profile
	items      []catalog.Item
	idx        int
	mediaAcked bool
	feedback   map[int]Feedback
	streak     int
	lastOut    scoring.Outcome

	// Answers scored but not yet durable; drained by Flush.
	pending []pendingAnswer
}

// Start loads (or bootstraps) the profile and the per-user item order, then
// resumes at the first uncompleted item, replaying any stored answers.
func Start(ctx context.Context, userID, username string, repo *ProfileRepo, gen *shuffle.Generator, events syncx.Log) (*Session, error) {
	profile, err := repo.GetOrCreate(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf("%w: load profile: %v", ErrPersistence, err)
	}
	items := gen.OrderForUser(ctx, userID, catalog.TrainingItems(), catalog.TestItems())
	if len(items) == 0 {
		return nil, errors.New("empty item order")
	}

	s := &Session{
		userID:   userID,
		repo:     repo,
		events:   events,
		now:      time.Now,
		profile:  profile,
		items:    items,
		feedback: map[int]Feedback{},
	}
	s.idx = 0
	for i, it := range items {
		if !profile.HasCompleted(it.ID) {
			s.idx = i
			break
		}
	}
	s.replayCurrent()
	return s, nil
}

// replayCurrent rebuilds per-item state from stored answers. Feedback is
// re-derived from the recorded rating and the catalog reference.
func (s *Session) replayCurrent() {
	it := s.items[s.idx]
	s.feedback = map[int]Feedback{}
	s.mediaAcked = false
	for qid, rec := range s.profile.AnswersFor(it.ID) {
		q, ok := it.Question(qid)
		if !ok {
			continue
		}
		s.feedback[qid] = newFeedback(q, rec.Rating, rec.Points)
	}
	if len(s.feedback) > 0 {
		s.mediaAcked = true
	}
}

func newFeedback(q catalog.Question, rating, points int) Feedback {
	return Feedback{
		QuestionID: q.ID,
		Rating:     rating,
		Points:     points,
		Outcome:    scoring.Classify(rating, q.Reference),
		Message:    scoring.AlignmentMessage(rating, q.Reference),
		Reference:  q.Reference,
		Rationale:  q.Rationale,
	}
}

func (s *Session) stateLocked() State {
	it := s.items[s.idx]
	if len(s.feedback) == len(it.Questions) {
		if s.idx == len(s.items)-1 {
			return StateAllItemsComplete
		}
		return StateItemComplete
	}
	if s.mediaAcked {
		return StateAnsweringQuestions
	}
	return StateAwaitingMediaAck
}

// State returns the machine state for the current item.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// AcknowledgeMedia records that the user confirmed watching the current
// item's media. Idempotent.
func (s *Session) AcknowledgeMedia() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mediaAcked = true
}

// SubmitAnswer locks in a rating for one question of the current item. The
// feedback is computed before the durability step, so a persistence failure
// returns both the valid feedback and a retryable ErrPersistence.
func (s *Session) SubmitAnswer(ctx context.Context, questionID, rating int) (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mediaAcked {
		return Feedback{}, ErrMediaNotAcked
	}
	it := s.items[s.idx]
	q, ok := it.Question(questionID)
	if !ok {
		return Feedback{}, ErrUnknownQuestion
	}
	if _, answered := s.feedback[questionID]; answered {
		return Feedback{}, ErrAlreadyAnswered
	}
	if _, answered := s.profile.AnswerFor(it.ID, questionID); answered {
		return Feedback{}, ErrAlreadyAnswered
	}
	if rating < 1 || rating > 5 {
		return Feedback{}, ErrInvalidRating
	}

	points := scoring.ComputePoints(rating, q.Reference)
	fb := newFeedback(q, rating, points)

	s.feedback[questionID] = fb
	if fb.Outcome == scoring.Perfect {
		s.streak++
	} else {
		s.streak = 0
	}
	s.lastOut = fb.Outcome

	s.pending = append(s.pending, pendingAnswer{
		itemID:     it.ID,
		questionID: questionID,
		rec:        AnswerRecord{Rating: rating, Points: points, Timestamp: s.now().UTC()},
		phase:      it.Phase,
	})
	if err := s.flushLocked(ctx); err != nil {
		return fb, err
	}
	return fb, nil
}

// Flush retries the durability step for answers whose write failed. Scoring
// is not repeated.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked(ctx)
}

func (s *Session) flushLocked(ctx context.Context) error {
	for len(s.pending) > 0 {
		p := s.pending[0]
		profile, err := s.repo.SaveAnswer(ctx, s.userID, p.itemID, p.questionID, p.rec, p.phase)
		switch {
		case errors.Is(err, ErrAlreadyAnswered):
			// A duplicate slipped through a race; the stored record wins and
			// our write is discarded.
		case err != nil:
			return fmt.Errorf("%w: save answer: %v", ErrPersistence, err)
		default:
			s.profile = profile
			_ = s.events.Append(ctx, syncx.TypeAnswerRecorded, s.userID, map[string]interface{}{
				"item_id":     p.itemID,
				"question_id": p.questionID,
				"rating":      p.rec.Rating,
				"points":      p.rec.Points,
			})
		}
		s.pending = s.pending[1:]
	}
	return nil
}

// Advance marks the current item complete and moves to the next one. When
// the just-completed item is the last outstanding training item, the display
// score is reset once for the test phase. On the final item the session
// stays put and reports the terminal state.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stateLocked()
	if st != StateItemComplete && st != StateAllItemsComplete {
		return ErrItemIncomplete
	}
	if err := s.flushLocked(ctx); err != nil {
		return err
	}

	it := s.items[s.idx]
	profile, err := s.repo.MarkCompleted(ctx, s.userID, it.ID)
	if err != nil {
		return fmt.Errorf("%w: mark completed: %v", ErrPersistence, err)
	}
	s.profile = profile
	_ = s.events.Append(ctx, syncx.TypeItemCompleted, s.userID, map[string]interface{}{
		"item_id": it.ID,
	})

	if it.Phase == catalog.PhaseTraining && catalog.IsTrainingComplete(profile.CompletedItems) {
		if err := s.repo.ResetDisplayScore(ctx, s.userID); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		s.profile.TotalScore = 0
		_ = s.events.Append(ctx, syncx.TypeDisplayScoreReset, s.userID, map[string]interface{}{
			"training_score": s.profile.TrainingScore,
		})
	}

	if s.idx < len(s.items)-1 {
		s.idx++
		s.replayCurrent()
	}
	return nil
}

// Streak is the session-local count of consecutive perfect answers.
func (s *Session) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

// LastOutcome is the bucket of the most recent submission, for transient
// presentation effects.
func (s *Session) LastOutcome() scoring.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOut
}

// Profile returns a snapshot of the persisted profile as this session last
// saw it.
func (s *Session) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}
