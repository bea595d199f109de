package session

import "errors"

// Contract violations: the caller (UI) asked for something the state machine
// forbids. These are rejected without touching any state.
var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrMediaNotAcked   = errors.New("media not acknowledged yet")
	ErrItemIncomplete  = errors.New("current item not complete")
	ErrUnknownQuestion = errors.New("unknown question for current item")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// ErrPersistence marks failures of the durability step only: scoring and
// in-memory feedback are already settled and the write can be retried via
// Flush without re-scoring.
var ErrPersistence = errors.New("persistence unavailable")
