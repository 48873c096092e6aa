package tracking

import "errors"

// Error kinds surfaced by the tracking store. Controllers map these onto
// HTTP statuses; the store never retries on its own.
var (
	// ErrNotFound means the referenced learner record or course enrollment
	// does not exist. Nothing was mutated.
	ErrNotFound = errors.New("enrollment not found for this course")

	// ErrAlreadyEnrolled means the learner already holds an enrollment for
	// the course. Duplicates are refused to protect the total-paid invariant.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")

	// ErrInvalidInput covers negative prices and negative resource counts.
	ErrInvalidInput = errors.New("invalid input")
)
