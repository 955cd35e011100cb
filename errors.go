package divmax

import (
	"errors"
	"fmt"

	"github.com/hupe1980/divmax/coreset"
	"github.com/hupe1980/divmax/greedy"
	"github.com/hupe1980/divmax/metric"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidCoresetSize is returned when the coreset size does not exceed k.
	ErrInvalidCoresetSize = errors.New("coreset size must exceed k")

	// ErrInvalidThreads is returned when the thread count is below one.
	ErrInvalidThreads = errors.New("threads must be at least 1")

	// ErrCoresetRequired is returned by Fit when more than one thread is
	// configured without a coreset size.
	ErrCoresetRequired = errors.New("parallel execution requires a coreset size")

	// ErrEmptyInput is returned for nil or empty point sets.
	ErrEmptyInput = errors.New("empty input")

	// ErrKExceedsPoints is returned when k is larger than the number of points.
	ErrKExceedsPoints = errors.New("k exceeds number of points")
)

// ErrInvalidObjective indicates an unsupported diversity objective.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidObjective struct {
	Objective Objective
	cause     error
}

func (e *ErrInvalidObjective) Error() string {
	return fmt.Sprintf("invalid objective: %d", e.Objective)
}

func (e *ErrInvalidObjective) Unwrap() error { return e.cause }

// ErrInvalidMetric indicates an unsupported metric kind.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Metric metric.Kind
	cause  error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric: %s", e.Metric)
}

func (e *ErrInvalidMetric) Unwrap() error { return e.cause }

// translateError maps package errors onto the facade sentinels while keeping
// the original error in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, greedy.ErrEmptyInput):
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	case errors.Is(err, greedy.ErrKExceedsPoints):
		return fmt.Errorf("%w: %w", ErrKExceedsPoints, err)
	case errors.Is(err, greedy.ErrInvalidK):
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	case errors.Is(err, coreset.ErrInvalidSize):
		return fmt.Errorf("%w: %w", ErrInvalidCoresetSize, err)
	case errors.Is(err, coreset.ErrInvalidWorkers):
		return fmt.Errorf("%w: %w", ErrInvalidThreads, err)
	}

	return err
}
