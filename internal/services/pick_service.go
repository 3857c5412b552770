package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rafflewise/draw-engine/internal/metrics"
	"github.com/rafflewise/draw-engine/pkg/randpick"
)

// Compile-time check to ensure PickServiceImpl implements PickService
var _ PickService = (*PickServiceImpl)(nil)

var (
	// ErrBoundTooLarge is returned when a quick pick asks for a bound above
	// the configured ceiling.
	ErrBoundTooLarge = errors.New("bound exceeds the configured maximum")

	// ErrCountTooLarge is returned when a quick pick asks for more draws
	// than the configured ceiling.
	ErrCountTooLarge = errors.New("count exceeds the configured maximum")
)

// PickServiceImpl serves one-off bounded picks over a shared crypto-backed
// picker
type PickServiceImpl struct {
	picker   *randpick.Picker
	maxBound int
	maxCount int
	metrics  *metrics.Metrics
}

// NewPickService creates a new PickServiceImpl
func NewPickService(picker *randpick.Picker, maxBound, maxCount int, m *metrics.Metrics) *PickServiceImpl {
	return &PickServiceImpl{
		picker:   picker,
		maxBound: maxBound,
		maxCount: maxCount,
		metrics:  m,
	}
}

// QuickPick draws count integers uniformly from [1, bound]. Bound and count
// validation is delegated to the picker, so an invalid bound fails the same
// way everywhere; the service only adds its configured ceilings.
func (s *PickServiceImpl) QuickPick(_ context.Context, bound, count int, unique bool) ([]int, error) {
	if bound > s.maxBound {
		return nil, fmt.Errorf("%w (%d > %d)", ErrBoundTooLarge, bound, s.maxBound)
	}
	if count > s.maxCount {
		return nil, fmt.Errorf("%w (%d > %d)", ErrCountTooLarge, count, s.maxCount)
	}

	var (
		draws []int
		err   error
	)
	if unique {
		draws, err = s.picker.SampleUnique(bound, count)
	} else {
		draws, err = s.picker.PickN(bound, count)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.QuickPicks.Mark(int64(count))
	slog.Debug("Quick pick served", "bound", bound, "count", count, "unique", unique)
	return draws, nil
}
