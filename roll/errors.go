package roll

import "github.com/pkg/errors"

var (
	ErrOutOfRangeNote    = errors.New("note out of range")
	ErrUnsortedTicks     = errors.New("time ticks are not sorted")
	ErrEmptyRoll         = errors.New("roll has no active notes")
	ErrInvalidSampleRate = errors.New("sample rate must be positive and finite")
	ErrInvalidDuration   = errors.New("duration must be non-negative and finite")
	ErrTooManyTicks      = errors.New("too many ticks")
)
