package roll

import (
	"math"

	"github.com/jsphweid/midiroll/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type options struct {
	logger logrus.FieldLogger
}

type Option func(*options)

// WithLogger reports build statistics at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func changeKeys(evt model.Event, keys *[NumNotes]bool) {
	switch evt.Kind {
	case model.KindNoteOn:
		// a zero velocity note on is a note off
		keys[evt.Note] = evt.Velocity > 0
	case model.KindNoteOff:
		keys[evt.Note] = false
	}
}

func validate(events []model.Event, ticks []float64) error {
	for i, evt := range events {
		if evt.Kind != model.KindOther && int(evt.Note) >= NumNotes {
			return errors.Wrapf(ErrOutOfRangeNote, "event %d has note %d", i, evt.Note)
		}
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] < ticks[i-1] {
			return errors.Wrapf(ErrUnsortedTicks, "tick %d (%v) is before tick %d (%v)", i, ticks[i], i-1, ticks[i-1])
		}
	}
	return nil
}

// Build samples the note state of events at every tick. A tick sees the
// state after all events strictly before it, so an event landing exactly
// on a tick only shows up in later ticks.
func Build(events []model.Event, ticks []float64, opts ...Option) (*Roll, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(events, ticks); err != nil {
		return nil, err
	}

	var keys [NumNotes]bool
	res := New(len(ticks))
	var timePos float64
	var rollPos int
	for _, evt := range events {
		timePos += evt.DeltaTime
		// ticks equal to timePos are written before evt is applied
		for rollPos < len(ticks) && ticks[rollPos] <= timePos {
			res.setColumn(rollPos, &keys)
			rollPos++
		}
		changeKeys(evt, &keys)
	}

	// nothing changes after the last event
	tail := len(ticks) - rollPos
	for ; rollPos < len(ticks); rollPos++ {
		res.setColumn(rollPos, &keys)
	}

	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{
			"events":  len(events),
			"columns": len(ticks),
			"tail":    tail,
			"end":     timePos,
		}).Debug("built roll")
	}
	return res, nil
}

func TotalDuration(events []model.Event) float64 {
	var total float64
	for _, evt := range events {
		total += evt.DeltaTime
	}
	return total
}

// MaxColumns bounds evenly sampled rolls. At 100 ticks per second it is
// over 11 hours, and the roll itself is 512MB.
const MaxColumns = 1 << 22

// ColumnCount is the number of ticks LinearTicks would return,
// floor(duration*rate)+1, checked against MaxColumns.
func ColumnCount(duration, rate float64) (int, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, errors.Wrapf(ErrInvalidSampleRate, "got %v", rate)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, errors.Wrapf(ErrInvalidDuration, "got %v", duration)
	}

	// compare as floats, the product can be far outside the int range
	n := math.Floor(duration * rate)
	if n >= MaxColumns {
		return 0, errors.Wrapf(ErrTooManyTicks, "%v seconds at %v per second is more than %v", duration, rate, MaxColumns)
	}
	return int(n) + 1, nil
}

// LinearTicks returns floor(duration*rate)+1 evenly spaced ticks starting at 0.
func LinearTicks(duration, rate float64) ([]float64, error) {
	count, err := ColumnCount(duration, rate)
	if err != nil {
		return nil, err
	}

	res := make([]float64, count)
	for i := range res {
		res[i] = float64(i) / rate
	}
	return res, nil
}

// BuildDefault samples events evenly over [0, duration] at rate ticks per
// time unit.
func BuildDefault(events []model.Event, duration, rate float64, opts ...Option) (*Roll, error) {
	ticks, err := LinearTicks(duration, rate)
	if err != nil {
		return nil, err
	}
	return Build(events, ticks, opts...)
}
