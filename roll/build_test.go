package roll

import (
	"testing"

	"github.com/jsphweid/midiroll/model"
	"github.com/stretchr/testify/assert"
)

func mustBuild(t *testing.T, events []model.Event, ticks []float64) *Roll {
	t.Helper()
	r, err := Build(events, ticks)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return r
}

func TestConcreteScenario(t *testing.T) {
	events := []model.Event{
		model.NoteOn(0, 60, 100),
		model.NoteOff(2.0, 60),
		model.NoteOn(0, 64, 80),
	}
	r := mustBuild(t, events, []float64{0, 1, 2, 3})

	assert := assert.New(t)
	assert.Equal(4, r.Columns)
	assert.Equal([]uint8{0, 1, 1, 0}, r.Row(60))
	assert.Equal([]uint8{0, 0, 0, 1}, r.Row(64))
	assert.Empty(r.ActiveNotes(0))
	assert.Equal([]uint8{60}, r.ActiveNotes(2))
	assert.Equal([]uint8{64}, r.ActiveNotes(3))
}

func TestTickOnEventTimeGetsStateBeforeEvent(t *testing.T) {
	events := []model.Event{model.NoteOn(1.0, 60, 100)}
	r := mustBuild(t, events, []float64{0.5, 1.0, 1.5})

	assert := assert.New(t)
	assert.Equal(uint8(0), r.At(60, 0))
	assert.Equal(uint8(0), r.At(60, 1))
	assert.Equal(uint8(1), r.At(60, 2))
}

func TestZeroVelocityNoteOnIsNoteOff(t *testing.T) {
	ticks := []float64{0.5, 1.5, 2.5}
	withOff := mustBuild(t, []model.Event{
		model.NoteOn(0, 60, 100),
		model.NoteOff(1.0, 60),
	}, ticks)
	withZero := mustBuild(t, []model.Event{
		model.NoteOn(0, 60, 100),
		model.NoteOn(1.0, 60, 0),
	}, ticks)

	assert := assert.New(t)
	assert.True(withOff.Equal(withZero))
	assert.Equal([]uint8{1, 0, 0}, withZero.Row(60))
}

func TestOtherEventsOnlyAdvanceClock(t *testing.T) {
	events := []model.Event{
		{DeltaTime: 1.0, Kind: model.KindOther, Note: 200},
		model.NoteOn(1.0, 60, 100),
	}
	r := mustBuild(t, events, []float64{0, 1.5, 2.0, 2.5})
	assert.Equal(t, []uint8{0, 0, 0, 1}, r.Row(60))
}

func TestEmptyEventsGiveSilentRoll(t *testing.T) {
	r := mustBuild(t, nil, []float64{-1, 0, 1, 2})

	assert := assert.New(t)
	assert.Equal(4, r.Columns)
	assert.Len(r.Cells, NumNotes*4)
	for _, v := range r.Cells {
		assert.Equal(uint8(0), v)
	}
}

func TestEmptyTicksGiveZeroColumns(t *testing.T) {
	r := mustBuild(t, []model.Event{model.NoteOn(0, 60, 100)}, nil)

	assert := assert.New(t)
	assert.Equal(0, r.Columns)
	assert.Empty(r.Cells)
	assert.Empty(r.Row(60))
}

func TestTicksPastEndRepeatFinalState(t *testing.T) {
	events := []model.Event{
		model.NoteOn(0, 60, 100),
		model.NoteOn(0.5, 64, 100),
		model.NoteOff(0.5, 60),
	}
	short := mustBuild(t, events, []float64{0, 0.75})
	long := mustBuild(t, events, []float64{0, 0.75, 5, 10, 100})

	assert := assert.New(t)
	for col := 0; col < short.Columns; col++ {
		assert.Equal(short.Column(col), long.Column(col))
	}
	final := long.Column(2)
	assert.Equal(uint8(0), final[60])
	assert.Equal(uint8(1), final[64])
	assert.Equal(final, long.Column(3))
	assert.Equal(final, long.Column(4))
}

func TestNegativeAndTiedTicks(t *testing.T) {
	events := []model.Event{model.NoteOn(0, 60, 100)}
	r := mustBuild(t, events, []float64{-2, -1, 0, 0, 0.1, 0.1})
	assert.Equal(t, []uint8{0, 0, 0, 0, 1, 1}, r.Row(60))
}

func TestBuildIsIdempotent(t *testing.T) {
	events := []model.Event{
		model.NoteOn(0, 48, 90),
		model.NoteOn(0.25, 52, 90),
		model.NoteOff(0.25, 48),
		model.NoteOn(0.1, 55, 0),
		model.NoteOff(1, 52),
	}
	ticks := []float64{0, 0.1, 0.2, 0.3, 0.5, 0.6, 1.0, 2.0}
	first := mustBuild(t, events, ticks)
	second := mustBuild(t, events, ticks)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Cells, second.Cells)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name   string
		events []model.Event
		ticks  []float64
		err    error
	}{
		{
			name:   "note on above 127",
			events: []model.Event{model.NoteOn(0, 128, 100)},
			ticks:  []float64{0, 1},
			err:    ErrOutOfRangeNote,
		},
		{
			name:   "note off above 127",
			events: []model.Event{model.NoteOn(0, 60, 100), model.NoteOff(1, 255)},
			ticks:  []float64{0, 1},
			err:    ErrOutOfRangeNote,
		},
		{
			name:   "unsorted ticks",
			events: []model.Event{model.NoteOn(0, 60, 100)},
			ticks:  []float64{0, 2, 1},
			err:    ErrUnsortedTicks,
		},
		{
			name:   "unsorted ticks without events",
			events: nil,
			ticks:  []float64{1, 0},
			err:    ErrUnsortedTicks,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Build(tc.events, tc.ticks)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, r)
		})
	}
}

func TestLinearTicks(t *testing.T) {
	assert := assert.New(t)

	ticks, err := LinearTicks(1.0, 4)
	assert.NoError(err)
	assert.Equal([]float64{0, 0.25, 0.5, 0.75, 1.0}, ticks)

	ticks, err = LinearTicks(1.3, 2)
	assert.NoError(err)
	assert.Equal([]float64{0, 0.5, 1.0}, ticks)

	ticks, err = LinearTicks(0, 100)
	assert.NoError(err)
	assert.Equal([]float64{0}, ticks)

	_, err = LinearTicks(1, 0)
	assert.ErrorIs(err, ErrInvalidSampleRate)
	_, err = LinearTicks(-1, 10)
	assert.ErrorIs(err, ErrInvalidDuration)
}

func TestLinearTicksTooMany(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		rate     float64
	}{
		{"duration past int range", 1e300, 1},
		{"rate past int range", 60, 1e300},
		{"product past int range", 1e10, 1e10},
		{"just over the limit", MaxColumns, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				ticks, err := LinearTicks(tc.duration, tc.rate)
				assert.ErrorIs(t, err, ErrTooManyTicks)
				assert.Nil(t, ticks)
			})
		})
	}

	r, err := BuildDefault(nil, 1e300, 1)
	assert.ErrorIs(t, err, ErrTooManyTicks)
	assert.Nil(t, r)
}

func TestColumnCount(t *testing.T) {
	assert := assert.New(t)

	n, err := ColumnCount(1.3, 2)
	assert.NoError(err)
	assert.Equal(3, n)

	n, err = ColumnCount(MaxColumns-1, 1)
	assert.NoError(err)
	assert.Equal(MaxColumns, n)

	_, err = ColumnCount(1, -1)
	assert.ErrorIs(err, ErrInvalidSampleRate)
}

func TestBuildDefault(t *testing.T) {
	events := []model.Event{
		model.NoteOn(0, 60, 100),
		model.NoteOff(2.0, 60),
		model.NoteOn(0, 64, 80),
		model.NoteOff(1.0, 64),
	}
	duration := TotalDuration(events)
	r, err := BuildDefault(events, duration, 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(3.0, duration)
	assert.Equal(4, r.Columns)
	assert.Equal([]uint8{0, 1, 1, 0}, r.Row(60))
	assert.Equal([]uint8{0, 0, 0, 1}, r.Row(64))
}
