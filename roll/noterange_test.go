package roll

import (
	"testing"

	"github.com/jsphweid/midiroll/model"
	"github.com/stretchr/testify/assert"
)

func TestNoteRange(t *testing.T) {
	r := New(3)
	r.Row(60)[1] = 1
	r.Row(64)[2] = 1

	low, high, err := NoteRange(r, 2)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(58, low)
	assert.Equal(66, high)
}

func TestNoteRangeIsNotClamped(t *testing.T) {
	events := []model.Event{model.NoteOn(0, 0, 100), model.NoteOn(0, 127, 100)}
	r, err := Build(events, []float64{1})
	assert.NoError(t, err)

	low, high, err := NoteRange(r, 3)
	assert.NoError(t, err)
	assert.Equal(t, -3, low)
	assert.Equal(t, 130, high)
}

func TestNoteRangeOnEmptyRoll(t *testing.T) {
	cases := map[string]*Roll{
		"silent":     New(10),
		"no columns": New(0),
		"nil":        nil,
	}
	for name, r := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := NoteRange(r, 2)
			assert.ErrorIs(t, err, ErrEmptyRoll)
		})
	}
}
