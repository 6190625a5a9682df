package cmd

import (
	"strings"

	"github.com/jsphweid/midiroll/chord"
	"github.com/jsphweid/midiroll/model"
	"github.com/jsphweid/midiroll/pitch"
	"github.com/jsphweid/midiroll/roll"
	"github.com/jsphweid/midiroll/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func pattern(row []uint8) string {
	var sb strings.Builder
	sb.Grow(len(row))
	for _, v := range row {
		if v > 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// analyze builds the default roll and describes the part of it inside the
// note range, clamped to valid notes. Rolls wider than maxColumns are
// refused before anything is allocated.
func analyze(events []model.Event, duration, rate float64, margin, maxColumns int) (model.RollResponse, error) {
	var res model.RollResponse
	columns, err := roll.ColumnCount(duration, rate)
	if err != nil {
		return res, err
	}
	if columns > maxColumns {
		return res, errors.Wrapf(roll.ErrTooManyTicks, "%v columns is more than %v", columns, maxColumns)
	}
	ticks, err := roll.LinearTicks(duration, rate)
	if err != nil {
		return res, err
	}
	r, err := roll.Build(events, ticks, roll.WithLogger(logrus.StandardLogger()))
	if err != nil {
		return res, err
	}
	low, high, err := roll.NoteRange(r, margin)
	if err != nil {
		return res, err
	}

	res = model.RollResponse{
		Duration:   duration,
		SampleRate: rate,
		Columns:    r.Columns,
		Low:        low,
		High:       high,
		Chords:     []model.ChordResult{},
	}
	for _, c := range chord.FromRoll(r, ticks) {
		notes := make([]int, len(c.Notes))
		for i, n := range c.Notes {
			notes[i] = int(n)
		}
		res.Chords = append(res.Chords, model.ChordResult{
			Offset: c.Offset,
			Key:    chord.CreateChordKey(c.Notes),
			Notes:  notes,
		})
	}

	top := util.Clamp(high, 0, roll.NumNotes-1)
	for note := util.Clamp(low, 0, roll.NumNotes-1); note <= top; note++ {
		res.Rows = append(res.Rows, model.NoteRow{
			Note:      note,
			Name:      pitch.Name(note),
			Frequency: pitch.NoteToFreq(float64(note)),
			Pattern:   pattern(r.Row(note)),
		})
	}
	return res, nil
}

func chordNames(notes []int) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = pitch.Name(n)
	}
	return strings.Join(names, " ")
}
