package midi

import (
	"bytes"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/midiroll/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return Parse(bytes.NewReader(dat))
}

func Parse(rd io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(rd)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

type timedEvent struct {
	micros int64
	event  model.Event
}

func toEvent(msg smf.Message) model.Event {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return model.Event{Note: key, Kind: model.KindNoteOn, Velocity: velocity}
	case msg.GetNoteOff(&channel, &key, &velocity):
		return model.Event{Note: key, Kind: model.KindNoteOff, Velocity: velocity}
	}
	return model.Event{Kind: model.KindOther}
}

// Events merges all tracks into one stream ordered by absolute time, with
// deltas in seconds. Meta messages are dropped from the stream but still
// count towards the returned duration.
func Events(s *smf.SMF) ([]model.Event, float64) {
	var timed []timedEvent
	var endMicros int64

	for _, track := range s.Tracks {
		var absTicks int64
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			micros := s.TimeAt(absTicks)
			if micros > endMicros {
				endMicros = micros
			}
			if evt.Message.IsMeta() {
				continue
			}
			timed = append(timed, timedEvent{micros: micros, event: toEvent(evt.Message)})
		}
	}

	// stable, so simultaneous events keep track order
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].micros < timed[j].micros
	})

	res := make([]model.Event, 0, len(timed))
	var prev int64
	for _, te := range timed {
		e := te.event
		e.DeltaTime = float64(te.micros-prev) / 1e6
		prev = te.micros
		res = append(res, e)
	}
	return res, float64(endMicros) / 1e6
}

func ReadEvents(filepath string) ([]model.Event, float64, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, 0, err
	}
	events, duration := Events(s)
	return events, duration, nil
}
