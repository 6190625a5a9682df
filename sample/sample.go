package sample

import (
	"bytes"
	"math"

	"github.com/jsphweid/midiroll/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

// FromEvents writes events into a single track SMF on channel 0 at a
// fixed tempo. KindOther events become sustain pedal changes.
func FromEvents(events []model.Event, bpm float64) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	ticksPerSecond := TicksPerQuarter * bpm / 60

	var track smf.Track
	track.Add(0, smf.MetaTempo(bpm))

	// round absolute positions so deltas don't drift
	var absTime float64
	var lastTicks int64
	for _, evt := range events {
		absTime += evt.DeltaTime
		ticks := int64(math.Round(absTime * ticksPerSecond))
		delta := uint32(ticks - lastTicks)
		lastTicks = ticks

		switch evt.Kind {
		case model.KindNoteOn:
			track.Add(delta, midi.NoteOn(0, evt.Note, evt.Velocity))
		case model.KindNoteOff:
			track.Add(delta, midi.NoteOff(0, evt.Note))
		default:
			track.Add(delta, midi.ControlChange(0, 64, 127))
		}
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return res, nil
}

func Encode(s *smf.SMF) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "could not write midi")
	}
	return buf.Bytes(), nil
}

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

// Excerpt keeps at most maxNotes note events per track starting at offset
// seconds. Other events before the first kept note are moved to the start
// so tempo and program changes still apply; later ones are dropped.
func Excerpt(mf *smf.SMF, offset float64, maxNotes int) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat
	offsetMicros := int64(offset * 1e6)

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks int64
		var lastKeptTicks int64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				if mf.TimeAt(absTicks) < offsetMicros {
					continue
				}
				var delta uint32
				if numNoteOnOff > 0 {
					delta = uint32(absTicks - lastKeptTicks)
				}
				newTrack.Add(delta, evt.Message)
				lastKeptTicks = absTicks
				numNoteOnOff++
				if numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
			case isEndOfTrack(evt.Message):
			default:
				if numNoteOnOff == 0 {
					newTrack.Add(0, evt.Message)
				}
			}
		}
		newTrack.Close(0)

		if err := res.Add(newTrack); err != nil {
			return nil, errors.Wrap(err, "could not add excerpt track")
		}
	}

	return res, nil
}
