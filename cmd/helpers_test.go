package cmd

import (
	"os"
	"testing"

	"github.com/jsphweid/midiroll/model"
	"github.com/jsphweid/midiroll/sample"
)

func midiBytes(t *testing.T, events []model.Event) []byte {
	t.Helper()
	s, err := sample.FromEvents(events, 120)
	if err != nil {
		t.Fatal(err)
	}
	data, err := sample.Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func writeMidi(t *testing.T, path string, events []model.Event) {
	t.Helper()
	if err := os.WriteFile(path, midiBytes(t, events), 0666); err != nil {
		t.Fatal(err)
	}
}

// C major for a second, then F major for half a second
func cThenF() []model.Event {
	return []model.Event{
		model.NoteOn(0, 60, 100),
		model.NoteOn(0, 64, 100),
		model.NoteOn(0, 67, 100),
		model.NoteOff(1, 64),
		model.NoteOff(0, 67),
		model.NoteOn(0, 65, 100),
		model.NoteOn(0, 69, 100),
		model.NoteOff(0.5, 60),
		model.NoteOff(0, 65),
		model.NoteOff(0, 69),
	}
}
