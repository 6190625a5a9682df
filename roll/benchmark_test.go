package roll

import (
	"testing"

	"github.com/jsphweid/midiroll/model"
)

func BenchmarkBuildDefault(b *testing.B) {
	var events []model.Event
	for i := 0; i < 2000; i++ {
		note := uint8(36 + i%48)
		events = append(events, model.NoteOn(0.05, note, 100), model.NoteOff(0.05, note))
	}
	duration := TotalDuration(events)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildDefault(events, duration, 100); err != nil {
			b.Fatal(err)
		}
	}
}
