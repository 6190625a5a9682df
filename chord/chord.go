package chord

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/midiroll/model"
	"github.com/jsphweid/midiroll/roll"
)

// CreateChordKey gives a canonical key like "60-64-67". notes is not modified.
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

// FromRoll emits a chord every time the set of sounding notes changes to
// a non-empty set. ticks are the times the roll was sampled at; columns
// without a matching tick are ignored.
func FromRoll(r *roll.Roll, ticks []float64) []model.Chord {
	if r == nil {
		return nil
	}
	var chords []model.Chord
	var prev []uint8
	for col := 0; col < r.Columns && col < len(ticks); col++ {
		notes := r.ActiveNotes(col)
		if col > 0 && bytes.Equal(notes, prev) {
			continue
		}
		prev = notes
		if len(notes) == 0 {
			continue
		}
		chords = append(chords, model.Chord{Offset: ticks[col], Notes: notes})
	}
	return chords
}
