package pitch

import (
	"fmt"
	"math"
)

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteToFreq uses A4 (note 69) = 440Hz equal temperament.
func NoteToFreq(note float64) float64 {
	return 440.0 * math.Pow(2, (note-69)/12.0)
}

func FreqToNote(freq float64) float64 {
	return math.Log2(freq/440)*12 + 69
}

// Name gives scientific pitch notation, so 60 is "C4".
func Name(note int) string {
	octave := note/12 - 1
	idx := note % 12
	if idx < 0 {
		idx += 12
		octave--
	}
	return fmt.Sprintf("%s%d", noteNames[idx], octave)
}
