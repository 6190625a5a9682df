package roll

// NoteRange finds the lowest and highest notes that are ever active and
// widens them by margin. The result is not clamped to [0, 127].
func NoteRange(r *Roll, margin int) (int, int, error) {
	if r == nil {
		return 0, 0, ErrEmptyRoll
	}
	low, high := -1, -1
	for note := 0; note < NumNotes; note++ {
		for _, v := range r.Row(note) {
			if v > 0 {
				if low < 0 {
					low = note
				}
				high = note
				break
			}
		}
	}
	if low < 0 {
		return 0, 0, ErrEmptyRoll
	}
	return low - margin, high + margin, nil
}
