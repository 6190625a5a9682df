package model

type NoteRow struct {
	Note      int     `json:"note"`
	Name      string  `json:"name"`
	Frequency float64 `json:"frequency"`
	// one '0' or '1' per column
	Pattern string `json:"pattern"`
}

// Notes are ints here since []uint8 would be base64 encoded.
type ChordResult struct {
	Offset float64 `json:"offset"`
	Key    string  `json:"key"`
	Notes  []int   `json:"notes"`
}

type RollResponse struct {
	Duration   float64       `json:"duration"`
	SampleRate float64       `json:"sample_rate"`
	Columns    int           `json:"columns"`
	Low        int           `json:"low"`
	High       int           `json:"high"`
	Chords     []ChordResult `json:"chords"`
	Rows       []NoteRow     `json:"rows"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
