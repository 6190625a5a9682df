package model

type FileNumToMidiPath = map[uint32]string

// RollSummary describes one indexed file and where its roll binary lives.
type RollSummary struct {
	FileNum    uint32  `json:"file_num"`
	Filename   string  `json:"filename"`
	RollFile   string  `json:"roll_file"`
	Duration   float64 `json:"duration"`
	SampleRate float64 `json:"sample_rate"`
	Columns    int     `json:"columns"`
	Low        int     `json:"low"`
	High       int     `json:"high"`
	NumChords  int     `json:"num_chords"`
}
