package model

type Notes = []uint8

type Chord struct {
	// seconds from the start of the file
	Offset float64
	Notes  Notes
}
