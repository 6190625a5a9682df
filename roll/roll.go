package roll

import "bytes"

const NumNotes = 128

// Roll is a 128 x Columns matrix stored row-major: Cells[note*Columns+col].
// Fields are exported so rolls can be gob encoded.
type Roll struct {
	Columns int
	Cells   []uint8
}

func New(columns int) *Roll {
	return &Roll{
		Columns: columns,
		Cells:   make([]uint8, NumNotes*columns),
	}
}

func (r *Roll) At(note, col int) uint8 {
	return r.Cells[note*r.Columns+col]
}

// Row returns the backing slice for a note, not a copy.
func (r *Roll) Row(note int) []uint8 {
	return r.Cells[note*r.Columns : (note+1)*r.Columns]
}

func (r *Roll) Column(col int) []uint8 {
	res := make([]uint8, NumNotes)
	for note := 0; note < NumNotes; note++ {
		res[note] = r.Cells[note*r.Columns+col]
	}
	return res
}

// ActiveNotes lists the sounding notes of a column in ascending order.
func (r *Roll) ActiveNotes(col int) []uint8 {
	var res []uint8
	for note := 0; note < NumNotes; note++ {
		if r.Cells[note*r.Columns+col] > 0 {
			res = append(res, uint8(note))
		}
	}
	return res
}

func (r *Roll) Equal(other *Roll) bool {
	return r.Columns == other.Columns && bytes.Equal(r.Cells, other.Cells)
}

func (r *Roll) setColumn(col int, keys *[NumNotes]bool) {
	for note, on := range keys {
		if on {
			r.Cells[note*r.Columns+col] = 1
		}
	}
}
