package model

// EventKind is the closed set of event types the roll builder understands.
type EventKind uint8

const (
	KindOther EventKind = iota
	KindNoteOn
	KindNoteOff
)

func (k EventKind) String() string {
	switch k {
	case KindNoteOn:
		return "note_on"
	case KindNoteOff:
		return "note_off"
	default:
		return "other"
	}
}

// Event is one note change. DeltaTime is relative to the previous event
// in the stream, in whatever unit the caller samples with.
type Event struct {
	DeltaTime float64
	Note      uint8
	Kind      EventKind
	Velocity  uint8
}

func NoteOn(delta float64, note, velocity uint8) Event {
	return Event{DeltaTime: delta, Note: note, Kind: KindNoteOn, Velocity: velocity}
}

func NoteOff(delta float64, note uint8) Event {
	return Event{DeltaTime: delta, Note: note, Kind: KindNoteOff}
}
