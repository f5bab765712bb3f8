package presenter

import "fmt"

// ChangeType categorizes an edit reported by the host.
type ChangeType uint8

const (
	// ChangeInsert indicates runes were added and none removed.
	ChangeInsert ChangeType = iota

	// ChangeDelete indicates runes were removed and none added.
	ChangeDelete

	// ChangeReplace indicates runes were removed and others added in their place.
	ChangeReplace
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// EditDelta describes one edit as a host text widget reports it.
// Positions and counts are in runes.
type EditDelta struct {
	// Text is the full widget text after the edit, placeholder included
	// when one was displayed.
	Text string

	// Cursor is where the edit happened. For deletions it is the position
	// after the removal.
	Cursor int

	// Deleted is the number of runes removed at Cursor.
	Deleted int

	// Inserted is the number of runes added at Cursor.
	Inserted int
}

// IsDeletion reports whether the edit only removed runes.
func (d EditDelta) IsDeletion() bool {
	return d.Deleted > 0 && d.Inserted == 0
}

// Type classifies the edit.
func (d EditDelta) Type() ChangeType {
	switch {
	case d.IsDeletion():
		return ChangeDelete
	case d.Deleted > 0:
		return ChangeReplace
	default:
		return ChangeInsert
	}
}

// String returns a compact description for logs.
func (d EditDelta) String() string {
	return fmt.Sprintf("%s@%d(-%d,+%d) %q", d.Type(), d.Cursor, d.Deleted, d.Inserted, d.Text)
}
