package models

// EntryKind names a journal section. Each kind is stored as a sub-collection
// of the user's document: users/<uid>/<kind>.
type EntryKind string

const (
	EntryThoughts EntryKind = "thoughts"
	EntryFeelings EntryKind = "feelings"
	EntryBody     EntryKind = "body"
	EntrySOS      EntryKind = "sos"
)

// Valid reports whether k is one of the known journal sections.
func (k EntryKind) Valid() bool {
	switch k {
	case EntryThoughts, EntryFeelings, EntryBody, EntrySOS:
		return true
	}
	return false
}
