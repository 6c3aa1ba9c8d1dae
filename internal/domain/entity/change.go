package entity

// ChangeKind tags a change event delivered by a live query.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeModified
	ChangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is one item of a change-stream batch.
type Change[T any] struct {
	Kind   ChangeKind
	Record T
}
