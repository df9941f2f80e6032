package storage

// Record is any entity keyed by an integer ID
type Record interface {
	RecordID() int
}

// NextID returns the ID to assign to a new record: 1 for an empty collection,
// max(existing)+1 otherwise. IDs are never reused after deletion.
func NextID[T Record](records []T) int {
	next := 1
	for _, r := range records {
		if r.RecordID() >= next {
			next = r.RecordID() + 1
		}
	}
	return next
}

// FindByID returns the index of the record with the given ID, or -1
func FindByID[T Record](records []T, id int) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// RemoveByID returns the collection without the record with the given ID
func RemoveByID[T Record](records []T, id int) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out
}
