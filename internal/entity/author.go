package entity

// Author is a persisted author row. Books holds the FK side of the
// one-to-many relation and is only populated by reads that load it.
type Author struct {
	ID        int
	FirstName string
	LastName  string
	Bio       *string
	Books     []Book
	// Version is bumped on every committed update and checked on write.
	Version int
}

// FullName is the display name used by book projections.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
