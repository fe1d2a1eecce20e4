package storage

// SeenStore records URLs accepted in previous runs so repeated searches do
// not resurface the same announcements. Implementations must be safe for
// concurrent use.
type SeenStore interface {
	// MarkSeen records a normalized URL. Returns true if the URL was newly
	// added, false if it was already present.
	MarkSeen(normalizedURL string) (bool, error)

	// WasSeen reports whether a normalized URL was recorded before.
	WasSeen(normalizedURL string) (bool, error)

	// SeenCount returns the number of recorded URLs.
	SeenCount() (int, error)

	// Close cleanly closes the store.
	Close() error
}
