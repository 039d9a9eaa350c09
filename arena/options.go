package arena

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithLimit caps the total capacity of the arena at n bytes. Allocations
// that would need a chunk beyond the cap fail with ErrLimitExceeded.
// n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.limit = n
		}
	}
}
