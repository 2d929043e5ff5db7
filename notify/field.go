package notify

// Field holds an observable value. Set reports whether the stored value changed so
// the owner can signal its listeners only on genuine changes.
type Field[T comparable] struct {
	value T
}

// NewField creates a field holding the initial value
func NewField[T comparable](initial T) Field[T] {
	return Field[T]{value: initial}
}

// Get returns the stored value
func (f *Field[T]) Get() T {
	return f.value
}

// Set stores v and returns true if it differs from the previous value
func (f *Field[T]) Set(v T) bool {
	if f.value == v {
		return false
	}
	f.value = v
	return true
}
