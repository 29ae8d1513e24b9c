package benchmark

// Container is the capability every container under test provides.
// A Search for a key that was never inserted must return the zero Value.
type Container interface {
	Search(k Key) Value
	Insert(k Key, v Value)
	Name() string
}
