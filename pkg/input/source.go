package input

// Source delivers paddle and speed events to a keyer.Handler from the moment
// it was initialized until it is disposed. Events are delivered from the
// goroutine of the source and have to be handled quickly.
type Source interface {
	Dispose() error
	GetType() Type
	// Name describes where the events are coming from.
	Name() string
}
