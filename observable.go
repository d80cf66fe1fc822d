package gorx

// Directive is returned by an observer for each element it receives, and
// tells the producing side whether to keep emitting.
type Directive int

const (
	// Continue tells the producer to keep emitting elements.
	Continue Directive = iota

	// Stop tells the producer to emit no further elements for this
	// subscription. The producer must still call Completed exactly once.
	Stop
)

// Observer receives the elements of a stream, one Next call per element,
// followed by exactly one Completed call per subscription.
//
// Once an observer returns Stop from Next, no further Next call may reach it;
// only the terminal Completed call follows. Completed must not call back into
// the producer.
type Observer[T any] interface {
	// Next receives one element and reports whether the producer should
	// keep emitting.
	Next(elem T) Directive

	// Completed marks the end of the stream. It is called exactly once per
	// subscription, whether the stream ran out of elements or the observer
	// stopped it early.
	Completed()
}

// Observable is a source of elements for a stream.
// Subscribing pushes every element of the stream to the given observer and
// finishes with exactly one Completed call.
//
// Subscribe is synchronous: it runs the whole subscription to completion (or
// to an early Stop) on the calling goroutine. The library spawns no
// goroutines of its own.
//
// An Observable is reusable: subscribing twice yields two independent
// streams that do not interfere with each other.
type Observable[T any] interface {
	Subscribe(obs Observer[T])
}

// ObservableFunc adapts a function to the Observable interface.
// Convenience when declaring a struct to implement Subscribe is overkill.
type ObservableFunc[T any] func(obs Observer[T])

// Subscribe implements Observable.
func (f ObservableFunc[T]) Subscribe(obs Observer[T]) {
	f(obs)
}
