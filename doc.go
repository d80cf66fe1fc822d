// Package gorx provides a small set of composable push-based stream
// operations. Observables push elements to observers through a synchronous
// subscription protocol, and operators compose by wrapping observers around
// one another.
//
// Streams are constructed by creating a leaf Observable, such as Range,
// Value, or FromSlice. Elements may then be operated upon using mapping,
// filtering, and limiting operators, each of which is itself an Observable
// wrapping its source. MergeAll flattens an observable of observables into a
// single stream, and FlatMap combines it with Map.
//
// Finally, the elements are consumed by subscribing an Observer, either a
// custom implementation or an ad hoc one built with NewObserver, or through
// terminal helpers such as Each, Reduce, ReduceSlice, and Count.
//
// Nothing happens until an observer subscribes: operator construction is a
// pure value transformation, and a single observable may be subscribed any
// number of times, each subscription yielding an independent stream.
//
// Control flows against the data: every Next call returns a Directive, and
// returning Stop tells the producing side to emit no further elements for
// that subscription. Completed is still called exactly once. There is no
// error channel; a transform that panics propagates out of Subscribe.
//
// Subscriptions are synchronous and the package spawns no goroutines.
// Concurrency arises only when a caller emits the inner observables of a
// MergeAll from separate goroutines; the merged downstream observer is then
// guarded so that calls to it never interleave.
package gorx
