package gorx

import "github.com/rs/zerolog/log"

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
type AccumulatorFunc[T any, A any] func(elem T, acc A) A

// NewObserver returns an observer that calls next for each element and always
// continues the stream. Its Completed marks the end of the stream with a
// debug log line.
func NewObserver[T any](next func(elem T)) Observer[T] {
	return &anonymousObserver[T]{
		next: next,
	}
}

type anonymousObserver[T any] struct {
	next func(elem T)
}

func (a *anonymousObserver[T]) Next(elem T) Directive {
	a.next(elem)
	return Continue
}

func (a *anonymousObserver[T]) Completed() {
	log.Debug().Msg("stream completed")
}

// Each subscribes to source and calls each for every element it emits.
func Each[T any](source Observable[T], each func(elem T)) {
	source.Subscribe(NewObserver(each))
}

// Reduce subscribes to source and calls reduce for each element, folding it
// into accumulator acc, returning the final accumulator.
func Reduce[T any, A any](source Observable[T], acc A, reduce AccumulatorFunc[T, A]) A {
	source.Subscribe(&reduceObserver[T, A]{
		reduce: reduce,
		acc:    &acc,
	})

	return acc
}

type reduceObserver[T any, A any] struct {
	reduce AccumulatorFunc[T, A]
	acc    *A
}

func (r *reduceObserver[T, A]) Next(elem T) Directive {
	*r.acc = r.reduce(elem, *r.acc)
	return Continue
}

func (r *reduceObserver[T, A]) Completed() {}

// ReduceSlice subscribes to source and collects its elements into a slice.
func ReduceSlice[T any](source Observable[T]) []T {
	return Reduce(source, nil, CollectSlice[T]())
}

// Count returns the number of elements emitted by source.
func Count[T any](source Observable[T]) int {
	return Reduce(source, 0, func(_ T, acc int) int {
		return acc + 1
	})
}
