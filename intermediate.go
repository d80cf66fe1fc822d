package gorx

import "sync"

// MapFunc maps element elem to type U.
type MapFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// FlatMapFunc maps element elem to an observable of elements of type U.
type FlatMapFunc[T any, U any] func(elem T) Observable[U]

// Map returns an observable that calls mapp for each element emitted by
// source, mapping it to type U. Directives from the downstream observer pass
// through to source untouched.
func Map[T any, U any](source Observable[T], mapp MapFunc[T, U]) Observable[U] {
	return ObservableFunc[U](func(obs Observer[U]) {
		source.Subscribe(&mapObserver[T, U]{
			mapp: mapp,
			obs:  obs,
		})
	})
}

type mapObserver[T any, U any] struct {
	mapp MapFunc[T, U]
	obs  Observer[U]
}

func (m *mapObserver[T, U]) Next(elem T) Directive {
	return m.obs.Next(m.mapp(elem))
}

func (m *mapObserver[T, U]) Completed() {
	m.obs.Completed()
}

// Filter returns an observable that calls pred for each element emitted by
// source, and only emits elements for which pred returns true.
func Filter[T any](source Observable[T], pred PredicateFunc[T]) Observable[T] {
	return ObservableFunc[T](func(obs Observer[T]) {
		source.Subscribe(&filterObserver[T]{
			pred: pred,
			obs:  obs,
		})
	})
}

type filterObserver[T any] struct {
	pred PredicateFunc[T]
	obs  Observer[T]
}

func (f *filterObserver[T]) Next(elem T) Directive {
	if !f.pred(elem) {
		return Continue
	}

	return f.obs.Next(elem)
}

func (f *filterObserver[T]) Completed() {
	f.obs.Completed()
}

// Take returns an observable that emits the same elements as source, in
// order, up to count elements, then stops the source. A count of 0 stops the
// source on its first element, without forwarding it. Completion is always
// forwarded exactly once, whether the stream ends by budget exhaustion,
// source completion, or a Stop from the downstream observer.
func Take[T any](source Observable[T], count int) Observable[T] {
	return ObservableFunc[T](func(obs Observer[T]) {
		source.Subscribe(&takeObserver[T]{
			remaining: count,
			obs:       obs,
		})
	})
}

type takeObserver[T any] struct {
	remaining int
	obs       Observer[T]
}

func (t *takeObserver[T]) Next(elem T) Directive {
	result := Stop
	if t.remaining > 0 {
		result = t.obs.Next(elem)
	}

	if result == Stop {
		t.remaining = 0
	} else {
		t.remaining--
	}

	if t.remaining > 0 {
		return Continue
	}

	return Stop
}

func (t *takeObserver[T]) Completed() {
	t.obs.Completed()
}

// Skip returns an observable that emits the same elements as source, in
// order, skipping the first num elements.
func Skip[T any](source Observable[T], num int) Observable[T] {
	return ObservableFunc[T](func(obs Observer[T]) {
		source.Subscribe(&skipObserver[T]{
			num: num,
			obs: obs,
		})
	})
}

type skipObserver[T any] struct {
	num  int
	done int
	obs  Observer[T]
}

func (s *skipObserver[T]) Next(elem T) Directive {
	if s.done < s.num {
		s.done++
		return Continue
	}

	return s.obs.Next(elem)
}

func (s *skipObserver[T]) Completed() {
	s.obs.Completed()
}

// MergeAll returns an observable that subscribes to each observable emitted
// by source as it arrives, and emits all of their elements through one shared
// downstream observer. Elements of a single inner observable keep their
// order; elements of different inner observables may interleave in any
// relative order, but every Next and Completed call on the downstream
// observer runs to completion before another begins.
//
// The outer source is never stopped early: a Stop returned by the downstream
// observer ends only the inner subscription that delivered the element.
//
// Inner observables may be emitted to MergeAll from separate goroutines.
// Completion of the merged stream waits for every inner subscription that has
// started; an inner observable that has not yet reached the merge when the
// outer source completes is not waited for, and callers relying on every
// element arriving before completion must synchronize such producers
// themselves.
func MergeAll[T any](source Observable[Observable[T]]) Observable[T] {
	return ObservableFunc[T](func(obs Observer[T]) {
		source.Subscribe(&mergeAllObserver[T]{
			mu:  &sync.Mutex{},
			obs: obs,
		})
	})
}

type mergeAllObserver[T any] struct {
	mu    *sync.Mutex
	obs   Observer[T]
	inner sync.WaitGroup
}

func (m *mergeAllObserver[T]) Next(elem Observable[T]) Directive {
	m.inner.Add(1)
	defer m.inner.Done()

	elem.Subscribe(&sharedObserver[T]{
		mu:  m.mu,
		obs: m.obs,
	})

	return Continue
}

func (m *mergeAllObserver[T]) Completed() {
	m.inner.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.obs.Completed()
}

// sharedObserver serializes access to one downstream observer across all
// inner subscriptions of a merge. The lock covers exactly one call.
// Each inner subscription gets its own handle.
type sharedObserver[T any] struct {
	mu  *sync.Mutex
	obs Observer[T]
}

func (s *sharedObserver[T]) Next(elem T) Directive {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.obs.Next(elem)
}

// Completed ends a single inner subscription. It is not forwarded: the
// merged stream completes exactly once, when the outer source does.
func (s *sharedObserver[T]) Completed() {}

// FlatMap returns an observable that calls mapp for each element emitted by
// source, mapping it to an intermediate observable of elements of type U, and
// emits all elements of the intermediate observables as they arrive. It is
// Map followed by MergeAll, and shares MergeAll's ordering and completion
// behavior.
func FlatMap[T any, U any](source Observable[T], mapp FlatMapFunc[T, U]) Observable[U] {
	return MergeAll(Map(source, MapFunc[T, Observable[U]](mapp)))
}
