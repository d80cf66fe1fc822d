package gorx

import "golang.org/x/exp/constraints"

// Range returns an observable that emits the integers start, start+1, …, end-1,
// in order. If start >= end, it emits no elements and completes immediately.
func Range[T constraints.Integer](start, end T) Observable[T] {
	return ObservableFunc[T](func(obs Observer[T]) {
		for state := start; state < end; state++ {
			if obs.Next(state) == Stop {
				break
			}
		}

		obs.Completed()
	})
}

// Value returns an observable that emits the given value once, then completes.
// The observer's directive is ignored, as there is nothing left to stop.
func Value[T any](value T) Observable[T] {
	return ObservableFunc[T](func(obs Observer[T]) {
		obs.Next(value)
		obs.Completed()
	})
}

// FromSlice returns an observable that emits the elements of the given slices,
// in order.
func FromSlice[T any](slices ...[]T) Observable[T] {
	return ObservableFunc[T](func(obs Observer[T]) {
		for _, slice := range slices {
			for _, elem := range slice {
				if obs.Next(elem) == Stop {
					obs.Completed()
					return
				}
			}
		}

		obs.Completed()
	})
}
