package gorx

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(elem T, acc []T) []T {
		return append(acc, elem)
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key MapFunc[T, K], value MapFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, acc map[K]V) map[K]V {
		acc[key(elem)] = value(elem)
		return acc
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key MapFunc[T, K], value MapFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(elem T, acc map[K][]V) map[K][]V {
		k := key(elem)
		acc[k] = append(acc[k], value(elem))

		return acc
	}
}
