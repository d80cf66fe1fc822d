package gorx

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestCollectSlice(t *testing.T) {
	is := is.New(t)

	collect := CollectSlice[int]()

	ints := []int{}
	ints = collect(1, ints)
	ints = collect(2, ints)
	ints = collect(3, ints)

	is.Equal(ints, []int{1, 2, 3})
}

func TestCollectMap(t *testing.T) {
	is := is.New(t)

	mapp := Reduce(Range(1, 4), map[int]string{}, CollectMap(
		func(elem int) int { return elem },
		strconv.Itoa,
	))

	is.Equal(mapp, map[int]string{
		1: "1",
		2: "2",
		3: "3",
	})
}

func TestCollectGroup(t *testing.T) {
	is := is.New(t)

	group := Reduce(Range(0, 6), map[int][]int{}, CollectGroup(
		func(elem int) int { return elem % 2 },
		func(elem int) int { return elem },
	))

	is.Equal(group, map[int][]int{
		0: {0, 2, 4},
		1: {1, 3, 5},
	})
}
