package main

import (
	"os"

	"github.com/gorx-io/gorx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	tens := gorx.FlatMap(gorx.Range(0, 10), func(elem int) gorx.Observable[int] {
		return gorx.Value(elem * 10)
	})

	result := gorx.Map(gorx.Take(tens, 3), func(elem int) int {
		return elem + 5
	})

	gorx.Each(result, func(elem int) {
		log.Info().Int("elem", elem).Msg("got element")
	})
}
